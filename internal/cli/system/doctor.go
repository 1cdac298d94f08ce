package system

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitquest/internal/cli"
	"github.com/julianstephens/habitquest/internal/constants"
	"github.com/julianstephens/habitquest/internal/models"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	storeOK := true
	if _, err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
		storeOK = false
	} else {
		fmt.Printf("✓ Storage reachable: OK (%s)\n", ctx.Store.Path())
	}

	// Check 2: snapshot integrity (only if storage is reachable)
	if storeOK {
		if err := checkSnapshotIntegrity(ctx); err != nil {
			fmt.Printf("❌ Snapshot integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Snapshot integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Snapshot integrity: SKIPPED (storage not reachable)\n")
	}

	// Check 3: content catalog valid
	if err := ctx.Engine.Catalog().Validate(); err != nil {
		fmt.Printf("❌ Content catalog: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Content catalog: OK\n")
	}

	// Check 4: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 5: concurrent instances (warning only; two writers can clobber
	// each other's snapshots)
	if err := checkSingleInstance(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkSnapshotIntegrity(ctx *cli.Context) error {
	state, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	if state.Version > models.StateVersion {
		return fmt.Errorf("snapshot version %d is newer than this build supports", state.Version)
	}
	if state.Stats.XP < 0 || state.Stats.Coins < 0 || state.Stats.StreakFreezes < 0 {
		return fmt.Errorf("negative stats in snapshot: %+v", state.Stats)
	}

	ids := make(map[string]bool)
	for _, h := range state.Habits {
		if h.ID == "" {
			return fmt.Errorf("habit %q has no id", h.Name)
		}
		if ids[h.ID] {
			return fmt.Errorf("duplicate habit id: %s", h.ID)
		}
		ids[h.ID] = true
	}

	for key, check := range state.Checks {
		if !strings.Contains(key, "|") {
			return fmt.Errorf("malformed check key: %s", key)
		}
		if len(check.Date) != 10 {
			return fmt.Errorf("check %s has invalid date %q", key, check.Date)
		}
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkSingleInstance() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			return fmt.Errorf("another %s process is running (PID %d); concurrent writes may clobber the snapshot", constants.AppName, p.Pid())
		}
	}
	return nil
}
