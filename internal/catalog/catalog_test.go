package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitquest/internal/models"
)

func TestDefaultIsValid(t *testing.T) {
	cat := Default()
	if err := cat.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if len(cat.Quests) == 0 || len(cat.Shop) == 0 || len(cat.Badges) == 0 {
		t.Error("default catalog has an empty section")
	}
}

func TestDefaultCarriesEngineBadges(t *testing.T) {
	cat := Default()
	for _, id := range []string{BadgeStreak7, BadgeStreak30, BadgeFirstQuest, BadgeEarlyBird, BadgeNightOwl} {
		if _, ok := cat.BadgeByID(id); !ok {
			t.Errorf("default catalog missing badge %s", id)
		}
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cat, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() on missing file error = %v", err)
	}
	if len(cat.Quests) != len(Default().Quests) {
		t.Error("missing file did not fall back to defaults")
	}
}

func TestLoadOverridesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
quests:
  - title: Drink water
    type: habit_completion
    target:
      fixed: 2
    reward:
      xp: 15
      coins: 3
shop:
  - id: mega_freeze
    name: Mega Freeze
    cost: 250
    effect: streak_freeze
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cat.Quests) != 1 || cat.Quests[0].Title != "Drink water" {
		t.Errorf("quests not overridden: %+v", cat.Quests)
	}
	if cat.Quests[0].Type != models.QuestHabitCompletion || cat.Quests[0].Target.Fixed != 2 {
		t.Errorf("quest fields not parsed: %+v", cat.Quests[0])
	}
	item, ok := cat.ItemByID("mega_freeze")
	if !ok || item.Cost != 250 || item.Effect != EffectStreakFreeze {
		t.Errorf("shop not overridden: %+v", item)
	}
	// Untouched section keeps defaults.
	if len(cat.Badges) != len(Default().Badges) {
		t.Error("badges section lost its defaults")
	}
}

func TestLoadRejectsInvalidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
quests:
  - title: Broken
    type: teleport
    target:
      fixed: 1
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted a quest with an unknown type")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("quests: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Catalog)
		wantErr bool
	}{
		{"defaults pass", func(c *Catalog) {}, false},
		{"untitled quest", func(c *Catalog) { c.Quests[0].Title = "" }, true},
		{"zero fixed target", func(c *Catalog) { c.Quests[0].Target = TargetSpec{} }, true},
		{"all-active needs no fixed target", func(c *Catalog) { c.Quests[0].Target = TargetSpec{AllActive: true} }, false},
		{"item without id", func(c *Catalog) { c.Shop[0].ID = "" }, true},
		{"negative cost", func(c *Catalog) { c.Shop[0].Cost = -5 }, true},
		{"badge without id", func(c *Catalog) { c.Badges[0].ID = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := Default()
			tt.mutate(cat)
			if err := cat.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
