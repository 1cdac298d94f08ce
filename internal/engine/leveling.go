package engine

import "math"

// LevelInfo describes where an XP total sits on the leveling curve.
type LevelInfo struct {
	Level int
	// CurrentLevelFloor and NextLevelFloor are the cumulative XP bounds of
	// the current level.
	CurrentLevelFloor int
	NextLevelFloor    int
	// ProgressPct is progress through the current level, 0-100.
	ProgressPct float64
}

// LevelOf converts cumulative XP to a level: floor(sqrt(xp/100)) + 1, so
// level 1 is the floor and each level costs quadratically more.
func LevelOf(xp int) LevelInfo {
	if xp < 0 {
		xp = 0
	}
	level := int(math.Sqrt(float64(xp)/100)) + 1
	current := 100 * (level - 1) * (level - 1)
	next := 100 * level * level

	pct := 0.0
	if next > current {
		pct = float64(xp-current) / float64(next-current) * 100
	}
	return LevelInfo{
		Level:             level,
		CurrentLevelFloor: current,
		NextLevelFloor:    next,
		ProgressPct:       pct,
	}
}

// LevelInfo returns the leveling status for the user's current XP.
func (e *Engine) LevelInfo() LevelInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return LevelOf(e.state.Stats.XP)
}
