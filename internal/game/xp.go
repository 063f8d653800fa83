// Package game implements the progression layer: XP math, levels,
// daily bounties and the persistence orchestration that ties a
// finished session to the stored profile.
package game

import "github.com/SamuelSmthSmth/HyprPomo/internal/config"

// LevelStep is the XP needed to advance one level. Levels are always
// derived from total XP, never stored.
const LevelStep = 500

// WorkXP is the reward for focused minutes at the base rate.
func WorkXP(bal config.GameBalance, minutes int) int {
	return int(float64(minutes) * bal.XPPerMinute)
}

// FlowXP is the reward for overtime minutes, boosted by the overtime
// multiplier.
func FlowXP(bal config.GameBalance, minutes int) int {
	return int(float64(minutes) * bal.XPPerMinute * bal.OvertimeMultiplier)
}

// BreakSkipXP is the consolation reward for rest given up when a break
// is skipped early.
func BreakSkipXP(bal config.GameBalance, minutes int) int {
	return int(float64(minutes) * bal.BreakSkipXPPerMin)
}

// Level converts total XP to a level, starting at 1.
func Level(totalXP int) int {
	return 1 + totalXP/LevelStep
}

// LevelProgress reports the current level along with XP earned into it
// and the XP required to clear it.
func LevelProgress(totalXP int) (level, into, required int) {
	return Level(totalXP), totalXP % LevelStep, LevelStep
}
