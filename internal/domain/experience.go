package domain

import "math"

// MaxVirtualLevel is the highest level the experience table covers.
const MaxVirtualLevel = 126

// MaxExperience is the experience cap of a single skill.
const MaxExperience int64 = 200_000_000

// xpTable[l] is the experience required for level l. Index 0 is unused.
var xpTable = buildXPTable()

func buildXPTable() [MaxVirtualLevel + 1]int64 {
	var table [MaxVirtualLevel + 1]int64
	points := 0.0
	for lvl := 1; lvl <= MaxVirtualLevel; lvl++ {
		table[lvl] = int64(math.Floor(points / 4))
		points += math.Floor(float64(lvl) + 300*math.Pow(2, float64(lvl)/7))
	}
	return table
}

// XPForLevel returns the experience required to reach lvl, clamped to [1, MaxVirtualLevel].
func XPForLevel(lvl int) int64 {
	if lvl < 1 {
		lvl = 1
	}
	if lvl > MaxVirtualLevel {
		lvl = MaxVirtualLevel
	}
	return xpTable[lvl]
}

// LevelForXP returns the highest level whose requirement xp satisfies.
func LevelForXP(xp int64) int {
	lo, hi := 1, MaxVirtualLevel
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if xpTable[mid] <= xp {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// ProgressToNextLevel returns how far xp is between its current and next level, in [0,1].
// At MaxVirtualLevel progress is measured toward MaxExperience instead.
func ProgressToNextLevel(xp int64) float64 {
	if xp <= 0 {
		return 0
	}
	lvl := LevelForXP(xp)
	floor := xpTable[lvl]
	ceil := MaxExperience
	if lvl < MaxVirtualLevel {
		ceil = xpTable[lvl+1]
	}
	if ceil <= floor || xp >= ceil {
		return 1
	}
	return float64(xp-floor) / float64(ceil-floor)
}
