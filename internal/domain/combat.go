package domain

import "math"

// CombatLevel derives the combat level from the snapshot's combat skills.
// Missing skills count as level 1, except Hitpoints which starts at 10.
func CombatLevel(s *StatSnapshot) int {
	level := func(name string, def int) float64 {
		if sk, ok := s.Skill(name); ok && sk.Level > 0 {
			return float64(sk.Level)
		}
		return float64(def)
	}

	hitpoints := level("Hitpoints", 10)
	if sk, ok := s.Skill("Constitution"); ok && sk.Level > 0 {
		hitpoints = float64(sk.Level)
	}

	base := 0.25 * (level("Defence", 1) + hitpoints + math.Floor(level("Prayer", 1)/2))
	melee := 0.325 * (level("Attack", 1) + level("Strength", 1))
	ranged := 0.325 * math.Floor(level("Ranged", 1)*3/2)
	magic := 0.325 * math.Floor(level("Magic", 1)*3/2)

	return int(math.Floor(base + math.Max(melee, math.Max(ranged, magic))))
}
