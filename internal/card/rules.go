package card

import (
	"strings"

	"github.com/listenupapp/statcard/internal/domain"
)

// Rules are the per-edition level caps consulted by the skill grid.
type Rules struct {
	Edition    domain.Edition
	LevelCap   int
	VirtualCap int
	// ExtendedCaps lists skills (lowercase) whose real cap differs from LevelCap.
	ExtendedCaps map[string]int
	// League enables the faction panels.
	League bool
}

// OldSchoolRules caps every skill at 99 with virtual levels up to 126.
func OldSchoolRules() Rules {
	return Rules{
		Edition:    domain.EditionOldSchool,
		LevelCap:   99,
		VirtualCap: domain.MaxVirtualLevel,
		League:     true,
	}
}

// RuneScapeRules caps most skills at 99, a handful of elite skills at 120,
// and virtual levels at 120.
func RuneScapeRules() Rules {
	return Rules{
		Edition:    domain.EditionRuneScape,
		LevelCap:   99,
		VirtualCap: 120,
		ExtendedCaps: map[string]int{
			"invention":     120,
			"dungeoneering": 120,
			"archaeology":   120,
			"necromancy":    120,
			"slayer":        120,
			"herblore":      120,
			"farming":       120,
		},
	}
}

// Cap returns the real level cap of the named skill.
func (r Rules) Cap(skill string) int {
	if c, ok := r.ExtendedCaps[strings.ToLower(skill)]; ok {
		return c
	}
	return r.LevelCap
}

// Maxed reports whether the skill has reached its cap. With virtual levels the
// virtual cap applies instead. Unranked skills are never maxed.
func (r Rules) Maxed(s domain.Skill, virtual bool) bool {
	if !s.Ranked() {
		return false
	}
	if virtual {
		return s.EffectiveVirtualLevel() >= max(r.VirtualCap, r.Cap(s.Name))
	}
	return s.Level >= r.Cap(s.Name)
}

// DisplayLevel returns the level shown for the skill, honouring the virtual option.
func (r Rules) DisplayLevel(s domain.Skill, virtual bool) int {
	if !virtual {
		return s.Level
	}
	return min(s.EffectiveVirtualLevel(), max(r.VirtualCap, r.Cap(s.Name)))
}
