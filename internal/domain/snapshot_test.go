package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEdition(t *testing.T) {
	tests := []struct {
		in   string
		want Edition
		ok   bool
	}{
		{"oldschool", EditionOldSchool, true},
		{" OSRS ", EditionOldSchool, true},
		{"07", EditionOldSchool, true},
		{"runescape", EditionRuneScape, true},
		{"rs3", EditionRuneScape, true},
		{"classic", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseEdition(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountKind_HasBadge(t *testing.T) {
	assert.False(t, AccountKind("").HasBadge())
	assert.False(t, AccountStandard.HasBadge())
	assert.True(t, AccountIronman.HasBadge())
	assert.True(t, AccountSeasonal.HasBadge())
}

func TestRanked(t *testing.T) {
	assert.True(t, Skill{Rank: 1}.Ranked())
	assert.False(t, Skill{Rank: -1}.Ranked())
	assert.False(t, Skill{Rank: 0}.Ranked())

	assert.True(t, Boss{Rank: 10, Kills: 5}.Ranked())
	assert.False(t, Boss{Rank: 10, Kills: 0}.Ranked(), "kills below the hiscores minimum are unranked")
	assert.False(t, Boss{Rank: -1, Kills: 5}.Ranked())

	assert.True(t, Clue{Rank: 3, Completions: 1}.Ranked())
	assert.False(t, Clue{Rank: 3, Completions: 0}.Ranked())
}

func TestSkill_EffectiveVirtualLevel(t *testing.T) {
	tests := []struct {
		name  string
		skill Skill
		want  int
	}{
		{"explicit virtual level", Skill{Level: 99, VirtualLevel: 104, Experience: 0}, 104},
		{"derived from experience", Skill{Level: 99, Experience: XPForLevel(110)}, 110},
		{"below cap keeps level", Skill{Level: 70, Experience: XPForLevel(70)}, 70},
		{"capped at 126", Skill{Level: 99, Experience: 200_000_000}, MaxVirtualLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.skill.EffectiveVirtualLevel())
		})
	}
}

func TestAchievement_Fraction(t *testing.T) {
	tests := []struct {
		name string
		a    Achievement
		want float64
	}{
		{"completed", Achievement{Completed: true, Progress: 1, Threshold: 10}, 1},
		{"halfway", Achievement{Progress: 5, Threshold: 10}, 0.5},
		{"no threshold", Achievement{Progress: 5}, 0},
		{"overshoot", Achievement{Progress: 15, Threshold: 10}, 1},
		{"negative", Achievement{Progress: -3, Threshold: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.a.Fraction(), 1e-9)
		})
	}
}

func TestSkillGain_MeetsRecord(t *testing.T) {
	tests := []struct {
		name string
		g    SkillGain
		want bool
	}{
		{"no record, some gain", SkillGain{Gained: 1}, true},
		{"no record, no gain", SkillGain{}, false},
		{"ties record", SkillGain{Gained: 500, Record: 500, HasRecord: true}, true},
		{"below record", SkillGain{Gained: 499, Record: 500, HasRecord: true}, false},
		{"zero record, zero gain", SkillGain{Record: 0, HasRecord: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.g.MeetsRecord())
		})
	}
}

func TestCombatLevel(t *testing.T) {
	combat := []string{"Attack", "Strength", "Defence", "Hitpoints", "Ranged", "Prayer", "Magic"}
	maxed := &StatSnapshot{}
	for _, name := range combat {
		maxed.Skills = append(maxed.Skills, Skill{Name: name, Level: 99})
	}

	tests := []struct {
		name string
		s    *StatSnapshot
		want int
	}{
		{"fresh account", &StatSnapshot{}, 3},
		{"maxed combat", maxed, 126},
		{"pure ranger", &StatSnapshot{Skills: []Skill{
			{Name: "Ranged", Level: 99},
			{Name: "Hitpoints", Level: 99},
		}}, 73},
		{"runescape constitution", &StatSnapshot{Skills: []Skill{
			{Name: "Constitution", Level: 99},
		}}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CombatLevel(tt.s))
		})
	}

	t.Run("snapshot value wins", func(t *testing.T) {
		s := &StatSnapshot{CombatLevel: 88}
		assert.Equal(t, 88, s.Combat())
	})

	t.Run("case insensitive lookup", func(t *testing.T) {
		s := &StatSnapshot{Skills: []Skill{{Name: "attack", Level: 60}}}
		sk, ok := s.Skill("Attack")
		assert.True(t, ok)
		assert.Equal(t, 60, sk.Level)
	})
}
