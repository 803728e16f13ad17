package card

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/listenupapp/statcard/internal/domain"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   Options
	}{
		{"none", nil, Options{}},
		{"canonical", []string{"xp", "virtual", "maxed", "outline", "debug", "backgrounds"}, Options{
			ShowExperience: true, VirtualLevels: true, HighlightMaxed: true,
			OutlineRecords: true, DebugFill: true, BossBackgrounds: true,
		}},
		{"aliases and case", []string{" EXP ", "Max", "bg"}, Options{ShowExperience: true, HighlightMaxed: true, BossBackgrounds: true}},
		{"unknown ignored", []string{"sparkles", "virtual"}, Options{VirtualLevels: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOptions(tt.tokens))
		})
	}
}

func TestParseOptionList(t *testing.T) {
	assert.Equal(t, Options{ShowExperience: true, VirtualLevels: true, OutlineRecords: true}, ParseOptionList("xp, virtual+outline"))
	assert.Equal(t, Options{}, ParseOptionList(""))
}

func TestOptions_TokensRoundTrip(t *testing.T) {
	o := Options{ShowExperience: true, HighlightMaxed: true, BossBackgrounds: true}
	assert.Equal(t, []string{"xp", "maxed", "backgrounds"}, o.Tokens())
	assert.Equal(t, o, ParseOptions(o.Tokens()))
	assert.Empty(t, Options{}.Tokens())
}

func TestRules_Cap(t *testing.T) {
	osrs, rs3 := OldSchoolRules(), RuneScapeRules()

	assert.Equal(t, 99, osrs.Cap("Slayer"))
	assert.Equal(t, 120, rs3.Cap("Slayer"))
	assert.Equal(t, 120, rs3.Cap("INVENTION"))
	assert.Equal(t, 99, rs3.Cap("Attack"))
	assert.True(t, osrs.League)
	assert.False(t, rs3.League)
}

func TestRules_Maxed(t *testing.T) {
	tests := []struct {
		name    string
		rules   Rules
		skill   domain.Skill
		virtual bool
		want    bool
	}{
		{"osrs 99", OldSchoolRules(), domain.Skill{Name: "Attack", Level: 99, Experience: 13_034_431, Rank: 1}, false, true},
		{"osrs 98", OldSchoolRules(), domain.Skill{Name: "Attack", Level: 98, Experience: 11_805_606, Rank: 1}, false, false},
		{"unranked 99", OldSchoolRules(), domain.Skill{Name: "Attack", Level: 99, Experience: 13_034_431}, false, false},
		{"osrs virtual 99", OldSchoolRules(), domain.Skill{Name: "Attack", Level: 99, Experience: 13_034_431, Rank: 1}, true, false},
		{"osrs virtual 126", OldSchoolRules(), domain.Skill{Name: "Attack", Level: 99, Experience: domain.MaxExperience, Rank: 1}, true, true},
		{"rs3 elite 99", RuneScapeRules(), domain.Skill{Name: "Invention", Level: 99, Experience: 36_073_511, Rank: 1}, false, false},
		{"rs3 elite 120", RuneScapeRules(), domain.Skill{Name: "Invention", Level: 120, Experience: 80_618_654, Rank: 1}, false, true},
		{"rs3 virtual 120", RuneScapeRules(), domain.Skill{Name: "Attack", Level: 99, VirtualLevel: 120, Rank: 1}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rules.Maxed(tt.skill, tt.virtual))
		})
	}
}

func TestRules_DisplayLevel(t *testing.T) {
	maxedXP := domain.Skill{Name: "Attack", Level: 99, Experience: domain.MaxExperience, Rank: 1}

	assert.Equal(t, 99, OldSchoolRules().DisplayLevel(maxedXP, false))
	assert.Equal(t, 126, OldSchoolRules().DisplayLevel(maxedXP, true))
	assert.Equal(t, 120, RuneScapeRules().DisplayLevel(maxedXP, true))
}
