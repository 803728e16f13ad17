package card

import (
	"fmt"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/listenupapp/statcard/internal/assets"
	"github.com/listenupapp/statcard/internal/domain"
)

var skillNames = []string{
	"Attack", "Hitpoints", "Mining", "Strength", "Agility", "Smithing",
	"Defence", "Herblore", "Fishing", "Ranged", "Thieving", "Cooking",
	"Prayer", "Crafting", "Firemaking", "Magic", "Fletching", "Woodcutting",
	"Runecraft", "Slayer", "Farming", "Construction", "Hunter",
}

func testEnv() env {
	return newEnv(assets.NewRegistry(nil, nil), OldSchoolRules(), BuilderConfig{})
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	return &t
}

// baseSnapshot has every skill ranked at level 70, a few bosses and nothing optional.
func baseSnapshot() *domain.StatSnapshot {
	s := &domain.StatSnapshot{
		Name:    "Zezima",
		Kind:    domain.AccountIronman,
		Overall: domain.Skill{Name: "Overall", Level: 1610, Experience: 23 * domain.XPForLevel(70), Rank: 41_233},
	}
	for i, name := range skillNames {
		s.Skills = append(s.Skills, domain.Skill{
			Name:       name,
			Level:      70,
			Experience: domain.XPForLevel(70) + int64(i*100),
			Rank:       100_000 + i,
		})
	}
	s.Bosses = []domain.Boss{
		{Name: "Zulrah", Kills: 1250, Rank: 8_001},
		{Name: "Vorkath", Kills: 480, Rank: 12_345},
		{Name: "Kraken", Kills: 0, Rank: 0},
	}
	return s
}

func withClues(s *domain.StatSnapshot) *domain.StatSnapshot {
	s.Clues = []domain.Clue{
		{Tier: "all", Completions: 310, Rank: 50_000},
		{Tier: "beginner", Completions: 20, Rank: 90_000},
		{Tier: "hard", Completions: 140, Rank: 30_000},
		{Tier: "master", Completions: 0, Rank: 0},
	}
	return s
}

func withAchievements(s *domain.StatSnapshot, completed, pending int) *domain.StatSnapshot {
	for i := range completed {
		s.Achievements = append(s.Achievements, domain.Achievement{
			Name:        fmt.Sprintf("Done %d", i),
			Progress:    100,
			Threshold:   100,
			Measure:     "kills",
			Completed:   true,
			CompletedAt: date(2026, time.January, 1+i),
		})
	}
	for i := range pending {
		s.Achievements = append(s.Achievements, domain.Achievement{
			Name:      fmt.Sprintf("Pending %d", i),
			Progress:  int64(10 * (i + 1)),
			Threshold: 100,
			Measure:   "kills",
		})
	}
	return s
}

func withTracker(s *domain.StatSnapshot, rows int) *domain.StatSnapshot {
	t := &domain.WeeklyTracker{Start: date(2026, time.March, 1), End: date(2026, time.March, 7)}
	for i := range rows {
		t.Gains = append(t.Gains, domain.SkillGain{
			Skill:     skillNames[i%len(skillNames)],
			Gained:    int64(i * 1000),
			Record:    5000,
			HasRecord: i%3 != 0,
		})
	}
	s.Tracker = t
	return s
}

func withFaction(s *domain.StatSnapshot, tier string) *domain.StatSnapshot {
	s.Faction = &domain.FactionInfo{
		Regions: []string{"Misthalin", "Kandarin"},
		Relics:  []domain.Relic{{Tier: 1, Name: "Endless Harvest"}, {Tier: 3, Name: "Fairy's Flight"}},
		Tier:    tier,
	}
	if tier != "" {
		s.Faction.Points = 12_000
	}
	return s
}

func fullSnapshot() *domain.StatSnapshot {
	return withFaction(withTracker(withAchievements(withClues(baseSnapshot()), 3, 4), 6), "dragon")
}

// blend composites src over dst with straight alpha, the way draw.Over does.
func blend(dst, src color.NRGBA) color.NRGBA {
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return color.NRGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 0xff}
}

func assertNearColor(t *testing.T, want, got color.NRGBA, msgAndArgs ...any) {
	t.Helper()
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -2 && d <= 2
	}
	if !near(want.R, got.R) || !near(want.G, got.G) || !near(want.B, got.B) || !near(want.A, got.A) {
		assert.Fail(t, fmt.Sprintf("color %v is not near %v", got, want), msgAndArgs...)
	}
}
