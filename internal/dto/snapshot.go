// Package dto provides the JSON wire shape of player stat snapshots.
//
// The same shape is accepted by the card API, returned by the hiscores service
// and read by the offline render tool. Snapshots are validated before they are
// converted into the domain model, so the compositor only sees well-formed data.
package dto

import (
	"encoding/json"
	"io"
	"time"

	"github.com/listenupapp/statcard/internal/domain"
	domainerrors "github.com/listenupapp/statcard/internal/errors"
	"github.com/listenupapp/statcard/internal/validation"
)

// maxSnapshotBytes bounds a decoded snapshot body.
const maxSnapshotBytes = 1 << 20

// Skill is one skill row. Rank -1 or 0 means unranked.
type Skill struct {
	Name         string `json:"name" validate:"required,max=64"`
	Level        int    `json:"level" validate:"gte=0,lte=126"`
	VirtualLevel int    `json:"virtual_level,omitempty" validate:"gte=0,lte=126"`
	Experience   int64  `json:"experience" validate:"gte=0,lte=200000000"`
	Rank         int    `json:"rank" validate:"gte=-1"`
}

// Overall is the total level row. Its level is the sum of skill levels.
type Overall struct {
	Level      int   `json:"level" validate:"gte=0"`
	Experience int64 `json:"experience" validate:"gte=0"`
	Rank       int   `json:"rank" validate:"gte=-1"`
}

// Boss is one boss kill count row.
type Boss struct {
	Name  string `json:"name" validate:"required,max=64"`
	Kills int    `json:"kills" validate:"gte=-1"`
	Rank  int    `json:"rank" validate:"gte=-1"`
}

// Clue is one clue scroll tier row.
type Clue struct {
	Tier        string `json:"tier" validate:"required,max=32"`
	Completions int    `json:"completions" validate:"gte=-1"`
	Rank        int    `json:"rank" validate:"gte=-1"`
}

// Achievement is a progress goal.
type Achievement struct {
	Name        string     `json:"name" validate:"required,max=128"`
	Progress    int64      `json:"progress" validate:"gte=0"`
	Threshold   int64      `json:"threshold" validate:"gte=0"`
	Measure     string     `json:"measure,omitempty" validate:"max=32"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// SkillGain is one tracked skill's gain.
type SkillGain struct {
	Skill  string `json:"skill" validate:"required,max=64"`
	Gained int64  `json:"gained"`
	Record *int64 `json:"record,omitempty" validate:"omitempty,gte=0"` // absent when no record exists
}

// Tracker is the weekly gains window. Either end may be unknown.
type Tracker struct {
	Start *time.Time  `json:"start,omitempty"`
	End   *time.Time  `json:"end,omitempty"`
	Gains []SkillGain `json:"gains" validate:"max=64,dive"`
}

// Relic is one unlocked league relic.
type Relic struct {
	Tier int    `json:"tier" validate:"gte=1,lte=6"`
	Name string `json:"name" validate:"required,max=64"`
}

// Faction is the league progress block.
type Faction struct {
	Regions []string `json:"regions" validate:"max=16,dive,required,max=32"`
	Relics  []Relic  `json:"relics" validate:"max=6,dive"`
	Tier    string   `json:"tier,omitempty" validate:"max=32"`
	Points  int64    `json:"points" validate:"gte=0"`
}

// Snapshot is a complete stat snapshot as exchanged over the wire.
type Snapshot struct {
	Name         string        `json:"name" validate:"required,max=64"`
	AccountType  string        `json:"account_type,omitempty" validate:"omitempty,oneof=standard ironman hardcore_ironman ultimate_ironman group_ironman hardcore_group_ironman seasonal"`
	CombatLevel  int           `json:"combat_level,omitempty" validate:"gte=0,lte=200"`
	Overall      Overall       `json:"overall"`
	Skills       []Skill       `json:"skills" validate:"max=64,dive"`
	Bosses       []Boss        `json:"bosses,omitempty" validate:"max=128,dive"`
	Clues        []Clue        `json:"clues,omitempty" validate:"max=16,dive"`
	Achievements []Achievement `json:"achievements,omitempty" validate:"max=256,dive"`
	Tracker      *Tracker      `json:"tracker,omitempty"`
	Faction      *Faction      `json:"faction,omitempty"`
	RawDataURL   string        `json:"raw_data_url,omitempty" validate:"omitempty,url"`
}

// Decode reads one snapshot from r and validates it. Malformed JSON and
// invalid fields are both reported as VALIDATION errors.
func Decode(r io.Reader, v *validation.Validator) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(io.LimitReader(r, maxSnapshotBytes)).Decode(&s); err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeValidation, "malformed snapshot")
	}
	if err := v.Validate(s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ToDomain converts the wire snapshot to the domain model. Slices are copied.
func (s *Snapshot) ToDomain() *domain.StatSnapshot {
	out := &domain.StatSnapshot{
		Name:        s.Name,
		Kind:        domain.AccountKind(s.AccountType),
		CombatLevel: s.CombatLevel,
		Overall: domain.Skill{
			Name:       "Overall",
			Level:      s.Overall.Level,
			Experience: s.Overall.Experience,
			Rank:       s.Overall.Rank,
		},
	}
	if out.Kind == "" {
		out.Kind = domain.AccountStandard
	}

	for _, sk := range s.Skills {
		out.Skills = append(out.Skills, domain.Skill{
			Name:         sk.Name,
			Level:        sk.Level,
			VirtualLevel: sk.VirtualLevel,
			Experience:   sk.Experience,
			Rank:         sk.Rank,
		})
	}
	for _, b := range s.Bosses {
		out.Bosses = append(out.Bosses, domain.Boss{Name: b.Name, Kills: b.Kills, Rank: b.Rank})
	}
	for _, c := range s.Clues {
		out.Clues = append(out.Clues, domain.Clue{Tier: c.Tier, Completions: c.Completions, Rank: c.Rank})
	}
	for _, a := range s.Achievements {
		out.Achievements = append(out.Achievements, domain.Achievement{
			Name:        a.Name,
			Progress:    a.Progress,
			Threshold:   a.Threshold,
			Measure:     a.Measure,
			Completed:   a.Completed,
			CompletedAt: copyTime(a.CompletedAt),
		})
	}

	if s.Tracker != nil {
		t := &domain.WeeklyTracker{Start: copyTime(s.Tracker.Start), End: copyTime(s.Tracker.End)}
		for _, g := range s.Tracker.Gains {
			gain := domain.SkillGain{Skill: g.Skill, Gained: g.Gained}
			if g.Record != nil {
				gain.Record, gain.HasRecord = *g.Record, true
			}
			t.Gains = append(t.Gains, gain)
		}
		out.Tracker = t
	}

	if s.Faction != nil {
		f := &domain.FactionInfo{
			Regions: append([]string(nil), s.Faction.Regions...),
			Tier:    s.Faction.Tier,
			Points:  s.Faction.Points,
		}
		for _, r := range s.Faction.Relics {
			f.Relics = append(f.Relics, domain.Relic{Tier: r.Tier, Name: r.Name})
		}
		out.Faction = f
	}
	return out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// FromDomain converts a domain snapshot back to its wire shape.
func FromDomain(s *domain.StatSnapshot) *Snapshot {
	out := &Snapshot{
		Name:        s.Name,
		AccountType: string(s.Kind),
		CombatLevel: s.CombatLevel,
		Overall:     Overall{Level: s.Overall.Level, Experience: s.Overall.Experience, Rank: s.Overall.Rank},
	}
	for _, sk := range s.Skills {
		out.Skills = append(out.Skills, Skill{
			Name:         sk.Name,
			Level:        sk.Level,
			VirtualLevel: sk.VirtualLevel,
			Experience:   sk.Experience,
			Rank:         sk.Rank,
		})
	}
	for _, b := range s.Bosses {
		out.Bosses = append(out.Bosses, Boss{Name: b.Name, Kills: b.Kills, Rank: b.Rank})
	}
	for _, c := range s.Clues {
		out.Clues = append(out.Clues, Clue{Tier: c.Tier, Completions: c.Completions, Rank: c.Rank})
	}
	for _, a := range s.Achievements {
		out.Achievements = append(out.Achievements, Achievement{
			Name:        a.Name,
			Progress:    a.Progress,
			Threshold:   a.Threshold,
			Measure:     a.Measure,
			Completed:   a.Completed,
			CompletedAt: copyTime(a.CompletedAt),
		})
	}
	if s.Tracker != nil {
		t := &Tracker{Start: copyTime(s.Tracker.Start), End: copyTime(s.Tracker.End)}
		for _, g := range s.Tracker.Gains {
			gain := SkillGain{Skill: g.Skill, Gained: g.Gained}
			if g.HasRecord {
				record := g.Record
				gain.Record = &record
			}
			t.Gains = append(t.Gains, gain)
		}
		out.Tracker = t
	}
	if s.Faction != nil {
		f := &Faction{Regions: append([]string(nil), s.Faction.Regions...), Tier: s.Faction.Tier, Points: s.Faction.Points}
		for _, r := range s.Faction.Relics {
			f.Relics = append(f.Relics, Relic{Tier: r.Tier, Name: r.Name})
		}
		out.Faction = f
	}
	return out
}
