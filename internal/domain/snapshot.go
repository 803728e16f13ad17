// Package domain contains the player statistics model rendered into stat cards.
package domain

import (
	"strings"
	"time"
)

// Edition identifies the game a snapshot was taken from.
type Edition string

// Supported editions.
const (
	EditionOldSchool Edition = "oldschool"
	EditionRuneScape Edition = "runescape"
)

// ParseEdition maps a user supplied name to an Edition.
func ParseEdition(s string) (Edition, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oldschool", "osrs", "07":
		return EditionOldSchool, true
	case "runescape", "rs3", "rs":
		return EditionRuneScape, true
	default:
		return "", false
	}
}

// AccountKind governs the badge shown next to the player name.
type AccountKind string

// Account kinds known to the hiscores.
const (
	AccountStandard             AccountKind = "standard"
	AccountIronman              AccountKind = "ironman"
	AccountHardcoreIronman      AccountKind = "hardcore_ironman"
	AccountUltimateIronman      AccountKind = "ultimate_ironman"
	AccountGroupIronman         AccountKind = "group_ironman"
	AccountHardcoreGroupIronman AccountKind = "hardcore_group_ironman"
	AccountSeasonal             AccountKind = "seasonal"
)

// HasBadge reports whether the kind is decorated with an icon. Standard accounts are not.
func (k AccountKind) HasBadge() bool {
	return k != "" && k != AccountStandard
}

// Skill is one hiscores skill row.
type Skill struct {
	Name         string
	Level        int
	VirtualLevel int // 0 when the source does not provide it
	Experience   int64
	Rank         int
}

// Ranked reports whether the skill appears on the hiscores.
// Rank 0 (or negative) means unranked.
func (s Skill) Ranked() bool {
	return s.Rank > 0
}

// EffectiveVirtualLevel returns the virtual level, deriving it from experience when absent.
func (s Skill) EffectiveVirtualLevel() int {
	if s.VirtualLevel > 0 {
		return s.VirtualLevel
	}
	if lvl := LevelForXP(s.Experience); lvl > s.Level {
		return lvl
	}
	return s.Level
}

// Boss is one boss kill count row.
type Boss struct {
	Name  string
	Kills int
	Rank  int
}

// Ranked reports whether the boss counts toward the hiscores.
func (b Boss) Ranked() bool {
	return b.Rank > 0 && b.Kills > 0
}

// Clue is one clue scroll tier row.
type Clue struct {
	Tier        string
	Completions int
	Rank        int
}

// Ranked reports whether the tier has ranked completions.
func (c Clue) Ranked() bool {
	return c.Rank > 0 && c.Completions > 0
}

// Achievement is a progress goal such as a kill milestone or a time played target.
type Achievement struct {
	Name        string
	Progress    int64
	Threshold   int64
	// Measure is the unit label, e.g. "kills", "xp" or "seconds".
	Measure     string
	Completed   bool
	// CompletedAt is nil when unknown or not completed.
	CompletedAt *time.Time
}

// Fraction returns progress toward the threshold clamped to [0,1].
func (a Achievement) Fraction() float64 {
	if a.Completed {
		return 1
	}
	if a.Threshold <= 0 {
		return 0
	}
	f := float64(a.Progress) / float64(a.Threshold)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// SkillGain is one skill's experience gain over the tracked window.
type SkillGain struct {
	Skill     string
	Gained    int64
	Record    int64
	HasRecord bool
}

// MeetsRecord reports whether the gain matches or beats the previous record.
// A skill without a record meets it with any positive gain.
func (g SkillGain) MeetsRecord() bool {
	if !g.HasRecord {
		return g.Gained > 0
	}
	return g.Gained > 0 && g.Gained >= g.Record
}

// WeeklyTracker holds experience gains for a date window.
type WeeklyTracker struct {
	Start *time.Time
	End   *time.Time
	Gains []SkillGain
}

// Relic is one unlocked relic in a league.
type Relic struct {
	Tier int // 1-based slot
	Name string
}

// FactionInfo is the league (seasonal) progress of a player.
type FactionInfo struct {
	Regions []string
	Relics  []Relic
	Tier    string // standing tier, e.g. "dragon"
	Points  int64
}

// StatSnapshot is an immutable point-in-time view of a player's stats.
type StatSnapshot struct {
	Name         string
	Kind         AccountKind
	CombatLevel  int // 0 means derive from skills
	Overall      Skill
	Skills       []Skill
	Bosses       []Boss
	Clues        []Clue
	Achievements []Achievement
	Tracker      *WeeklyTracker
	Faction      *FactionInfo
}

// Skill returns the named skill, matched case-insensitively.
func (s *StatSnapshot) Skill(name string) (Skill, bool) {
	for _, sk := range s.Skills {
		if strings.EqualFold(sk.Name, name) {
			return sk, true
		}
	}
	return Skill{}, false
}

// Combat returns the snapshot's combat level, computing it from skills when absent.
func (s *StatSnapshot) Combat() int {
	if s.CombatLevel > 0 {
		return s.CombatLevel
	}
	return CombatLevel(s)
}
