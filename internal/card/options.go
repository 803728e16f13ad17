package card

import "strings"

// Options toggles optional rendering behaviour. Builders ignore options they
// do not use.
type Options struct {
	ShowExperience  bool // experience and progress bar cells instead of level-only
	VirtualLevels   bool // levels past the cap, derived from experience
	HighlightMaxed  bool // tint maxed skills and count them in the total cell
	OutlineRecords  bool // outline the highest-experience and closest-to-level skills
	DebugFill       bool // tint every cell interior to check geometry
	BossBackgrounds bool // draw the top boss environment behind the boss panel
}

// Option tokens accepted by ParseOptions.
const (
	TokenExperience  = "xp"
	TokenVirtual     = "virtual"
	TokenMaxed       = "maxed"
	TokenOutline     = "outline"
	TokenDebug       = "debug"
	TokenBackgrounds = "backgrounds"
)

// ParseOptions builds Options from tokens. Unknown tokens are ignored.
func ParseOptions(tokens []string) Options {
	var o Options
	for _, t := range tokens {
		switch strings.ToLower(strings.TrimSpace(t)) {
		case TokenExperience, "exp", "experience":
			o.ShowExperience = true
		case TokenVirtual:
			o.VirtualLevels = true
		case TokenMaxed, "max":
			o.HighlightMaxed = true
		case TokenOutline:
			o.OutlineRecords = true
		case TokenDebug:
			o.DebugFill = true
		case TokenBackgrounds, "bg":
			o.BossBackgrounds = true
		}
	}
	return o
}

// ParseOptionList parses a comma or space separated token list such as "xp,virtual".
func ParseOptionList(s string) Options {
	return ParseOptions(strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '+'
	}))
}

// Tokens returns the canonical tokens for the enabled options.
func (o Options) Tokens() []string {
	var out []string
	for _, t := range []struct {
		on    bool
		token string
	}{
		{o.ShowExperience, TokenExperience},
		{o.VirtualLevels, TokenVirtual},
		{o.HighlightMaxed, TokenMaxed},
		{o.OutlineRecords, TokenOutline},
		{o.DebugFill, TokenDebug},
		{o.BossBackgrounds, TokenBackgrounds},
	} {
		if t.on {
			out = append(out, t.token)
		}
	}
	return out
}
