package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Unranked is shown wherever a rank or level is absent.
const Unranked = "-"

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// FormatGroupedInt renders n with thousands separators, e.g. 1,234,567.
func FormatGroupedInt(n int64) string {
	return printer().Sprintf("%d", n)
}

// ParseGroupedInt is the inverse of FormatGroupedInt. Separators must sit
// between groups of exactly three digits.
func ParseGroupedInt(s string) (int64, error) {
	body, neg := strings.CutPrefix(s, "-")
	groups := strings.Split(body, ",")
	if lead := groups[0]; lead == "" || (len(groups) > 1 && len(lead) > 3) {
		return 0, fmt.Errorf("parse grouped int %q: malformed leading group", s)
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return 0, fmt.Errorf("parse grouped int %q: group %q is not three digits", s, g)
		}
	}
	digits := strings.Join(groups, "")
	if strings.ContainsAny(digits, "+-") {
		return 0, fmt.Errorf("parse grouped int %q: unexpected sign", s)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse grouped int %q: %w", s, err)
	}
	if neg {
		n = -n
	}
	return n, nil
}

// FormatRank renders a hiscores rank, or Unranked when rank is not positive.
func FormatRank(rank int) string {
	if rank <= 0 {
		return Unranked
	}
	return FormatGroupedInt(int64(rank))
}

// FormatSigned renders n with an explicit sign for non-zero values.
func FormatSigned(n int64) string {
	if n > 0 {
		return "+" + FormatGroupedInt(n)
	}
	return FormatGroupedInt(n)
}

// FormatPercent renders a fraction in [0,1] as a percentage with one decimal.
func FormatPercent(fraction float64) string {
	return strconv.FormatFloat(fraction*100, 'f', 1, 64) + "%"
}

// FormatCompact abbreviates large counts: 13.0M, 950.2K, 12.
func FormatCompact(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000_000:
		return strconv.FormatFloat(float64(n)/1e9, 'f', 1, 64) + "B"
	case abs >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1e6, 'f', 1, 64) + "M"
	case abs >= 10_000:
		return strconv.FormatFloat(float64(n)/1e3, 'f', 1, 64) + "K"
	default:
		return FormatGroupedInt(n)
	}
}

// FormatDuration renders d as days, hours and minutes, e.g. "3d 4h 12m".
// Durations under a minute are shown in seconds.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d/time.Second))
	}
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	return strings.Join(parts, " ")
}

// FormatDate renders a calendar date as shown in card headers.
func FormatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}
