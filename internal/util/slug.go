// Package util provides small string helpers shared across packages.
package util

import (
	"regexp"
	"strings"
)

var (
	// Matches spaces, underscores, colons and slashes.
	wordSeparatorRe = regexp.MustCompile(`[\s_/:]+`)
	// Matches anything that is not a lowercase letter, digit or dash.
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9-]`)
	multipleDashRe    = regexp.MustCompile(`-+`)
)

// Slug converts a display name into the key used to look up its asset.
//
//	"Phosani's Nightmare"  → "phosanis-nightmare"
//	"TzKal-Zuk"            → "tzkal-zuk"
//	"hardcore_ironman"     → "hardcore-ironman"
//	"Clue Scrolls (hard)"  → "clue-scrolls-hard"
func Slug(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = wordSeparatorRe.ReplaceAllString(s, "-")
	s = nonAlphanumericRe.ReplaceAllString(s, "")
	s = multipleDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
