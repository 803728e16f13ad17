package card

import (
	"strconv"

	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/util"
)

// Asset keys are slash separated paths relative to the asset root, without extension.
const (
	leagueMap   = "league/map"
	lockedRelic = "league/relics/locked"
)

func skillIcon(name string) string {
	return "skills/" + util.Slug(name)
}

func bossIcon(name string) string {
	return "bosses/" + util.Slug(name)
}

func bossBackground(name string) string {
	return "backgrounds/bosses/" + util.Slug(name)
}

func clueIcon(tier string) string {
	return "clues/" + util.Slug(tier)
}

func achievementIcon(name string) string {
	return "achievements/" + util.Slug(name)
}

func regionOverlay(region string) string {
	return "league/regions/" + util.Slug(region)
}

func relicIcon(tier int) string {
	return "league/relics/" + strconv.Itoa(tier)
}

func tierBadge(tier string) string {
	return "league/tiers/" + util.Slug(tier)
}

func accountBadge(kind domain.AccountKind) string {
	return "badges/" + util.Slug(string(kind))
}

func templateKey(section SectionKind) string {
	return "templates/" + string(section)
}
