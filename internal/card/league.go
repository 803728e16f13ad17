package card

import (
	"image"
	"strconv"

	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/render"
)

// League panel geometry.
const (
	factionUnlocksHeight  = 400
	factionStandingHeight = 150
	relicSlots            = 6
	relicColumns          = 3
	tierBadgeSize         = 96
)

type factionUnlocks struct {
	env env
}

func (factionUnlocks) Kind() SectionKind { return KindFactionUnlocks }

func (factionUnlocks) Present(s *domain.StatSnapshot) bool { return s.Faction != nil }

func (factionUnlocks) Size(*domain.StatSnapshot, Options) image.Point {
	return image.Pt(BaseWidth, factionUnlocksHeight)
}

// unlockedTiers marks the relic slots, 1 through 6, that hold a relic.
func unlockedTiers(f *domain.FactionInfo) [relicSlots]*domain.Relic {
	var slots [relicSlots]*domain.Relic
	for i := range f.Relics {
		r := &f.Relics[i]
		if r.Tier >= 1 && r.Tier <= relicSlots && slots[r.Tier-1] == nil {
			slots[r.Tier-1] = r
		}
	}
	return slots
}

func (p factionUnlocks) Build(s *domain.StatSnapshot, opts Options) Fragment {
	size := p.Size(s, opts)
	dst := p.env.newPanel(size, templateKey(KindFactionUnlocks))
	f := p.env.faces()
	drawPanelTitle(dst, f.heading, "League Unlocks")

	half := (BaseWidth - 3*textPadding) / 2
	mapBox := image.Rect(textPadding, panelHeader, textPadding+half, size.Y-panelFooter-panelBorder)
	render.FillRect(dst, mapBox, render.ColorLocked)
	if m := p.env.image(leagueMap); m != nil {
		render.DrawCover(dst, m, mapBox)
		for _, region := range s.Faction.Regions {
			render.DrawCover(dst, p.env.image(regionOverlay(region)), mapBox)
		}
	}
	if len(s.Faction.Regions) == 0 {
		render.DrawCenteredShadowed(dst, f.body, "No regions unlocked", mapBox, render.ColorTextMuted)
	}

	grid := image.Rect(mapBox.Max.X+textPadding, panelHeader, size.X-textPadding, mapBox.Max.Y)
	slotW := grid.Dx() / relicColumns
	slotH := grid.Dy() / (relicSlots / relicColumns)
	for i, relic := range unlockedTiers(s.Faction) {
		x := grid.Min.X + (i%relicColumns)*slotW
		y := grid.Min.Y + (i/relicColumns)*slotH
		p.drawSlot(dst, f, image.Rect(x, y, x+slotW, y+slotH).Inset(4), i+1, relic)
	}
	return Fragment{Kind: KindFactionUnlocks, Image: dst}
}

func (p factionUnlocks) drawSlot(dst *image.NRGBA, f faces, r image.Rectangle, tier int, relic *domain.Relic) {
	fill := render.ColorCell
	icon, label := relicIcon(tier), ""
	if relic == nil {
		fill, icon, label = render.ColorLocked, lockedRelic, "Locked"
	} else {
		label = relic.Name
	}
	drawCell(dst, r, fill)

	iconBox := image.Rect(r.Min.X+20, r.Min.Y+14, r.Max.X-20, r.Max.Y-40)
	render.DrawIcon(dst, p.env.image(icon), iconBox)

	caption := image.Rect(r.Min.X+6, r.Max.Y-38, r.Max.X-6, r.Max.Y-8)
	text := render.Truncate(f.small, label, caption.Dx())
	render.DrawCenteredShadowed(dst, f.small, text, caption, render.ColorTextLight)
	render.DrawShadowed(dst, f.small, "T"+strconv.Itoa(tier), r.Min.X+10, r.Min.Y+22, render.ColorTextMuted)
}

type factionStanding struct {
	env env
}

func (factionStanding) Kind() SectionKind { return KindFactionStanding }

// Present requires a standing tier or some points to show.
func (factionStanding) Present(s *domain.StatSnapshot) bool {
	return s.Faction != nil && (s.Faction.Tier != "" || s.Faction.Points > 0)
}

func (factionStanding) Size(*domain.StatSnapshot, Options) image.Point {
	return image.Pt(BaseWidth, factionStandingHeight)
}

func (p factionStanding) Build(s *domain.StatSnapshot, opts Options) Fragment {
	size := p.Size(s, opts)
	dst := p.env.newPanel(size, templateKey(KindFactionStanding))
	f := p.env.faces()

	top := (size.Y - tierBadgeSize) / 2
	badge := image.Rect(32, top, 32+tierBadgeSize, top+tierBadgeSize)
	tier := "Unranked"
	if s.Faction.Tier != "" {
		tier = displayName(s.Faction.Tier)
		render.DrawIcon(dst, p.env.image(tierBadge(s.Faction.Tier)), badge)
	}

	textX := badge.Max.X + 24
	render.DrawShadowed(dst, f.title, tier, textX, 70, render.ColorText)
	render.DrawShadowed(dst, f.heading, render.FormatGroupedInt(s.Faction.Points)+" league points", textX, 110, render.ColorTextLight)
	render.DrawRightAligned(dst, f.body, render.FormatCompact(s.Faction.Points), size.X-32, 110, render.ColorTextMuted)
	return Fragment{Kind: KindFactionStanding, Image: dst}
}
