package card

import (
	"image"
	"strconv"

	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/render"
)

const (
	overviewHeight = 180
	badgeSize      = 40
)

type overview struct {
	env env
}

func (overview) Kind() SectionKind { return KindOverview }

func (overview) Present(*domain.StatSnapshot) bool { return true }

func (overview) Size(*domain.StatSnapshot, Options) image.Point {
	return image.Pt(BaseWidth, overviewHeight)
}

// overviewLine is the stat summary under the player name.
func overviewLine(s *domain.StatSnapshot) string {
	total := render.Unranked
	if s.Overall.Ranked() {
		total = render.FormatGroupedInt(int64(s.Overall.Level))
	}
	return "Combat " + strconv.Itoa(s.Combat()) +
		"   Total " + total +
		"   Rank " + render.FormatRank(s.Overall.Rank)
}

func (o overview) Build(s *domain.StatSnapshot, opts Options) Fragment {
	size := o.Size(s, opts)
	dst := o.env.newPanel(size, templateKey(KindOverview))
	f := o.env.faces()

	x := 32
	nameBaseline := 84
	if s.Kind.HasBadge() {
		if badge := o.env.image(accountBadge(s.Kind)); badge != nil {
			top := nameBaseline - badgeSize + 4
			render.DrawIcon(dst, badge, image.Rect(x, top, x+badgeSize, top+badgeSize))
			x += badgeSize + 12
		}
	}
	render.DrawShadowed(dst, f.name, render.Truncate(f.name, s.Name, BaseWidth-x-32), x, nameBaseline, render.ColorTextLight)
	render.DrawShadowed(dst, f.heading, overviewLine(s), 32, 132, render.ColorText)

	if s.Overall.Ranked() {
		xp := render.FormatGroupedInt(s.Overall.Experience) + " xp"
		render.DrawRightAligned(dst, f.body, xp, BaseWidth-32, 132, render.ColorTextMuted)
	}
	if s.Kind.HasBadge() {
		render.DrawRightAligned(dst, f.small, displayName(string(s.Kind)), BaseWidth-32, 60, render.ColorTextMuted)
	}
	return Fragment{Kind: KindOverview, Image: dst}
}
