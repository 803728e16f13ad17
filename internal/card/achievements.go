package card

import (
	"image"
	"sort"

	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/render"
)

const (
	achievementRowHeight = 90
	achievementPie       = 70
)

type achievementPanel struct {
	env env
}

func (achievementPanel) Kind() SectionKind { return KindAchievements }

func (achievementPanel) Present(s *domain.StatSnapshot) bool { return len(s.Achievements) > 0 }

func (achievementPanel) Size(s *domain.StatSnapshot, _ Options) image.Point {
	completed, pending := splitAchievements(s.Achievements)
	rows := max(len(completed), len(pending))
	return image.Pt(BaseWidth, panelHeader+rows*achievementRowHeight+panelFooter)
}

// splitAchievements groups achievements into completed, most recent first, and
// in progress, closest to completion first. Each group keeps at most five rows.
// Completions without a date sort after dated ones.
func splitAchievements(all []domain.Achievement) (completed, pending []domain.Achievement) {
	for _, a := range all {
		if a.Completed {
			completed = append(completed, a)
		} else {
			pending = append(pending, a)
		}
	}
	sort.SliceStable(completed, func(i, j int) bool {
		a, b := completed[i].CompletedAt, completed[j].CompletedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Fraction() > pending[j].Fraction()
	})
	return completed[:min(len(completed), maxRowsShown)], pending[:min(len(pending), maxRowsShown)]
}

// achievementSummary is the short line under an achievement name.
func achievementSummary(a domain.Achievement) string {
	if a.Completed {
		if a.CompletedAt != nil {
			return "Completed " + render.FormatDate(*a.CompletedAt)
		}
		return "Completed"
	}
	s := render.FormatGroupedInt(a.Progress) + " / " + render.FormatGroupedInt(a.Threshold)
	if a.Measure != "" {
		s += " " + a.Measure
	}
	return s + " (" + render.FormatPercent(a.Fraction()) + ")"
}

func (p achievementPanel) Build(s *domain.StatSnapshot, opts Options) Fragment {
	size := p.Size(s, opts)
	dst := p.env.newPanel(size, templateKey(KindAchievements))
	f := p.env.faces()
	drawPanelTitle(dst, f.heading, "Achievements")

	completed, pending := splitAchievements(s.Achievements)
	half := (BaseWidth - 2*textPadding) / 2
	for col, group := range [][]domain.Achievement{completed, pending} {
		x := textPadding + col*half
		for i, a := range group {
			y := panelHeader + i*achievementRowHeight
			p.drawRow(dst, f, image.Rect(x, y, x+half, y+achievementRowHeight), a)
		}
	}
	return Fragment{Kind: KindAchievements, Image: dst}
}

func (p achievementPanel) drawRow(dst *image.NRGBA, f faces, r image.Rectangle, a domain.Achievement) {
	render.FillRect(dst, r.Inset(3), render.ColorCell)

	pie := render.PieChart{
		Slices: []render.PieSlice{
			{Label: "complete", Value: a.Fraction(), Color: render.ColorGood},
			{Label: "remaining", Value: 1 - a.Fraction(), Color: render.ColorRemaining},
		},
		Icon:       p.env.image(achievementIcon(a.Name)),
		Background: render.ColorCell,
	}
	top := r.Min.Y + (r.Dy()-achievementPie)/2
	render.Overlay(dst, pie.Render(achievementPie), image.Pt(r.Min.X+10, top))
	textX := r.Min.X + 10 + achievementPie + 14
	width := r.Max.X - textX - 10

	render.DrawShadowed(dst, f.heading, render.Truncate(f.heading, a.Name, width), textX, r.Min.Y+38, render.ColorText)
	render.DrawShadowed(dst, f.body, render.Truncate(f.body, achievementSummary(a), width), textX, r.Min.Y+66, render.ColorTextLight)
}
