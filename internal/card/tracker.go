package card

import (
	"image"
	"image/color"

	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/render"
)

// Tracker side panel geometry.
const (
	trackerWidth     = 420
	trackerHeader    = 100
	trackerRowHeight = 34
	trackerFooter    = 20
	unknownDate      = "UNKNOWN"
	noRecord         = "No record"
)

type trackerPanel struct {
	env env
}

func (trackerPanel) Kind() SectionKind { return KindTracker }

func (trackerPanel) Present(s *domain.StatSnapshot) bool { return s.Tracker != nil }

func (trackerPanel) Size(s *domain.StatSnapshot, _ Options) image.Point {
	rows := 0
	if s.Tracker != nil {
		rows = len(s.Tracker.Gains)
	}
	return image.Pt(trackerWidth, trackerHeader+rows*trackerRowHeight+trackerFooter)
}

// trackerRange renders the tracked window, with UNKNOWN for each absent end.
func trackerRange(t *domain.WeeklyTracker) string {
	start, end := unknownDate, unknownDate
	if t.Start != nil {
		start = render.FormatDate(*t.Start)
	}
	if t.End != nil {
		end = render.FormatDate(*t.End)
	}
	return start + " - " + end
}

// gainColor is green for a gain that meets the record, yellow for a smaller
// gain and red for no gain at all.
func gainColor(g domain.SkillGain) color.NRGBA {
	switch {
	case g.MeetsRecord():
		return render.ColorGood
	case g.Gained > 0:
		return render.ColorFair
	default:
		return render.ColorBad
	}
}

func recordText(g domain.SkillGain) string {
	if !g.HasRecord {
		return noRecord
	}
	return "Record " + render.FormatGroupedInt(g.Record)
}

func (p trackerPanel) Build(s *domain.StatSnapshot, opts Options) Fragment {
	size := p.Size(s, opts)
	dst := p.env.newPanel(size, templateKey(KindTracker))
	f := p.env.faces()

	render.DrawCenteredShadowed(dst, f.title, "Weekly Progress", image.Rect(0, 12, size.X, 52), render.ColorText)
	render.DrawCenteredShadowed(dst, f.body, trackerRange(s.Tracker), image.Rect(0, 56, size.X, 88), render.ColorTextLight)

	for i, g := range s.Tracker.Gains {
		y := trackerHeader + i*trackerRowHeight
		row := image.Rect(textPadding, y, size.X-textPadding, y+trackerRowHeight)
		if i%2 == 0 {
			render.FillRect(dst, row, render.ColorCell)
		}

		icon := image.Rect(row.Min.X+4, row.Min.Y+3, row.Min.X+32, row.Max.Y-3)
		render.DrawIcon(dst, p.env.image(skillIcon(g.Skill)), icon)

		baseline := render.CenteredOrigin(f.body, g.Skill, row).Y
		render.DrawShadowed(dst, f.body, render.Truncate(f.body, displayName(g.Skill), 120), icon.Max.X+8, baseline, render.ColorTextLight)
		render.DrawRightAligned(dst, f.body, render.FormatSigned(g.Gained), row.Min.X+280, baseline, gainColor(g))
		render.DrawRightAligned(dst, f.small, recordText(g), row.Max.X-6, baseline, render.ColorTextMuted)
	}
	return Fragment{Kind: KindTracker, Image: dst}
}
