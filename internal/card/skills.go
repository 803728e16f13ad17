package card

import (
	"image"
	"strconv"

	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/render"
)

// Skill grid geometry.
const (
	gridColumns        = 6
	gridPadding        = 12
	cellWidth          = 196
	compactCellHeight  = 80
	detailedCellHeight = 110
)

// highlight is the interior tint applied to a skill cell.
type highlight int

const (
	highlightNone highlight = iota
	highlightUnranked
	highlightMaxed
)

// cellSpec is everything the grid decided about one cell before drawing it.
type cellSpec struct {
	Name      string
	Icon      string
	LevelText string
	XPText    string
	Progress  float64
	Highlight highlight
	Highest   bool // highest experience, border band outline
	Closest   bool // closest to next level, wider inner band
	Total     bool
}

type skillGrid struct {
	env env
}

func (skillGrid) Kind() SectionKind { return KindSkills }

func (skillGrid) Present(*domain.StatSnapshot) bool { return true }

func (skillGrid) Size(s *domain.StatSnapshot, opts Options) image.Point {
	rows := (len(s.Skills) + 1 + gridColumns - 1) / gridColumns
	return image.Pt(BaseWidth, 2*gridPadding+rows*cellHeight(opts))
}

func cellHeight(opts Options) int {
	if opts.ShowExperience {
		return detailedCellHeight
	}
	return compactCellHeight
}

// planCells derives the content and styling of every cell, total cell last.
func (g skillGrid) planCells(s *domain.StatSnapshot, opts Options) []cellSpec {
	rules := g.env.rules
	specs := make([]cellSpec, 0, len(s.Skills)+1)

	var highest int64
	for _, sk := range s.Skills {
		if sk.Ranked() && sk.Experience > highest {
			highest = sk.Experience
		}
	}

	closest, best := -1, -1.0
	maxed := 0
	for i, sk := range s.Skills {
		isMaxed := rules.Maxed(sk, opts.VirtualLevels)
		if isMaxed {
			maxed++
		}

		spec := cellSpec{
			Name:      sk.Name,
			Icon:      skillIcon(sk.Name),
			LevelText: render.Unranked,
		}
		switch {
		case !sk.Ranked():
			spec.Highlight = highlightUnranked
		case isMaxed && opts.HighlightMaxed:
			spec.Highlight = highlightMaxed
		}
		if sk.Ranked() {
			spec.LevelText = strconv.Itoa(rules.DisplayLevel(sk, opts.VirtualLevels))
			spec.XPText = render.FormatGroupedInt(sk.Experience)
			spec.Progress = domain.ProgressToNextLevel(sk.Experience)
			if isMaxed {
				spec.Progress = 1
			}
			if !isMaxed && spec.Progress > best {
				closest, best = i, spec.Progress
			}
		}
		spec.Highest = opts.OutlineRecords && sk.Ranked() && highest > 0 && sk.Experience == highest
		specs = append(specs, spec)
	}
	if opts.OutlineRecords && closest >= 0 {
		specs[closest].Closest = true
	}

	total := cellSpec{
		Name:      "Total",
		Total:     true,
		LevelText: render.Unranked,
		Progress:  float64(maxed) / float64(max(len(s.Skills), 1)),
	}
	if s.Overall.Ranked() {
		total.LevelText = strconv.Itoa(s.Overall.Level)
		total.XPText = render.FormatGroupedInt(s.Overall.Experience)
	}
	if opts.HighlightMaxed {
		total.XPText = strconv.Itoa(maxed) + " / " + strconv.Itoa(len(s.Skills)) + " maxed"
	}
	return append(specs, total)
}

// cellRect is the placement of the i-th cell inside the grid fragment.
func cellRect(i int, opts Options) image.Rectangle {
	h := cellHeight(opts)
	x := gridPadding + (i%gridColumns)*cellWidth
	y := gridPadding + (i/gridColumns)*h
	return image.Rect(x, y, x+cellWidth, y+h)
}

func (g skillGrid) Build(s *domain.StatSnapshot, opts Options) Fragment {
	size := g.Size(s, opts)
	dst := render.NewCanvas(size.X, size.Y, render.ColorBackground)
	render.DrawCover(dst, g.env.image(templateKey(KindSkills)), dst.Bounds())
	f := g.env.faces()

	for i, spec := range g.planCells(s, opts) {
		g.drawCell(dst, f, cellRect(i, opts), spec, opts)
	}
	return Fragment{Kind: KindSkills, Image: dst}
}

func (g skillGrid) drawCell(dst *image.NRGBA, f faces, r image.Rectangle, spec cellSpec, opts Options) {
	shape := render.NotchedCell{Notch: cellNotch, Border: cellBorder}
	fill := render.ColorCell
	if spec.Total {
		fill = render.ColorFrame
	}
	drawCell(dst, r, fill)

	inner := shape.InnerRegion(r.Size())
	switch spec.Highlight {
	case highlightUnranked:
		render.FillRegion(dst, inner, r.Min, render.ColorUnrankedTint)
	case highlightMaxed:
		render.FillRegion(dst, inner, r.Min, render.ColorMaxedTint)
	}
	if opts.DebugFill {
		render.FillRegion(dst, inner, r.Min, render.ColorDebugFill)
	}

	levelColor := render.ColorText
	if spec.Total {
		levelColor = render.ColorTextLight
	}

	if opts.ShowExperience {
		icon := image.Rect(r.Min.X+12, r.Min.Y+10, r.Min.X+52, r.Min.Y+50)
		level := image.Rect(r.Min.X+60, r.Min.Y+10, r.Max.X-12, r.Min.Y+50)
		xp := image.Rect(r.Min.X+12, r.Min.Y+52, r.Max.X-12, r.Min.Y+76)
		bar := image.Rect(r.Min.X+12, r.Min.Y+80, r.Max.X-12, r.Min.Y+98)

		g.drawLabelOrIcon(dst, f, spec, icon)
		render.DrawCenteredShadowed(dst, f.title, spec.LevelText, level, levelColor)
		if spec.XPText != "" {
			render.DrawCenteredShadowed(dst, f.small, spec.XPText, xp, render.ColorTextLight)
		}
		if spec.XPText != "" || spec.Total {
			pb := render.ProgressBar{Width: bar.Dx(), Height: bar.Dy(), Fraction: spec.Progress, Face: f.small}
			render.Overlay(dst, pb.Render(), bar.Min)
		}
	} else {
		icon := image.Rect(r.Min.X+14, r.Min.Y+16, r.Min.X+62, r.Min.Y+64)
		level := image.Rect(r.Min.X+70, r.Min.Y, r.Max.X-12, r.Max.Y)

		g.drawLabelOrIcon(dst, f, spec, icon)
		render.DrawCenteredShadowed(dst, f.title, spec.LevelText, level, levelColor)
		if spec.Total && opts.HighlightMaxed {
			note := image.Rect(level.Min.X, r.Max.Y-28, level.Max.X, r.Max.Y-8)
			render.DrawCenteredShadowed(dst, f.small, spec.XPText, note, render.ColorTextMuted)
		}
	}

	if spec.Closest {
		band := render.NotchedCell{Notch: cellNotch, Border: closestBand}
		render.FillRegion(dst, band.BorderRegion(r.Size()), r.Min, render.ColorClosestBand)
	}
	if spec.Highest {
		render.FillRegion(dst, shape.BorderRegion(r.Size()), r.Min, render.ColorRecordBorder)
	}
}

// drawLabelOrIcon draws the skill icon, or the cell name when the icon is missing.
func (g skillGrid) drawLabelOrIcon(dst *image.NRGBA, f faces, spec cellSpec, r image.Rectangle) {
	if spec.Total {
		render.DrawCenteredShadowed(dst, f.heading, spec.Name, r, render.ColorText)
		return
	}
	if icon := g.env.image(spec.Icon); icon != nil {
		render.DrawIcon(dst, icon, r.Inset(iconInset))
		return
	}
	label := render.Truncate(f.small, displayName(spec.Name), r.Dx())
	render.DrawCenteredShadowed(dst, f.small, label, r, render.ColorTextMuted)
}
