package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
)

// PieSlice is one labelled wedge of a pie chart.
type PieSlice struct {
	Label string
	Value float64
	Color color.NRGBA
}

// SliceAngle is the placement of a slice in degrees, clockwise from 12 o'clock.
type SliceAngle struct {
	Start float64
	Sweep float64
}

// Pie chart legend layout.
const (
	legendSwatch  = 14
	legendGap     = 8
	legendRow     = 22
	legendWidth   = 180
	pieHoleRatio  = 0.55
	pieStartAngle = -90
)

// PieChart renders slices as a circular chart with an optional legend and center icon.
type PieChart struct {
	Slices []PieSlice
	// Legend draws label and share of each slice to the right of the chart. It needs Face.
	Legend bool
	Face   font.Face
	// Icon, when set, is drawn inside a hole cut in the middle of the chart.
	Icon image.Image
	// Background fills the hole behind Icon. Defaults to ColorPanel.
	Background color.Color
}

// Total returns the sum of positive slice values.
func (p PieChart) Total() float64 {
	var total float64
	for _, s := range p.Slices {
		if s.Value > 0 {
			total += s.Value
		}
	}
	return total
}

// Angles returns one entry per slice, in input order. Negative values count as
// zero. When every value is zero the chart is empty and every sweep is zero.
func (p PieChart) Angles() []SliceAngle {
	out := make([]SliceAngle, len(p.Slices))
	total := p.Total()
	start := 0.0
	for i, s := range p.Slices {
		sweep := 0.0
		if total > 0 && s.Value > 0 {
			sweep = s.Value / total * 360
		}
		out[i] = SliceAngle{Start: start, Sweep: sweep}
		start += sweep
	}
	return out
}

// Size returns the pixel size Render produces for the given diameter.
func (p PieChart) Size(diameter int) image.Point {
	w := diameter
	h := diameter
	if p.legendEnabled() {
		w += legendGap + legendWidth
		h = max(h, len(p.Slices)*legendRow)
	}
	return image.Pt(w, h)
}

func (p PieChart) legendEnabled() bool {
	return p.Legend && p.Face != nil && len(p.Slices) > 0
}

// Render draws the chart into a new transparent raster.
func (p PieChart) Render(diameter int) *image.NRGBA {
	size := p.Size(diameter)
	dst := NewCanvas(size.X, size.Y, color.Transparent)
	chartTop := (size.Y - diameter) / 2
	chart := image.Rect(0, chartTop, diameter, chartTop+diameter)

	r := float64(diameter) / 2
	cx, cy := r, r
	angles := p.Angles()

	if p.Total() == 0 {
		fillPaths(dst, chart, [][]vec{arc(nil, cx, cy, r, 0, 360)}, ColorRemaining)
	}
	for i, a := range angles {
		if a.Sweep <= 0 {
			continue
		}
		wedge := []vec{{float32(cx), float32(cy)}}
		wedge = arc(wedge, cx, cy, r, pieStartAngle+a.Start, a.Sweep)
		fillPaths(dst, chart, [][]vec{wedge}, p.Slices[i].Color)
	}

	if p.Icon != nil {
		bg := p.Background
		if bg == nil {
			bg = ColorPanel
		}
		hole := r * pieHoleRatio
		fillPaths(dst, chart, [][]vec{arc(nil, cx, cy, hole, 0, 360)}, bg)
		inset := int(math.Ceil(hole * (1 - math.Sqrt2/2)))
		d := int(hole * 2)
		iconRect := image.Rect(int(cx-hole)+inset, int(cy-hole)+inset, int(cx-hole)+d-inset, int(cy-hole)+d-inset)
		DrawIcon(dst, p.Icon, iconRect.Add(chart.Min))
	}

	if p.legendEnabled() {
		p.drawLegend(dst, image.Pt(diameter+legendGap, (size.Y-len(p.Slices)*legendRow)/2))
	}
	return dst
}

func (p PieChart) drawLegend(dst *image.NRGBA, at image.Point) {
	total := p.Total()
	for i, s := range p.Slices {
		row := image.Rect(at.X, at.Y+i*legendRow, at.X+legendWidth, at.Y+(i+1)*legendRow)
		swatchTop := row.Min.Y + (legendRow-legendSwatch)/2
		FillRect(dst, image.Rect(row.Min.X, swatchTop, row.Min.X+legendSwatch, swatchTop+legendSwatch), s.Color)

		share := 0.0
		if total > 0 && s.Value > 0 {
			share = s.Value / total
		}
		label := Truncate(p.Face, s.Label+" "+FormatPercent(share), legendWidth-legendSwatch-legendGap)
		textRect := image.Rect(row.Min.X+legendSwatch+legendGap, row.Min.Y, row.Max.X, row.Max.Y)
		o := CenteredOrigin(p.Face, label, textRect)
		DrawShadowed(dst, p.Face, label, textRect.Min.X, o.Y, ColorTextLight)
	}
}
