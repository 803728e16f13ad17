package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// progressOutline is the outline width of a progress bar in pixels.
const progressOutline = 2

// ProgressBar is a rounded horizontal bar showing a fraction in [0,1].
type ProgressBar struct {
	Width, Height int
	Fraction      float64
	Fill          color.Color // defaults to ColorGood
	// Face, when set, draws the centered percentage label.
	Face font.Face
}

// Clamped returns the fraction limited to [0,1].
func (b ProgressBar) Clamped() float64 {
	switch {
	case b.Fraction < 0:
		return 0
	case b.Fraction > 1:
		return 1
	default:
		return b.Fraction
	}
}

// FilledWidth returns the width of the filled part, never narrower than the
// bar's rounded end once any progress exists.
func (b ProgressBar) FilledWidth() int {
	f := b.Clamped()
	if f == 0 {
		return 0
	}
	inner := b.Width - 2*progressOutline
	w := int(f * float64(inner))
	if minW := b.Height - 2*progressOutline; w < minW {
		w = minW
	}
	return min(w, inner)
}

// Render draws the bar into a new transparent raster of Width x Height.
func (b ProgressBar) Render() *image.NRGBA {
	dst := NewCanvas(b.Width, b.Height, color.Transparent)
	bounds := dst.Bounds()
	w, h := float64(b.Width), float64(b.Height)
	radius := h / 2
	o := float64(progressOutline)

	outer := roundedRect(0, 0, w, h, radius)
	inner := roundedRect(o, o, w-o, h-o, radius-o)
	fillPaths(dst, bounds, [][]vec{inner}, ColorTrack)

	if fw := b.FilledWidth(); fw > 0 {
		fill := b.Fill
		if fill == nil {
			fill = ColorGood
		}
		fillPaths(dst, bounds, [][]vec{roundedRect(o, o, o+float64(fw), h-o, radius-o)}, fill)
	}

	fillPaths(dst, bounds, [][]vec{outer, reversedPath(inner)}, ColorFrame)

	if b.Face != nil {
		DrawCenteredShadowed(dst, b.Face, FormatPercent(b.Clamped()), bounds, ColorTextLight)
	}
	return dst
}
