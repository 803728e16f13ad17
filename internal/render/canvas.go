// Package render holds the drawing primitives shared by every stat card section:
// notched cell geometry, text placement, number formatting, pie charts and progress bars.
package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Card palette.
var (
	ColorBackground = color.NRGBA{R: 0x2b, G: 0x25, B: 0x1c, A: 0xff}
	ColorPanel      = color.NRGBA{R: 0x3e, G: 0x35, B: 0x29, A: 0xff}
	ColorFrame      = color.NRGBA{R: 0x1a, G: 0x16, B: 0x10, A: 0xff}
	ColorCell       = color.NRGBA{R: 0x4f, G: 0x45, B: 0x37, A: 0xff}
	ColorCellBorder = color.NRGBA{R: 0x6e, G: 0x60, B: 0x4c, A: 0xff}
	ColorText       = color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	ColorTextLight  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorTextMuted  = color.NRGBA{R: 0xb8, G: 0xa9, B: 0x8f, A: 0xff}
	ColorShadow     = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	ColorGood       = color.NRGBA{R: 0x3c, G: 0xd0, B: 0x4a, A: 0xff}
	ColorFair       = color.NRGBA{R: 0xf0, G: 0xc8, B: 0x28, A: 0xff}
	ColorBad        = color.NRGBA{R: 0xe0, G: 0x3c, B: 0x31, A: 0xff}
	ColorTrack      = color.NRGBA{R: 0x24, G: 0x1f, B: 0x18, A: 0xff}
	ColorRemaining  = color.NRGBA{R: 0x5a, G: 0x52, B: 0x47, A: 0xff}
	ColorLocked     = color.NRGBA{R: 0x30, G: 0x2b, B: 0x24, A: 0xff}

	// Overlays are translucent and drawn with the Over operator.
	ColorWarningTint  = color.NRGBA{R: 0xc8, G: 0x28, B: 0x28, A: 0x6e}
	ColorShadowTint   = color.NRGBA{A: 0x8c}
	ColorUnrankedTint = color.NRGBA{R: 0xb4, G: 0x1e, B: 0x1e, A: 0x78}
	ColorMaxedTint    = color.NRGBA{R: 0xd4, G: 0xaf, B: 0x37, A: 0x78}
	ColorRecordBorder = color.NRGBA{R: 0x40, G: 0xe0, B: 0xff, A: 0xff}
	ColorClosestBand  = color.NRGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}
	ColorDebugFill    = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0x50}
)

// NewCanvas allocates an owned raster filled with bg.
func NewCanvas(w, h int, bg color.Color) *image.NRGBA {
	return imaging.New(w, h, bg)
}

// FillRect composites c over r.
func FillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// StrokeRect draws a rectangular frame of the given width inside r.
func StrokeRect(dst draw.Image, r image.Rectangle, width int, c color.Color) {
	if width <= 0 {
		return
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+width, r.Min.X+width, r.Max.Y-width),
		image.Rect(r.Max.X-width, r.Min.Y+width, r.Max.X, r.Max.Y-width),
	}
	for _, e := range edges {
		draw.Draw(dst, e, src, image.Point{}, draw.Src)
	}
}

// Blit copies src into dst with its top-left corner at at. Pixels are copied,
// so dst never aliases src.
func Blit(dst draw.Image, src image.Image, at image.Point) {
	b := src.Bounds()
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(b.Size())}, src, b.Min, draw.Src)
}

// Overlay composites src over dst with its top-left corner at at.
func Overlay(dst draw.Image, src image.Image, at image.Point) {
	b := src.Bounds()
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(b.Size())}, src, b.Min, draw.Over)
}

// DrawIcon scales icon to fit inside r, preserving aspect ratio, and composites
// it centered. A nil icon is skipped.
func DrawIcon(dst draw.Image, icon image.Image, r image.Rectangle) {
	if icon == nil || r.Empty() {
		return
	}
	fitted := imaging.Fit(icon, r.Dx(), r.Dy(), imaging.Lanczos)
	fb := fitted.Bounds()
	at := image.Pt(r.Min.X+(r.Dx()-fb.Dx())/2, r.Min.Y+(r.Dy()-fb.Dy())/2)
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(fb.Size())}, fitted, fb.Min, draw.Over)
}

// DrawCover scales img to fill r completely, cropping the overflow around the center.
func DrawCover(dst draw.Image, img image.Image, r image.Rectangle) {
	if img == nil || r.Empty() {
		return
	}
	filled := imaging.Fill(img, r.Dx(), r.Dy(), imaging.Center, imaging.Lanczos)
	draw.Draw(dst, r, filled, filled.Bounds().Min, draw.Over)
}
