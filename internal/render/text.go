package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// shadowOffset is the drop shadow displacement used for card text.
var shadowOffset = image.Pt(1, 1)

// NewFace creates a face of the given size from f. Faces are not safe for
// concurrent use, so each section builds its own. A nil font or a failing
// face falls back to the fixed 7x13 bitmap face.
func NewFace(f *opentype.Font, size float64) font.Face {
	if f == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// MeasureString returns the advance width of s in whole pixels.
func MeasureString(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// LineHeight returns the ascent plus descent of face.
func LineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// DrawText draws s with its baseline origin at (x, baseline).
func DrawText(dst draw.Image, face font.Face, s string, x, baseline int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// DrawShadowed draws s over a one pixel black drop shadow.
func DrawShadowed(dst draw.Image, face font.Face, s string, x, baseline int, c color.Color) {
	DrawText(dst, face, s, x+shadowOffset.X, baseline+shadowOffset.Y, ColorShadow)
	DrawText(dst, face, s, x, baseline, c)
}

// CenteredOrigin returns the baseline origin that centers s inside r on both axes.
func CenteredOrigin(face font.Face, s string, r image.Rectangle) image.Point {
	m := face.Metrics()
	w := MeasureString(face, s)
	h := (m.Ascent + m.Descent).Ceil()
	x := r.Min.X + (r.Dx()-w)/2
	baseline := r.Min.Y + (r.Dy()-h)/2 + m.Ascent.Ceil()
	return image.Pt(x, baseline)
}

// DrawCentered draws s centered inside r.
func DrawCentered(dst draw.Image, face font.Face, s string, r image.Rectangle, c color.Color) {
	o := CenteredOrigin(face, s, r)
	DrawText(dst, face, s, o.X, o.Y, c)
}

// DrawCenteredShadowed draws s centered inside r with a drop shadow.
func DrawCenteredShadowed(dst draw.Image, face font.Face, s string, r image.Rectangle, c color.Color) {
	o := CenteredOrigin(face, s, r)
	DrawShadowed(dst, face, s, o.X, o.Y, c)
}

// DrawRightAligned draws s so that it ends at right.
func DrawRightAligned(dst draw.Image, face font.Face, s string, right, baseline int, c color.Color) {
	DrawShadowed(dst, face, s, right-MeasureString(face, s), baseline, c)
}

// Truncate shortens s with an ellipsis until it fits in width pixels.
func Truncate(face font.Face, s string, width int) string {
	if MeasureString(face, s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if MeasureString(face, candidate) <= width {
			return candidate
		}
	}
	return ""
}
