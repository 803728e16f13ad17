package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// vec is a sub-pixel vertex used for curved outlines.
type vec struct {
	X, Y float32
}

func (p Polygon) path() []vec {
	out := make([]vec, len(p))
	for i, v := range p {
		out[i] = vec{float32(v.X), float32(v.Y)}
	}
	return out
}

// fillPaths rasterises rings (coordinates relative to bounds.Min) onto dst with src.
func fillPaths(dst draw.Image, bounds image.Rectangle, rings [][]vec, src color.Color) {
	if bounds.Empty() || len(rings) == 0 {
		return
	}
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Over
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		z.MoveTo(ring[0].X, ring[0].Y)
		for _, v := range ring[1:] {
			z.LineTo(v.X, v.Y)
		}
		z.ClosePath()
	}
	z.Draw(dst, bounds, image.NewUniform(src), image.Point{})
}

// FillRegion paints region onto dst with its origin placed at at.
func FillRegion(dst draw.Image, region Region, at image.Point, c color.Color) {
	if len(region.Rings) == 0 {
		return
	}
	verts := region.Vertices()
	box := image.Rect(verts[0].X, verts[0].Y, verts[0].X, verts[0].Y)
	for _, v := range verts[1:] {
		box.Min.X = min(box.Min.X, v.X)
		box.Min.Y = min(box.Min.Y, v.Y)
		box.Max.X = max(box.Max.X, v.X)
		box.Max.Y = max(box.Max.Y, v.Y)
	}

	rings := make([][]vec, 0, len(region.Rings))
	for _, ring := range region.Rings {
		p := ring.path()
		for i := range p {
			p[i].X -= float32(box.Min.X)
			p[i].Y -= float32(box.Min.Y)
		}
		rings = append(rings, p)
	}
	fillPaths(dst, box.Add(at), rings, c)
}

// arc appends points along a circle from start to start+sweep (degrees, clockwise
// on screen, 0 pointing right). Segments never span more than two degrees.
func arc(out []vec, cx, cy, r, start, sweep float64) []vec {
	steps := int(math.Ceil(math.Abs(sweep) / 2))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		a := (start + sweep*float64(i)/float64(steps)) * math.Pi / 180
		out = append(out, vec{float32(cx + r*math.Cos(a)), float32(cy + r*math.Sin(a))})
	}
	return out
}

// roundedRect returns a rectangle ring with corner radius r.
func roundedRect(x0, y0, x1, y1, r float64) []vec {
	if limit := math.Min(x1-x0, y1-y0) / 2; r > limit {
		r = limit
	}
	var out []vec
	out = arc(out, x1-r, y0+r, r, -90, 90)
	out = arc(out, x1-r, y1-r, r, 0, 90)
	out = arc(out, x0+r, y1-r, r, 90, 90)
	out = arc(out, x0+r, y0+r, r, 180, 90)
	return out
}

func reversedPath(p []vec) []vec {
	out := make([]vec, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}
