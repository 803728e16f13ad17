package render

import (
	"fmt"
	"image"
)

// Point is an integer vertex in fragment pixel space.
type Point struct {
	X, Y int
}

// Polygon is a closed ring of vertices. The closing edge is implicit.
type Polygon []Point

// twiceSignedArea returns the shoelace sum. It is exact for integer vertices.
func (p Polygon) twiceSignedArea() int64 {
	var sum int64
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		sum += int64(a.X)*int64(b.Y) - int64(b.X)*int64(a.Y)
	}
	return sum
}

// Area returns the unsigned area enclosed by the ring.
func (p Polygon) Area() float64 {
	a := p.twiceSignedArea()
	if a < 0 {
		a = -a
	}
	return float64(a) / 2
}

// Reversed returns the ring with opposite winding.
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// Region is a set of rings filled with the non-zero winding rule. A ring wound
// opposite to its enclosing ring cuts a hole.
type Region struct {
	Rings []Polygon
}

// Area returns the enclosed area of the region, holes subtracted.
func (r Region) Area() float64 {
	var sum int64
	for _, ring := range r.Rings {
		sum += ring.twiceSignedArea()
	}
	if sum < 0 {
		sum = -sum
	}
	return float64(sum) / 2
}

// Vertices returns every vertex of the region in ring order.
func (r Region) Vertices() []Point {
	var out []Point
	for _, ring := range r.Rings {
		out = append(out, ring...)
	}
	return out
}

// NotchedCell describes the corner-clipped, bordered shape of a stat cell.
type NotchedCell struct {
	Notch  int // length of the 45 degree corner cut along each edge
	Border int // width of the border band
}

// MinSize is the smallest cell the shape can be built for.
func (c NotchedCell) MinSize() image.Point {
	m := 2 * (c.Notch + c.Border)
	return image.Pt(m+1, m+1)
}

func (c NotchedCell) check(size image.Point) {
	min := c.MinSize()
	if c.Notch < 0 || c.Border < 0 || size.X < min.X || size.Y < min.Y {
		panic(fmt.Sprintf("render: notched cell %dx%d cannot hold notch %d and border %d",
			size.X, size.Y, c.Notch, c.Border))
	}
}

// notched builds a clockwise (in screen space) chamfered rectangle.
func notched(x0, y0, x1, y1, n int) Polygon {
	return Polygon{
		{x0 + n, y0},
		{x1 - n, y0},
		{x1, y0 + n},
		{x1, y1 - n},
		{x1 - n, y1},
		{x0 + n, y1},
		{x0, y1 - n},
		{x0, y0 + n},
	}
}

// OuterRegion is the full cell including its border.
func (c NotchedCell) OuterRegion(size image.Point) Region {
	c.check(size)
	return Region{Rings: []Polygon{notched(0, 0, size.X, size.Y, c.Notch)}}
}

// InnerRegion is the fillable interior inside the border band.
func (c NotchedCell) InnerRegion(size image.Point) Region {
	c.check(size)
	b := c.Border
	return Region{Rings: []Polygon{notched(b, b, size.X-b, size.Y-b, c.Notch)}}
}

// BorderRegion is OuterRegion minus InnerRegion. It shares the vertices of both
// rings, the inner one reversed so the winding rule leaves the interior empty.
func (c NotchedCell) BorderRegion(size image.Point) Region {
	outer := c.OuterRegion(size).Rings[0]
	inner := c.InnerRegion(size).Rings[0]
	return Region{Rings: []Polygon{outer, inner.Reversed()}}
}
