package card

import (
	"fmt"
	"image"

	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/render"
)

// BaseWidth is the card width without the tracker side panel.
const BaseWidth = 1200

// Layout is the ordered section set of one edition. Vertical sections stack
// top to bottom in slice order. Side, when present, sits right of the stack at
// the top edge.
type Layout struct {
	Vertical []Section
	Side     Section
}

// Placement is the rectangle reserved for one section on the canvas.
type Placement struct {
	Kind SectionKind
	Rect image.Rectangle
}

// CanvasPlan is the canvas size and the placement of every present section.
type CanvasPlan struct {
	Width      int
	Height     int
	Placements []Placement
}

// Placement returns the reserved rectangle of kind.
func (p CanvasPlan) Placement(kind SectionKind) (image.Rectangle, bool) {
	for _, pl := range p.Placements {
		if pl.Kind == kind {
			return pl.Rect, true
		}
	}
	return image.Rectangle{}, false
}

// Kinds returns the placed sections in placement order.
func (p CanvasPlan) Kinds() []SectionKind {
	out := make([]SectionKind, len(p.Placements))
	for i, pl := range p.Placements {
		out[i] = pl.Kind
	}
	return out
}

// Plan decides which sections are present and where they go. Height is the
// sum of the present vertical sections. The side panel widens the canvas and
// raises its height when taller than the stack, so it is never clipped.
//
// Plan panics when a section reports a non-positive size or a vertical
// section wider than BaseWidth. Both mean the snapshot broke its invariants.
func (l Layout) Plan(s *domain.StatSnapshot, opts Options) CanvasPlan {
	plan := CanvasPlan{Width: BaseWidth}
	for _, sec := range l.Vertical {
		if !sec.Present(s) {
			continue
		}
		size := checkedSize(sec, s, opts)
		if size.X > BaseWidth {
			panic(fmt.Sprintf("card: section %s is %d wide, wider than the card", sec.Kind(), size.X))
		}
		plan.Placements = append(plan.Placements, Placement{
			Kind: sec.Kind(),
			Rect: image.Rect(0, plan.Height, size.X, plan.Height+size.Y),
		})
		plan.Height += size.Y
	}

	if l.Side != nil && l.Side.Present(s) {
		size := checkedSize(l.Side, s, opts)
		plan.Placements = append(plan.Placements, Placement{
			Kind: l.Side.Kind(),
			Rect: image.Rect(BaseWidth, 0, BaseWidth+size.X, size.Y),
		})
		plan.Width += size.X
		plan.Height = max(plan.Height, size.Y)
	}
	return plan
}

func checkedSize(sec Section, s *domain.StatSnapshot, opts Options) image.Point {
	size := sec.Size(s, opts)
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("card: section %s has impossible size %v", sec.Kind(), size))
	}
	return size
}

// Sections returns the present sections of the layout in placement order.
func (l Layout) Sections(s *domain.StatSnapshot) []Section {
	var out []Section
	for _, sec := range l.Vertical {
		if sec.Present(s) {
			out = append(out, sec)
		}
	}
	if l.Side != nil && l.Side.Present(s) {
		out = append(out, l.Side)
	}
	return out
}

// Compose copies each fragment into its reserved rectangle on a new canvas.
// A fragment larger than its reservation or without one panics.
func Compose(plan CanvasPlan, fragments []Fragment) *image.NRGBA {
	canvas := render.NewCanvas(plan.Width, plan.Height, render.ColorBackground)
	for _, frag := range fragments {
		r, ok := plan.Placement(frag.Kind)
		if !ok {
			panic(fmt.Sprintf("card: fragment %s has no placement", frag.Kind))
		}
		if size := frag.Size(); size.X > r.Dx() || size.Y > r.Dy() {
			panic(fmt.Sprintf("card: fragment %s is %v, reserved %v", frag.Kind, size, r.Size()))
		}
		render.Blit(canvas, frag.Image, r.Min)
	}
	return canvas
}
