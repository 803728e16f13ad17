// Package card turns a player stat snapshot into a composite stat card image.
//
// Each section of the card is built by an independent Section into its own
// Fragment. The layout engine decides which sections are present, plans the
// canvas and copies fragments into place. Edition builders bundle a section
// set with the caps of one game edition, and the Compositor drives fetching,
// progress reporting and encoding around them.
package card

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/render"
)

// SectionKind names one region of the card.
type SectionKind string

// Card sections.
const (
	KindOverview        SectionKind = "overview"
	KindSkills          SectionKind = "skills"
	KindBosses          SectionKind = "bosses"
	KindClues           SectionKind = "clues"
	KindAchievements    SectionKind = "achievements"
	KindFactionUnlocks  SectionKind = "faction-unlocks"
	KindFactionStanding SectionKind = "faction-standing"
	KindTracker         SectionKind = "tracker"
)

// Assets resolves fonts and images. A missing image is reported with ok false
// and never fails rendering.
type Assets interface {
	Font(name string) *opentype.Font
	Image(path string) (image.Image, bool)
}

// Section builds one region of the card. Build must be a pure function of its
// arguments and return a fragment of exactly Size.
type Section interface {
	Kind() SectionKind
	Present(s *domain.StatSnapshot) bool
	Size(s *domain.StatSnapshot, opts Options) image.Point
	Build(s *domain.StatSnapshot, opts Options) Fragment
}

// Fragment is the owned raster of one section.
type Fragment struct {
	Kind  SectionKind
	Image *image.NRGBA
}

// Size returns the fragment's pixel dimensions.
func (f Fragment) Size() image.Point {
	if f.Image == nil {
		return image.Point{}
	}
	return f.Image.Bounds().Size()
}

// Shared section geometry.
const (
	panelBorder  = 4
	panelHeader  = 56
	panelFooter  = 12
	cellNotch    = 10
	cellBorder   = 3
	closestBand  = 6
	iconInset    = 4
	textPadding  = 12
	defaultFont  = "regular"
	boldSuffix   = "-bold"
	titleSize    = 28
	headingSize  = 20
	bodySize     = 16
	smallSize    = 13
	nameSize     = 40
	maxRowsShown = 5
)

// env is the read-only context every section draws with.
type env struct {
	assets Assets
	rules  Rules
	font   string
}

// faces holds per-build font faces. Faces are not safe for concurrent use.
type faces struct {
	name    font.Face
	title   font.Face
	heading font.Face
	body    font.Face
	small   font.Face
}

func (e env) faces() faces {
	var regular, bold *opentype.Font
	if e.assets != nil {
		regular = e.assets.Font(e.font)
		bold = e.assets.Font(e.font + boldSuffix)
	}
	return faces{
		name:    render.NewFace(bold, nameSize),
		title:   render.NewFace(bold, titleSize),
		heading: render.NewFace(bold, headingSize),
		body:    render.NewFace(regular, bodySize),
		small:   render.NewFace(regular, smallSize),
	}
}

func (e env) image(path string) image.Image {
	if e.assets == nil {
		return nil
	}
	img, ok := e.assets.Image(path)
	if !ok {
		return nil
	}
	return img
}

// newPanel allocates a framed panel of size with an optional template background.
func (e env) newPanel(size image.Point, template string) *image.NRGBA {
	dst := render.NewCanvas(size.X, size.Y, render.ColorFrame)
	interior := panelInterior(size)
	render.FillRect(dst, interior, render.ColorPanel)
	render.DrawCover(dst, e.image(template), interior)
	return dst
}

// panelInterior is the part of a panel inside its frame.
func panelInterior(size image.Point) image.Rectangle {
	return image.Rect(panelBorder, panelBorder, size.X-panelBorder, size.Y-panelBorder)
}

// drawPanelTitle centers title in the header strip of a panel.
func drawPanelTitle(dst *image.NRGBA, face font.Face, title string) {
	header := image.Rect(panelBorder, panelBorder, dst.Bounds().Dx()-panelBorder, panelHeader)
	render.DrawCenteredShadowed(dst, face, title, header, render.ColorText)
}

// displayName turns an identifier like "hardcore_ironman" into "Hardcore Ironman".
func displayName(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return cases.Title(language.English).String(s)
}

// drawCell paints a notched cell background at r.
func drawCell(dst *image.NRGBA, r image.Rectangle, fill color.Color) {
	shape := render.NotchedCell{Notch: cellNotch, Border: cellBorder}
	render.FillRegion(dst, shape.BorderRegion(r.Size()), r.Min, render.ColorCellBorder)
	render.FillRegion(dst, shape.InnerRegion(r.Size()), r.Min, fill)
}
