package card

import (
	"image"

	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/render"
)

// Rank panel geometry.
const (
	bossColumns   = 2
	bossRows      = 5
	bossRowHeight = 52
	clueRows      = 7
	clueRowHeight = 40
)

// rankRow is one line of a boss or clue panel.
type rankRow struct {
	Label string
	Icon  string
	Count int
	Rank  int
	Unit  string
}

// rankPanel draws a fixed capacity grid of ranked rows. With no rows the whole
// background is drawn under a warning tint instead.
type rankPanel struct {
	kind      SectionKind
	title     string
	columns   int
	rows      int
	rowHeight int
}

func (p rankPanel) size() image.Point {
	return image.Pt(BaseWidth, panelHeader+p.rows*p.rowHeight+panelFooter)
}

func (p rankPanel) capacity() int {
	return p.columns * p.rows
}

func (p rankPanel) build(e env, rows []rankRow, background image.Image) Fragment {
	dst := e.newPanel(p.size(), templateKey(p.kind))
	interior := panelInterior(p.size())
	if background != nil {
		render.DrawCover(dst, background, interior)
		render.FillRect(dst, interior, render.ColorShadowTint)
	}

	if len(rows) == 0 {
		render.FillRect(dst, interior, render.ColorWarningTint)
		return Fragment{Kind: p.kind, Image: dst}
	}

	f := e.faces()
	drawPanelTitle(dst, f.heading, p.title)

	colWidth := (BaseWidth - 2*textPadding) / p.columns
	for i, row := range rows[:min(len(rows), p.capacity())] {
		col, line := i/p.rows, i%p.rows
		x := textPadding + col*colWidth
		y := panelHeader + line*p.rowHeight
		p.drawRow(e, dst, f, image.Rect(x, y, x+colWidth, y+p.rowHeight), row)
	}
	return Fragment{Kind: p.kind, Image: dst}
}

func (p rankPanel) drawRow(e env, dst *image.NRGBA, f faces, r image.Rectangle, row rankRow) {
	inset := r.Inset(2)
	render.FillRect(dst, inset, render.ColorCell)

	iconBox := image.Rect(inset.Min.X+4, inset.Min.Y+2, inset.Min.X+4+inset.Dy()-4, inset.Max.Y-2)
	render.DrawIcon(dst, e.image(row.Icon), iconBox)

	baseline := render.CenteredOrigin(f.body, row.Label, inset).Y
	nameX := iconBox.Max.X + 10
	countRight := inset.Min.X + inset.Dx()*3/4
	rankRight := inset.Max.X - 10

	name := render.Truncate(f.body, row.Label, countRight-nameX-120)
	render.DrawShadowed(dst, f.body, name, nameX, baseline, render.ColorText)

	count := render.FormatGroupedInt(int64(row.Count))
	if row.Unit != "" {
		count += " " + row.Unit
	}
	render.DrawRightAligned(dst, f.body, count, countRight, baseline, render.ColorTextLight)
	render.DrawRightAligned(dst, f.small, "Rank "+render.FormatRank(row.Rank), rankRight, baseline, render.ColorTextMuted)
}

type bossPanel struct {
	env env
}

var bossLayout = rankPanel{
	kind:      KindBosses,
	title:     "Boss Kills",
	columns:   bossColumns,
	rows:      bossRows,
	rowHeight: bossRowHeight,
}

func (bossPanel) Kind() SectionKind { return KindBosses }

func (bossPanel) Present(*domain.StatSnapshot) bool { return true }

func (bossPanel) Size(*domain.StatSnapshot, Options) image.Point { return bossLayout.size() }

// bossRowsFor keeps ranked bosses in caller order, up to the panel capacity.
func bossRowsFor(s *domain.StatSnapshot) []rankRow {
	var rows []rankRow
	for _, b := range s.Bosses {
		if !b.Ranked() {
			continue
		}
		rows = append(rows, rankRow{Label: b.Name, Icon: bossIcon(b.Name), Count: b.Kills, Rank: b.Rank, Unit: "kc"})
		if len(rows) == bossLayout.capacity() {
			break
		}
	}
	return rows
}

func (p bossPanel) Build(s *domain.StatSnapshot, opts Options) Fragment {
	rows := bossRowsFor(s)
	var background image.Image
	if opts.BossBackgrounds && len(rows) > 0 {
		background = p.env.image(bossBackground(rows[0].Label))
	}
	return bossLayout.build(p.env, rows, background)
}

type cluePanel struct {
	env env
}

var clueLayout = rankPanel{
	kind:      KindClues,
	title:     "Clue Scrolls",
	columns:   1,
	rows:      clueRows,
	rowHeight: clueRowHeight,
}

func (cluePanel) Kind() SectionKind { return KindClues }

// Present reports whether the snapshot carries any clue tiers at all.
func (cluePanel) Present(s *domain.StatSnapshot) bool { return len(s.Clues) > 0 }

func (cluePanel) Size(*domain.StatSnapshot, Options) image.Point { return clueLayout.size() }

func (p cluePanel) Build(s *domain.StatSnapshot, _ Options) Fragment {
	var rows []rankRow
	for _, c := range s.Clues {
		if !c.Ranked() {
			continue
		}
		rows = append(rows, rankRow{Label: displayName(c.Tier), Icon: clueIcon(c.Tier), Count: c.Completions, Rank: c.Rank})
	}
	return clueLayout.build(p.env, rows, nil)
}
