package card

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/render"
)

func gridOf(skills ...domain.Skill) *domain.StatSnapshot {
	return &domain.StatSnapshot{
		Name:    "Grid",
		Overall: domain.Skill{Name: "Overall", Level: 300, Experience: 1_000_000, Rank: 500},
		Skills:  skills,
	}
}

func TestSkillGrid_Size(t *testing.T) {
	g := skillGrid{env: testEnv()}
	tests := []struct {
		skills int
		opts   Options
		height int
	}{
		{skills: 0, height: 24 + 80},
		{skills: 5, height: 24 + 80},
		{skills: 6, height: 24 + 2*80},
		{skills: 23, height: 24 + 4*80},
		{skills: 23, opts: Options{ShowExperience: true}, height: 24 + 4*110},
		{skills: 29, height: 24 + 5*80},
	}
	for _, tt := range tests {
		s := gridOf(make([]domain.Skill, tt.skills)...)
		assert.Equal(t, image.Pt(BaseWidth, tt.height), g.Size(s, tt.opts), "%d skills", tt.skills)
	}
}

func TestPlanCells(t *testing.T) {
	g := skillGrid{env: testEnv()}

	t.Run("unranked shows a dash and is never maxed", func(t *testing.T) {
		s := gridOf(
			domain.Skill{Name: "Attack", Level: 99, Experience: 13_034_431, Rank: 0},
			domain.Skill{Name: "Mining", Level: 99, Experience: 13_034_431, Rank: 12},
		)
		cells := g.planCells(s, Options{HighlightMaxed: true, ShowExperience: true})
		require.Len(t, cells, 3)

		assert.Equal(t, render.Unranked, cells[0].LevelText)
		assert.Empty(t, cells[0].XPText)
		assert.Equal(t, highlightUnranked, cells[0].Highlight)

		assert.Equal(t, "99", cells[1].LevelText)
		assert.Equal(t, "13,034,431", cells[1].XPText)
		assert.Equal(t, highlightMaxed, cells[1].Highlight)

		assert.True(t, cells[2].Total)
		assert.Equal(t, "1 / 2 maxed", cells[2].XPText)
		assert.InDelta(t, 0.5, cells[2].Progress, 1e-9)
	})

	t.Run("maxed tint needs the option", func(t *testing.T) {
		s := gridOf(domain.Skill{Name: "Mining", Level: 99, Experience: 13_034_431, Rank: 12})
		cells := g.planCells(s, Options{})
		assert.Equal(t, highlightNone, cells[0].Highlight)
		assert.Equal(t, "1,000,000", cells[1].XPText)
	})

	t.Run("virtual levels raise the cap", func(t *testing.T) {
		s := gridOf(
			domain.Skill{Name: "Mining", Level: 99, Experience: domain.MaxExperience, Rank: 1},
			domain.Skill{Name: "Fishing", Level: 99, Experience: 13_034_431, Rank: 2},
		)
		cells := g.planCells(s, Options{VirtualLevels: true, HighlightMaxed: true})

		assert.Equal(t, "126", cells[0].LevelText)
		assert.Equal(t, highlightMaxed, cells[0].Highlight)
		assert.Equal(t, "99", cells[1].LevelText)
		assert.Equal(t, highlightNone, cells[1].Highlight)
		assert.Equal(t, "1 / 2 maxed", cells[2].XPText)
	})

	t.Run("every tie for highest experience is outlined", func(t *testing.T) {
		s := gridOf(
			domain.Skill{Name: "Attack", Level: 80, Experience: 2_000_000, Rank: 3},
			domain.Skill{Name: "Mining", Level: 90, Experience: 5_500_000, Rank: 4},
			domain.Skill{Name: "Fishing", Level: 90, Experience: 5_500_000, Rank: 5},
			domain.Skill{Name: "Magic", Level: 99, Experience: 9_000_000, Rank: 0},
		)
		cells := g.planCells(s, Options{OutlineRecords: true})

		var highest []string
		for _, c := range cells {
			if c.Highest {
				highest = append(highest, c.Name)
			}
		}
		assert.Equal(t, []string{"Mining", "Fishing"}, highest)
	})

	t.Run("only one closest skill, first on ties, maxed skipped", func(t *testing.T) {
		almost := domain.XPForLevel(51) - 10
		s := gridOf(
			domain.Skill{Name: "Attack", Level: 99, Experience: 13_100_000, Rank: 1},
			domain.Skill{Name: "Mining", Level: 50, Experience: almost, Rank: 2},
			domain.Skill{Name: "Fishing", Level: 50, Experience: almost, Rank: 3},
			domain.Skill{Name: "Magic", Level: 10, Experience: domain.XPForLevel(10), Rank: 4},
		)
		cells := g.planCells(s, Options{OutlineRecords: true})

		var closest []string
		for _, c := range cells {
			if c.Closest {
				closest = append(closest, c.Name)
			}
		}
		assert.Equal(t, []string{"Mining"}, closest)
		assert.True(t, cells[0].Highest)
		assert.False(t, cells[0].Closest)
	})

	t.Run("no outlines without the option", func(t *testing.T) {
		for _, c := range g.planCells(baseSnapshot(), Options{}) {
			assert.False(t, c.Highest, c.Name)
			assert.False(t, c.Closest, c.Name)
		}
	})

	t.Run("unranked overall", func(t *testing.T) {
		s := gridOf(domain.Skill{Name: "Attack", Level: 1, Rank: 0})
		s.Overall.Rank = 0
		cells := g.planCells(s, Options{})
		assert.Equal(t, render.Unranked, cells[1].LevelText)
		assert.Empty(t, cells[1].XPText)
	})
}

func TestCellRect(t *testing.T) {
	assert.Equal(t, image.Rect(12, 12, 208, 92), cellRect(0, Options{}))
	assert.Equal(t, image.Rect(992, 12, 1188, 92), cellRect(5, Options{}))
	assert.Equal(t, image.Rect(12, 92, 208, 172), cellRect(6, Options{}))
	assert.Equal(t, image.Rect(208, 122, 404, 232), cellRect(7, Options{ShowExperience: true}))
}

func TestSkillGrid_BuildPixels(t *testing.T) {
	g := skillGrid{env: testEnv()}
	s := gridOf(
		domain.Skill{Name: "Attack", Level: 1, Experience: 0, Rank: 0},
		domain.Skill{Name: "Mining", Level: 99, Experience: 13_034_431, Rank: 10},
		domain.Skill{Name: "Fishing", Level: 60, Experience: domain.XPForLevel(61) - 1, Rank: 11},
		domain.Skill{Name: "Magic", Level: 40, Experience: domain.XPForLevel(40), Rank: 12},
	)
	opts := Options{HighlightMaxed: true, OutlineRecords: true}
	frag := g.Build(s, opts)
	require.Equal(t, g.Size(s, opts), frag.Size())
	img := frag.Image

	probe := func(i int) cellProbe {
		r := cellRect(i, opts)
		return cellProbe{
			interior: img.NRGBAAt(r.Min.X+8, r.Min.Y+40),
			edge:     img.NRGBAAt(r.Min.X+98, r.Min.Y+1),
			band:     img.NRGBAAt(r.Min.X+98, r.Min.Y+4),
		}
	}

	t.Run("unranked cell is tinted red", func(t *testing.T) {
		p := probe(0)
		assertNearColor(t, blend(render.ColorCell, render.ColorUnrankedTint), p.interior)
		assert.Equal(t, render.ColorCellBorder, p.edge)
	})
	t.Run("maxed cell is tinted gold and outlined as highest", func(t *testing.T) {
		p := probe(1)
		assertNearColor(t, blend(render.ColorCell, render.ColorMaxedTint), p.interior)
		assert.Equal(t, render.ColorRecordBorder, p.edge)
	})
	t.Run("closest cell gets the wide band", func(t *testing.T) {
		p := probe(2)
		assert.Equal(t, render.ColorCell, p.interior)
		assert.Equal(t, render.ColorClosestBand, p.edge)
		assert.Equal(t, render.ColorClosestBand, p.band)
	})
	t.Run("plain cell", func(t *testing.T) {
		p := probe(3)
		assert.Equal(t, render.ColorCell, p.interior)
		assert.Equal(t, render.ColorCellBorder, p.edge)
		assert.Equal(t, render.ColorCell, p.band)
	})
	t.Run("total cell uses the frame fill", func(t *testing.T) {
		p := probe(4)
		assert.Equal(t, render.ColorFrame, p.interior)
	})
	t.Run("background between cells", func(t *testing.T) {
		assert.Equal(t, render.ColorBackground, img.NRGBAAt(4, 4))
	})
}

func TestSkillGrid_ExperienceBarLabel(t *testing.T) {
	g := skillGrid{env: testEnv()}
	opts := Options{ShowExperience: true}
	s := gridOf(domain.Skill{Name: "Magic", Level: 40, Experience: domain.XPForLevel(40), Rank: 12})
	img := g.Build(s, opts).Image

	r := cellRect(0, opts)
	bar := image.Rect(r.Min.X+12, r.Min.Y+80, r.Max.X-12, r.Min.Y+98)

	// The bar is empty, so any light pixel inside its frame is label text.
	light := 0
	for y := bar.Min.Y + 2; y < bar.Max.Y-2; y++ {
		for x := bar.Min.X + 2; x < bar.Max.X-2; x++ {
			if isLightText(img.NRGBAAt(x, y)) {
				light++
			}
		}
	}
	assert.Positive(t, light, "experience bar should carry its %s label", render.FormatPercent(0))

	t.Run("unlabelled bar has no light pixels", func(t *testing.T) {
		plain := render.ProgressBar{Width: bar.Dx(), Height: bar.Dy()}.Render()
		b := plain.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				require.False(t, isLightText(plain.NRGBAAt(x, y)), "pixel %d,%d", x, y)
			}
		}
	})
}

// isLightText reports whether c is mostly ColorTextLight over the dark track.
func isLightText(c color.NRGBA) bool {
	const floor = 0xa0
	return c.R >= floor && c.G >= floor && c.B >= floor &&
		absDiff(c.R, c.G) <= 8 && absDiff(c.G, c.B) <= 8
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// cellProbe samples a cell interior, its top edge and the pixel just inside the border.
type cellProbe struct {
	interior, edge, band color.NRGBA
}
