package card

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/statcard/internal/assets"
	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/render"
)

func oldSchoolLayout() Layout {
	return NewOldSchoolBuilder(assets.NewRegistry(nil, nil), BuilderConfig{}).Layout()
}

func TestPlan_HeightIsSumOfPresentSections(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *domain.StatSnapshot
		opts     Options
		kinds    []SectionKind
		width    int
		height   int
	}{
		{
			name:     "minimal",
			snapshot: baseSnapshot(),
			kinds:    []SectionKind{KindOverview, KindSkills, KindBosses},
			width:    1200,
			height:   180 + 344 + 328,
		},
		{
			name:     "experience cells are taller",
			snapshot: baseSnapshot(),
			opts:     Options{ShowExperience: true},
			kinds:    []SectionKind{KindOverview, KindSkills, KindBosses},
			width:    1200,
			height:   180 + 464 + 328,
		},
		{
			name:     "with clues",
			snapshot: withClues(baseSnapshot()),
			kinds:    []SectionKind{KindOverview, KindSkills, KindBosses, KindClues},
			width:    1200,
			height:   180 + 344 + 328 + 348,
		},
		{
			name:     "achievements use the longer column",
			snapshot: withAchievements(baseSnapshot(), 2, 7),
			kinds:    []SectionKind{KindOverview, KindSkills, KindBosses, KindAchievements},
			width:    1200,
			height:   180 + 344 + 328 + 68 + 5*90,
		},
		{
			name:     "faction with standing",
			snapshot: withFaction(baseSnapshot(), "dragon"),
			kinds:    []SectionKind{KindOverview, KindSkills, KindBosses, KindFactionUnlocks, KindFactionStanding},
			width:    1200,
			height:   180 + 344 + 328 + 400 + 150,
		},
		{
			name:     "faction without standing",
			snapshot: withFaction(baseSnapshot(), ""),
			kinds:    []SectionKind{KindOverview, KindSkills, KindBosses, KindFactionUnlocks},
			width:    1200,
			height:   180 + 344 + 328 + 400,
		},
		{
			name:     "short tracker does not change height",
			snapshot: withTracker(baseSnapshot(), 3),
			kinds:    []SectionKind{KindOverview, KindSkills, KindBosses, KindTracker},
			width:    1620,
			height:   180 + 344 + 328,
		},
		{
			name:     "tall tracker raises height",
			snapshot: withTracker(baseSnapshot(), 30),
			kinds:    []SectionKind{KindOverview, KindSkills, KindBosses, KindTracker},
			width:    1620,
			height:   100 + 30*34 + 20,
		},
	}

	layout := oldSchoolLayout()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := layout.Plan(tt.snapshot, tt.opts)

			assert.Equal(t, tt.kinds, plan.Kinds())
			assert.Equal(t, tt.width, plan.Width)
			assert.Equal(t, tt.height, plan.Height)

			stack := 0
			for _, sec := range layout.Sections(tt.snapshot) {
				if sec.Kind() != KindTracker {
					stack += sec.Size(tt.snapshot, tt.opts).Y
				}
			}
			want := stack
			if tt.snapshot.Tracker != nil {
				want = max(stack, trackerPanel{}.Size(tt.snapshot, tt.opts).Y)
			}
			assert.Equal(t, want, plan.Height)
		})
	}
}

func TestPlan_FullCardOrder(t *testing.T) {
	plan := oldSchoolLayout().Plan(fullSnapshot(), Options{})

	assert.Equal(t, []SectionKind{
		KindOverview, KindSkills, KindBosses, KindClues,
		KindAchievements, KindFactionUnlocks, KindFactionStanding, KindTracker,
	}, plan.Kinds())

	y := 0
	for _, pl := range plan.Placements {
		if pl.Kind == KindTracker {
			assert.Equal(t, image.Pt(BaseWidth, 0), pl.Rect.Min)
			assert.Equal(t, trackerWidth, pl.Rect.Dx())
			continue
		}
		assert.Equal(t, image.Pt(0, y), pl.Rect.Min, pl.Kind)
		assert.Equal(t, BaseWidth, pl.Rect.Dx(), pl.Kind)
		y = pl.Rect.Max.Y
	}
}

func TestPlan_RuneScapeOmitsFactionPanels(t *testing.T) {
	layout := NewRuneScapeBuilder(assets.NewRegistry(nil, nil), BuilderConfig{}).Layout()
	plan := layout.Plan(fullSnapshot(), Options{})

	assert.Equal(t, []SectionKind{
		KindOverview, KindSkills, KindBosses, KindClues, KindAchievements, KindTracker,
	}, plan.Kinds())
}

type fixedSection struct {
	kind SectionKind
	size image.Point
}

func (f fixedSection) Kind() SectionKind                              { return f.kind }
func (f fixedSection) Present(*domain.StatSnapshot) bool              { return true }
func (f fixedSection) Size(*domain.StatSnapshot, Options) image.Point { return f.size }
func (f fixedSection) Build(*domain.StatSnapshot, Options) Fragment {
	return Fragment{Kind: f.kind, Image: render.NewCanvas(f.size.X, f.size.Y, render.ColorCell)}
}

func TestPlan_PanicsOnImpossibleSizes(t *testing.T) {
	s := baseSnapshot()

	t.Run("zero height", func(t *testing.T) {
		l := Layout{Vertical: []Section{fixedSection{kind: KindOverview, size: image.Pt(BaseWidth, 0)}}}
		assert.Panics(t, func() { l.Plan(s, Options{}) })
	})
	t.Run("wider than the card", func(t *testing.T) {
		l := Layout{Vertical: []Section{fixedSection{kind: KindOverview, size: image.Pt(BaseWidth+1, 10)}}}
		assert.Panics(t, func() { l.Plan(s, Options{}) })
	})
	t.Run("negative side panel", func(t *testing.T) {
		l := Layout{Side: fixedSection{kind: KindTracker, size: image.Pt(-1, 10)}}
		assert.Panics(t, func() { l.Plan(s, Options{}) })
	})
}

func TestCompose(t *testing.T) {
	l := Layout{
		Vertical: []Section{
			fixedSection{kind: KindOverview, size: image.Pt(BaseWidth, 20)},
			fixedSection{kind: KindSkills, size: image.Pt(BaseWidth, 30)},
		},
		Side: fixedSection{kind: KindTracker, size: image.Pt(100, 80)},
	}
	s := baseSnapshot()
	plan := l.Plan(s, Options{})
	require.Equal(t, 1300, plan.Width)
	require.Equal(t, 80, plan.Height)

	t.Run("places fragments", func(t *testing.T) {
		var frags []Fragment
		for _, sec := range l.Sections(s) {
			frags = append(frags, sec.Build(s, Options{}))
		}
		img := Compose(plan, frags)

		assert.Equal(t, image.Rect(0, 0, 1300, 80), img.Bounds())
		assert.Equal(t, render.ColorCell, img.NRGBAAt(10, 10))
		assert.Equal(t, render.ColorCell, img.NRGBAAt(10, 40))
		assert.Equal(t, render.ColorBackground, img.NRGBAAt(10, 60))
		assert.Equal(t, render.ColorCell, img.NRGBAAt(1250, 70))
	})

	t.Run("oversize fragment panics", func(t *testing.T) {
		big := Fragment{Kind: KindOverview, Image: render.NewCanvas(BaseWidth, 21, render.ColorCell)}
		assert.Panics(t, func() { Compose(plan, []Fragment{big}) })
	})

	t.Run("unplanned fragment panics", func(t *testing.T) {
		stray := Fragment{Kind: KindClues, Image: render.NewCanvas(10, 10, render.ColorCell)}
		assert.Panics(t, func() { Compose(plan, []Fragment{stray}) })
	})
}

func TestBuilders_ImageMatchesPlan(t *testing.T) {
	reg := assets.NewRegistry(nil, nil)
	snapshots := map[string]*domain.StatSnapshot{
		"minimal": baseSnapshot(),
		"full":    fullSnapshot(),
		"tall":    withTracker(baseSnapshot(), 30),
	}

	for edition, b := range NewBuilders(reg, BuilderConfig{}) {
		for name, s := range snapshots {
			t.Run(string(edition)+"/"+name, func(t *testing.T) {
				opts := Options{ShowExperience: true, OutlineRecords: true}
				var layout Layout
				switch b := b.(type) {
				case *OldSchoolBuilder:
					layout = b.Layout()
				case *RuneScapeBuilder:
					layout = b.Layout()
				default:
					t.Fatalf("unexpected builder %T", b)
				}
				plan := layout.Plan(s, opts)
				img := b.BuildImage(s, opts)
				assert.Equal(t, image.Pt(plan.Width, plan.Height), img.Bounds().Size())
			})
		}
	}
}

func TestBuilders_ParallelMatchesSequential(t *testing.T) {
	reg := assets.NewRegistry(nil, nil)
	s := fullSnapshot()
	opts := Options{ShowExperience: true, HighlightMaxed: true, OutlineRecords: true}

	seq := NewOldSchoolBuilder(reg, BuilderConfig{}).BuildImage(s, opts)
	par := NewOldSchoolBuilder(reg, BuilderConfig{Parallel: true}).BuildImage(s, opts)

	require.Equal(t, seq.Bounds(), par.Bounds())
	assert.Equal(t, seq.Pix, par.Pix)
}

type panickySection struct {
	fixedSection
}

func (panickySection) Build(*domain.StatSnapshot, Options) Fragment {
	panic("boom")
}

func TestEngine_ParallelPanicReachesCaller(t *testing.T) {
	e := engine{
		parallel: true,
		layout: Layout{Vertical: []Section{
			panickySection{fixedSection{kind: KindOverview, size: image.Pt(BaseWidth, 10)}},
		}},
	}
	assert.Panics(t, func() { e.render(baseSnapshot(), Options{}) })
}
