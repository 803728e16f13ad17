package card

import (
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/listenupapp/statcard/internal/domain"
)

// ImageBuilder renders a complete stat card for one game edition.
type ImageBuilder interface {
	BuildImage(s *domain.StatSnapshot, opts Options) *image.NRGBA
}

// BuilderConfig configures an edition builder.
type BuilderConfig struct {
	// Font is the registry name of the text font. Its bold variant is looked up
	// with a "-bold" suffix.
	Font string
	// Parallel renders sections concurrently before compositing.
	Parallel bool
}

// engine plans, builds and composes the sections of a layout.
type engine struct {
	layout   Layout
	parallel bool
}

func (e engine) render(s *domain.StatSnapshot, opts Options) *image.NRGBA {
	plan := e.layout.Plan(s, opts)
	sections := e.layout.Sections(s)
	fragments := make([]Fragment, len(sections))

	if !e.parallel {
		for i, sec := range sections {
			fragments[i] = sec.Build(s, opts)
		}
		return Compose(plan, fragments)
	}

	// Each section writes only its own slot and its own raster.
	var g errgroup.Group
	for i, sec := range sections {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = sectionPanic{kind: sec.Kind(), value: r}
				}
			}()
			fragments[i] = sec.Build(s, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Re-raise on the caller's goroutine so a broken snapshot still fails loudly.
		panic(err)
	}
	return Compose(plan, fragments)
}

// sectionPanic carries a panic out of a section goroutine.
type sectionPanic struct {
	kind  SectionKind
	value any
}

func (p sectionPanic) Error() string {
	return fmt.Sprintf("card: section %s panicked: %v", p.kind, p.value)
}

func newEnv(assets Assets, rules Rules, cfg BuilderConfig) env {
	font := cfg.Font
	if font == "" {
		font = defaultFont
	}
	return env{assets: assets, rules: rules, font: font}
}

// OldSchoolBuilder renders cards for the old school edition, league panels included.
type OldSchoolBuilder struct {
	engine engine
}

// NewOldSchoolBuilder creates an old school card builder.
func NewOldSchoolBuilder(assets Assets, cfg BuilderConfig) *OldSchoolBuilder {
	e := newEnv(assets, OldSchoolRules(), cfg)
	return &OldSchoolBuilder{
		engine: engine{
			parallel: cfg.Parallel,
			layout: Layout{
				Vertical: []Section{
					overview{env: e},
					skillGrid{env: e},
					bossPanel{env: e},
					cluePanel{env: e},
					achievementPanel{env: e},
					factionUnlocks{env: e},
					factionStanding{env: e},
				},
				Side: trackerPanel{env: e},
			},
		},
	}
}

// BuildImage implements ImageBuilder.
func (b *OldSchoolBuilder) BuildImage(s *domain.StatSnapshot, opts Options) *image.NRGBA {
	return b.engine.render(s, opts)
}

// Layout exposes the section layout, for planning without rendering.
func (b *OldSchoolBuilder) Layout() Layout {
	return b.engine.layout
}

// RuneScapeBuilder renders cards for the main edition. It has no league panels
// and lets elite skills reach 120.
type RuneScapeBuilder struct {
	engine engine
}

// NewRuneScapeBuilder creates a main edition card builder.
func NewRuneScapeBuilder(assets Assets, cfg BuilderConfig) *RuneScapeBuilder {
	e := newEnv(assets, RuneScapeRules(), cfg)
	return &RuneScapeBuilder{
		engine: engine{
			parallel: cfg.Parallel,
			layout: Layout{
				Vertical: []Section{
					overview{env: e},
					skillGrid{env: e},
					bossPanel{env: e},
					cluePanel{env: e},
					achievementPanel{env: e},
				},
				Side: trackerPanel{env: e},
			},
		},
	}
}

// BuildImage implements ImageBuilder.
func (b *RuneScapeBuilder) BuildImage(s *domain.StatSnapshot, opts Options) *image.NRGBA {
	return b.engine.render(s, opts)
}

// Layout exposes the section layout, for planning without rendering.
func (b *RuneScapeBuilder) Layout() Layout {
	return b.engine.layout
}

// NewBuilders returns one builder per supported edition.
func NewBuilders(assets Assets, cfg BuilderConfig) map[domain.Edition]ImageBuilder {
	return map[domain.Edition]ImageBuilder{
		domain.EditionOldSchool: NewOldSchoolBuilder(assets, cfg),
		domain.EditionRuneScape: NewRuneScapeBuilder(assets, cfg),
	}
}
