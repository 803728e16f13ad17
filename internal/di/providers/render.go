package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/statcard/internal/assets"
	"github.com/listenupapp/statcard/internal/card"
	"github.com/listenupapp/statcard/internal/config"
	"github.com/listenupapp/statcard/internal/logger"
)

// ProvideAssets loads the asset registry once at startup.
func ProvideAssets(i do.Injector) (*assets.Registry, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	reg, err := assets.Load(cfg.Assets.Path, log.Logger)
	if err != nil {
		return nil, err
	}

	fonts, imgs := reg.Counts()
	log.Info("Assets loaded",
		"path", cfg.Assets.Path,
		"fonts", fonts,
		"images", imgs,
	)
	return reg, nil
}

// ProvideCompositor provides the card compositor with one builder per edition.
func ProvideCompositor(i do.Injector) (*card.Compositor, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	reg := do.MustInvoke[*assets.Registry](i)

	builders := card.NewBuilders(reg, card.BuilderConfig{
		Font:     cfg.Assets.Font,
		Parallel: cfg.Render.Parallel,
	})
	return card.NewCompositor(builders, log.Logger), nil
}
