// Package providers contains dependency injection providers for the stat card service.
package providers

import (
	"os"
	"strings"

	"github.com/samber/do/v2"

	"github.com/listenupapp/statcard/internal/config"
	"github.com/listenupapp/statcard/internal/logger"
	"github.com/listenupapp/statcard/internal/validation"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig(os.Args[1:])
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Format:      strings.ToLower(cfg.Logger.Format),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting stat card service",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"assets_path", cfg.Assets.Path,
		"default_edition", cfg.Render.Edition,
	)

	return log, nil
}

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}
