// Package di provides dependency injection configuration for the stat card service.
package di

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/statcard/internal/assets"
	"github.com/listenupapp/statcard/internal/card"
	"github.com/listenupapp/statcard/internal/config"
	"github.com/listenupapp/statcard/internal/di/providers"
	"github.com/listenupapp/statcard/internal/logger"
	"github.com/listenupapp/statcard/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Rendering
	do.Provide(injector, providers.ProvideAssets)
	do.Provide(injector, providers.ProvideCompositor)

	// Fetch collaborator
	do.Provide(injector, providers.ProvideHiscoresClient)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services in dependency order.
// This triggers lazy initialization so startup errors surface before serving.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)

	if _, err := do.Invoke[*assets.Registry](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*card.Compositor](injector)

	if _, err := do.Invoke[*providers.HiscoresClientHandle](injector); err != nil {
		return err
	}

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)
	return nil
}
