package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/statcard/internal/config"
	"github.com/listenupapp/statcard/internal/hiscores"
	"github.com/listenupapp/statcard/internal/logger"
	"github.com/listenupapp/statcard/internal/validation"
)

// HiscoresClientHandle wraps hiscores.Client with Shutdownable.
// Client is nil when no hiscores base URL is configured.
type HiscoresClientHandle struct {
	*hiscores.Client
}

// Shutdown implements do.Shutdownable.
func (h *HiscoresClientHandle) Shutdown() error {
	if h.Client != nil {
		h.Client.Close()
	}
	return nil
}

// ProvideHiscoresClient provides the hiscores client.
func ProvideHiscoresClient(i do.Injector) (*HiscoresClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	v := do.MustInvoke[*validation.Validator](i)

	if cfg.Hiscores.BaseURL == "" {
		log.Info("Hiscores base URL not configured, player lookups disabled")
		return &HiscoresClientHandle{}, nil
	}

	client, err := hiscores.New(hiscores.Config{
		BaseURL:           cfg.Hiscores.BaseURL,
		Timeout:           cfg.Hiscores.Timeout,
		RequestsPerMinute: cfg.Hiscores.RequestsPerMinute,
	}, v, log.Logger)
	if err != nil {
		return nil, err
	}
	return &HiscoresClientHandle{Client: client}, nil
}
