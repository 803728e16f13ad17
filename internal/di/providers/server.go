package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/listenupapp/statcard/internal/api"
	"github.com/listenupapp/statcard/internal/card"
	"github.com/listenupapp/statcard/internal/config"
	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/logger"
	"github.com/listenupapp/statcard/internal/validation"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	api *api.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := h.Server.Shutdown(ctx)
	h.api.Close()
	return err
}

// ProvideHTTPServer provides the HTTP server and starts it in the background.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	compositor := do.MustInvoke[*card.Compositor](i)
	v := do.MustInvoke[*validation.Validator](i)
	hiscoresHandle := do.MustInvoke[*HiscoresClientHandle](i)

	// A nil client must reach the server as a nil interface.
	var players api.PlayerSource
	if hiscoresHandle.Client != nil {
		players = hiscoresHandle.Client
	}

	edition, _ := domain.ParseEdition(cfg.Render.Edition)
	handler := api.NewServer(compositor, players, v, api.Options{
		DefaultEdition:    edition,
		RequestsPerMinute: cfg.Server.RateLimit,
		Burst:             cfg.Server.RateBurst,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
	}, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv, api: handler}, nil
}
