// Package hiscores fetches player stat snapshots from the upstream stats service.
package hiscores

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/dto"
	domainerrors "github.com/listenupapp/statcard/internal/errors"
	"github.com/listenupapp/statcard/internal/ratelimit"
	"github.com/listenupapp/statcard/internal/validation"
)

const (
	defaultTimeout           = 10 * time.Second
	defaultRequestsPerMinute = 60
	defaultBurst             = 3
	userAgent                = "statcard/1.0"
)

// playerName matches display names as the hiscores accept them.
var playerName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _-]{0,11}$`)

// Config configures a Client.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
}

// Client is a rate-limited hiscores client. Requests are limited per edition.
type Client struct {
	base      *url.URL
	http      *http.Client
	limiter   *ratelimit.KeyedRateLimiter
	validator *validation.Validator
	logger    *slog.Logger
}

// New creates a hiscores client for the service at cfg.BaseURL.
func New(cfg Config, v *validation.Validator, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, domainerrors.Validation("hiscores base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, domainerrors.Validation("hiscores base URL must be absolute")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = defaultRequestsPerMinute
	}

	return &Client{
		base:      base,
		http:      &http.Client{Timeout: timeout},
		limiter:   ratelimit.New(float64(rpm)/60, defaultBurst, ratelimit.WithIdleTTL(0)),
		validator: v,
		logger:    logger,
	}, nil
}

// Close releases resources held by the client.
func (c *Client) Close() {
	c.limiter.Stop()
}

// RawDataURL is the address of the snapshot JSON for a player, suitable as a
// "view raw data" link.
func (c *Client) RawDataURL(edition domain.Edition, player string) string {
	u := *c.base
	u.Path = u.Path + "/" + string(edition) + "/players/" + strings.TrimSpace(player)
	return u.String()
}

// Fetcher binds Fetch to one player, in the shape the compositor expects.
func (c *Client) Fetcher(edition domain.Edition, player string) func(context.Context) (*domain.StatSnapshot, error) {
	return func(ctx context.Context) (*domain.StatSnapshot, error) {
		return c.Fetch(ctx, edition, player)
	}
}

// Fetch retrieves the current snapshot of player.
//
// A player the hiscores do not know is NOT_FOUND. Network failures, server
// errors, throttling and malformed bodies are TRANSPORT. An invalid player
// name is rejected as VALIDATION without a request.
func (c *Client) Fetch(ctx context.Context, edition domain.Edition, player string) (*domain.StatSnapshot, error) {
	player = strings.TrimSpace(player)
	if !playerName.MatchString(player) {
		return nil, domainerrors.ValidationWithDetails("invalid player name", map[string]string{"player": player})
	}

	if err := c.limiter.Wait(ctx, string(edition)); err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeTransport, "rate limit wait")
	}

	rawURL := c.RawDataURL(edition, player)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("hiscores request",
		"edition", edition,
		"player", player,
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeTransport, "hiscores request failed")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domainerrors.NotFoundf("player %q not found", player)
	case http.StatusTooManyRequests:
		return nil, domainerrors.Transport("hiscores rate limited")
	default:
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		return nil, domainerrors.Transportf("hiscores returned status %d", resp.StatusCode)
	}

	snapshot, err := dto.Decode(resp.Body, c.validator)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeTransport, "malformed hiscores response")
	}

	c.logger.Debug("hiscores response",
		"edition", edition,
		"player", player,
		"duration", time.Since(start),
	)
	return snapshot.ToDomain(), nil
}
