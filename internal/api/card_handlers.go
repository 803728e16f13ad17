package api

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/statcard/internal/card"
	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/dto"
	domainerrors "github.com/listenupapp/statcard/internal/errors"
)

// Card response headers.
const (
	headerCardID     = "X-Card-Id"
	headerBlurHash   = "X-Blurhash"
	headerRawDataURL = "X-Raw-Data-Url"
	headerCardWidth  = "X-Card-Width"
	headerCardHeight = "X-Card-Height"
)

// MaxSnapshotSize bounds a posted snapshot body.
const MaxSnapshotSize = 1 << 20

func (s *Server) registerCardRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:  "renderCard",
		Method:       http.MethodPost,
		Path:         "/api/v1/cards",
		Summary:      "Render a card",
		Description:  "Renders a stat card from a posted snapshot",
		Tags:         []string{"Cards"},
		MaxBodyBytes: MaxSnapshotSize,
	}, s.handleRenderCard)

	huma.Register(s.api, huma.Operation{
		OperationID: "renderPlayerCard",
		Method:      http.MethodGet,
		Path:        "/api/v1/players/{name}/card",
		Summary:     "Render a player's card",
		Description: "Fetches the player's stats from the hiscores and renders a stat card",
		Tags:        []string{"Cards"},
	}, s.handleRenderPlayerCard)
}

// === DTOs ===

// CardQuery holds the query parameters shared by the card endpoints.
type CardQuery struct {
	Edition string `query:"edition" doc:"Game edition: oldschool or runescape (default from server config)"`
	Options string `query:"options" doc:"Comma separated options: xp, virtual, maxed, outline, debug, backgrounds"`
}

// RenderCardInput is a snapshot posted for rendering.
type RenderCardInput struct {
	CardQuery
	RawBody []byte
}

// RenderPlayerCardInput names a player to look up.
type RenderPlayerCardInput struct {
	CardQuery
	Name string `path:"name" doc:"Player display name"`
}

// CardOutput is an encoded card with its metadata in headers.
type CardOutput struct {
	ContentType  string `header:"Content-Type"`
	CacheControl string `header:"Cache-Control"`
	CardID       string `header:"X-Card-Id"`
	BlurHash     string `header:"X-Blurhash"`
	RawDataURL   string `header:"X-Raw-Data-Url"`
	Width        string `header:"X-Card-Width"`
	Height       string `header:"X-Card-Height"`
	Body         []byte
}

// === Handlers ===

func (s *Server) handleRenderCard(ctx context.Context, input *RenderCardInput) (*CardOutput, error) {
	edition, err := s.resolveEdition(input.Edition)
	if err != nil {
		return nil, err
	}

	snapshot, err := dto.Decode(bytes.NewReader(input.RawBody), s.validator)
	if err != nil {
		return nil, err
	}

	req := card.Request{
		Edition:    edition,
		Options:    card.ParseOptionList(input.Options),
		RawDataURL: snapshot.RawDataURL,
	}
	return s.render(ctx, req, card.StaticFetch(snapshot.ToDomain()))
}

func (s *Server) handleRenderPlayerCard(ctx context.Context, input *RenderPlayerCardInput) (*CardOutput, error) {
	if s.players == nil {
		return nil, domainerrors.Unsupportedf("player lookups are not configured")
	}
	edition, err := s.resolveEdition(input.Edition)
	if err != nil {
		return nil, err
	}

	req := card.Request{
		Edition:    edition,
		Options:    card.ParseOptionList(input.Options),
		RawDataURL: s.players.RawDataURL(edition, input.Name),
	}
	return s.render(ctx, req, s.players.Fetcher(edition, input.Name))
}

func (s *Server) render(ctx context.Context, req card.Request, fetch card.FetchFunc) (*CardOutput, error) {
	log := s.logger.With("edition", req.Edition)
	c, err := s.compositor.Render(ctx, req, fetch, card.LogSink{Logger: log})
	if err != nil {
		return nil, err
	}

	log.Info("card rendered",
		"card_id", c.ID,
		"player", c.Player,
		"bytes", len(c.PNG),
	)

	return &CardOutput{
		ContentType:  "image/png",
		CacheControl: CacheNoStore,
		CardID:       c.ID,
		BlurHash:     c.BlurHash,
		RawDataURL:   c.RawDataURL,
		Width:        strconv.Itoa(c.Width),
		Height:       strconv.Itoa(c.Height),
		Body:         c.PNG,
	}, nil
}

// resolveEdition maps the edition query value, falling back to the server default.
func (s *Server) resolveEdition(raw string) (domain.Edition, error) {
	if raw == "" {
		return s.opts.DefaultEdition, nil
	}
	edition, ok := domain.ParseEdition(raw)
	if !ok {
		return "", domainerrors.Unsupportedf("unknown edition %q", raw)
	}
	return edition, nil
}
