package card

import (
	"context"
	"image"
	"log/slog"

	"github.com/listenupapp/statcard/internal/domain"
	domainerrors "github.com/listenupapp/statcard/internal/errors"
	"github.com/listenupapp/statcard/internal/id"
	"github.com/listenupapp/statcard/internal/media/images"
)

// FetchFunc retrieves the snapshot to render. Failures should be
// *errors.Error values with the TRANSPORT or NOT_FOUND code.
type FetchFunc func(ctx context.Context) (*domain.StatSnapshot, error)

// Request describes one card render.
type Request struct {
	Edition    domain.Edition
	Options    Options
	RawDataURL string // passed through to the result untouched
}

// Card is a finished, encoded stat card.
type Card struct {
	ID         string
	Edition    domain.Edition
	Player     string
	Image      *image.NRGBA
	PNG        []byte
	Width      int
	Height     int
	RawDataURL string
	BlurHash   string
}

// Compositor is the entry point for rendering stat cards.
type Compositor struct {
	builders map[domain.Edition]ImageBuilder
	logger   *slog.Logger
}

// NewCompositor creates a Compositor over one builder per edition.
func NewCompositor(builders map[domain.Edition]ImageBuilder, logger *slog.Logger) *Compositor {
	return &Compositor{builders: builders, logger: logger}
}

// Supports reports whether the compositor can render edition.
func (c *Compositor) Supports(edition domain.Edition) bool {
	_, ok := c.builders[edition]
	return ok
}

// Render fetches the snapshot, reports progress to sink and composes the card.
//
// Fetch failures come back as *errors.Error: NOT_FOUND and VALIDATION are
// terminal, TRANSPORT is retryable by the caller. Untyped fetch errors are
// treated as TRANSPORT.
// The compositor never retries.
func (c *Compositor) Render(ctx context.Context, req Request, fetch FetchFunc, sink ProgressSink) (*Card, error) {
	if sink == nil {
		sink = NopSink{}
	}
	builder, ok := c.builders[req.Edition]
	if !ok {
		return nil, domainerrors.Unsupportedf("edition %q is not supported", req.Edition)
	}

	cardID := id.NewCardID()
	log := c.logger.With("card_id", cardID, "edition", req.Edition)

	snapshot, err := fetch(ctx)
	if err == nil && snapshot == nil {
		err = domainerrors.NotFound("no stats returned")
	}
	if err != nil {
		failure := classifyFetchError(err)
		sink.ReportFailure(StageFetching, failure.Message)
		log.Warn("failed to fetch stats",
			"code", failure.Code,
			"retryable", failure.Retryable(),
			"error", err,
		)
		return nil, failure
	}
	sink.ReportStage(StageFetched)
	log.Debug("stats obtained",
		"player", snapshot.Name,
		"skills", len(snapshot.Skills),
		"bosses", len(snapshot.Bosses),
	)

	img := builder.BuildImage(snapshot, req.Options)

	data, err := images.EncodePNG(img)
	if err != nil {
		sink.ReportFailure(StageComposed, "could not encode image")
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "encode card")
	}

	hash, err := images.ComputeBlurHash(img)
	if err != nil {
		log.Warn("failed to compute blurhash", "error", err)
	}

	size := img.Bounds().Size()
	sink.ReportStage(StageComposed)
	log.Debug("image composed",
		"player", snapshot.Name,
		"width", size.X,
		"height", size.Y,
		"bytes", len(data),
	)

	return &Card{
		ID:         cardID,
		Edition:    req.Edition,
		Player:     snapshot.Name,
		Image:      img,
		PNG:        data,
		Width:      size.X,
		Height:     size.Y,
		RawDataURL: req.RawDataURL,
		BlurHash:   hash,
	}, nil
}

// classifyFetchError keeps a fetcher's own verdict (NOT_FOUND, TRANSPORT, a
// rejected player name as VALIDATION). Untyped and INTERNAL errors become
// TRANSPORT.
func classifyFetchError(err error) *domainerrors.Error {
	var de *domainerrors.Error
	if domainerrors.As(err, &de) && de.Code != domainerrors.CodeInternal {
		return de
	}
	return domainerrors.Wrap(err, domainerrors.CodeTransport, "could not fetch stats")
}

// StaticFetch returns a FetchFunc that always yields s.
func StaticFetch(s *domain.StatSnapshot) FetchFunc {
	return func(context.Context) (*domain.StatSnapshot, error) {
		return s, nil
	}
}
