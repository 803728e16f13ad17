package api

import (
	"context"
	"net/http"
	"slices"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/statcard/internal/domain"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health and the editions it can render",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status   string   `json:"status" doc:"Overall status: healthy or degraded"`
	Editions []string `json:"editions" doc:"Editions the compositor can render"`
	Players  bool     `json:"players" doc:"Whether player lookups through the hiscores are available"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	var editions []string
	for _, e := range []domain.Edition{domain.EditionOldSchool, domain.EditionRuneScape} {
		if s.compositor.Supports(e) {
			editions = append(editions, string(e))
		}
	}
	slices.Sort(editions)

	status := "healthy"
	if len(editions) == 0 {
		status = "degraded"
	}

	return &HealthOutput{
		Body: HealthResponse{
			Status:   status,
			Editions: editions,
			Players:  s.players != nil,
		},
	}, nil
}
