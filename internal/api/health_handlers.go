package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Reports whether the server is able to reach its store",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// HealthResponse reports server health.
type HealthResponse struct {
	Status string `json:"status" doc:"Overall health (healthy or degraded)"`
	Films  int    `json:"films" doc:"Number of films in the catalog"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	// Counting one collection proves the store is readable.
	count, err := s.store.Films.Count(ctx)
	if err != nil {
		s.logger.Error("health check store read failed", "error", err)
		return &HealthOutput{Body: HealthResponse{Status: "degraded"}}, nil
	}

	return &HealthOutput{Body: HealthResponse{Status: "healthy", Films: count}}, nil
}
