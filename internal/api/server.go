// Package api provides the HTTP API server and handlers for the
// Framelight studio site.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/framelightapp/framelight-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store            *store.Store
	services         *Services
	router           *chi.Mux
	api              huma.API
	logger           *slog.Logger
	contactRateLimit *RateLimiter
}

// Options configures the API server.
type Options struct {
	Store       *store.Store
	Services    *Services
	Logger      *slog.Logger
	CORSOrigins []string
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(opts Options) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	humaConfig := huma.DefaultConfig("Framelight API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "PASETO",
		},
	}
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)

	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:    opts.Store,
		services: opts.Services,
		router:   router,
		api:      api,
		logger:   opts.Logger,
		// 5 submissions per minute per IP keeps form spam cheap to
		// ignore without bothering real visitors.
		contactRateLimit: NewRateLimiter(5, minuteInterval, 5),
	}

	s.registerHealthRoutes()
	s.registerAuthRoutes()
	s.registerFilmRoutes()
	s.registerSeriesRoutes()
	s.registerBlogRoutes()
	s.registerCategoryRoutes()
	s.registerTagRoutes()
	s.registerAuthorRoutes()
	s.registerBannerRoutes()
	s.registerUploadRoutes()
	s.registerContactRoutes()
	s.registerSearchRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
