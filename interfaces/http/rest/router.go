package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"sciscroll/application/assembler"
	"sciscroll/infrastructure/config"
	"sciscroll/infrastructure/media"
	"sciscroll/interfaces/http/rest/handlers"
	"sciscroll/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	assembler *assembler.Assembler
	providers *media.Registry
	cfg       *config.Config
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	asm *assembler.Assembler,
	providers *media.Registry,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		assembler: asm,
		providers: providers,
		cfg:       cfg,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	contentHandler := handlers.NewContentHandler(rt.assembler, rt.logger)
	healthHandler := handlers.NewHealthHandler(rt.providers, rt.cfg.MockMode(), rt.logger)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
		r.Post("/initial", contentHandler.Initial)
		r.Post("/generate", contentHandler.Generate)
	})

	return router
}
