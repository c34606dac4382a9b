package routes

import (
	"net/http"

	"github.com/winnipegconnect/backend/internal/api/handlers"
	"github.com/winnipegconnect/backend/internal/api/middleware"
	"github.com/winnipegconnect/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	healthHandler    *handlers.HealthHandler
	providerHandler  *handlers.ProviderHandler
	jobHandler       *handlers.JobHandler
	sessionHandler   *handlers.SessionHandler
	mapHandler       *handlers.MapHandler
	analyticsHandler *handlers.AnalyticsHandler

	cacheMiddleware *middleware.CacheMiddleware
	allowedOrigins  []string
	metrics         *observability.Metrics
}

// NewRouter creates a new router. cacheMiddleware and metrics may be nil.
func NewRouter(
	healthHandler *handlers.HealthHandler,
	providerHandler *handlers.ProviderHandler,
	jobHandler *handlers.JobHandler,
	sessionHandler *handlers.SessionHandler,
	mapHandler *handlers.MapHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		healthHandler:    healthHandler,
		providerHandler:  providerHandler,
		jobHandler:       jobHandler,
		sessionHandler:   sessionHandler,
		mapHandler:       mapHandler,
		analyticsHandler: analyticsHandler,
		cacheMiddleware:  cacheMiddleware,
		allowedOrigins:   allowedOrigins,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", r.healthHandler.Health)

	// Provider catalog endpoints
	r.mux.HandleFunc("GET /api/providers", r.providerHandler.ListProviders)
	r.mux.HandleFunc("GET /api/providers/suggest", r.providerHandler.SuggestProviders)
	r.mux.HandleFunc("GET /api/providers/{id}", r.providerHandler.GetProvider)
	r.mux.HandleFunc("GET /api/categories", r.providerHandler.ListCategories)

	// Job endpoints
	r.mux.HandleFunc("GET /api/jobs", r.jobHandler.ListJobs)
	r.mux.HandleFunc("GET /api/jobs/{id}", r.jobHandler.GetJob)

	// Map endpoints
	r.mux.HandleFunc("GET /api/map/markers", r.mapHandler.GetMarkers)

	// Session view-state endpoints
	r.mux.HandleFunc("POST /api/sessions", r.sessionHandler.CreateSession)
	r.mux.HandleFunc("GET /api/sessions/{id}", r.sessionHandler.GetSession)
	r.mux.HandleFunc("POST /api/sessions/{id}/actions", r.sessionHandler.ApplyAction)
	r.mux.HandleFunc("GET /api/sessions/{id}/view", r.sessionHandler.GetView)
	r.mux.HandleFunc("DELETE /api/sessions/{id}", r.sessionHandler.DeleteSession)

	// Analytics endpoints
	if r.analyticsHandler != nil {
		r.mux.HandleFunc("GET /api/analytics/zero-result-queries", r.analyticsHandler.GetZeroResultQueries)
	}

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)

	// session id is in context for logging, tracing and analytics
	handler = middleware.SessionMiddleware(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
