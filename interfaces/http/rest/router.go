package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"granefapi/infrastructure/di"
	"granefapi/interfaces/http/rest/handlers"
	"granefapi/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		logger:    container.Logger,
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
	if rt.container.Config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	runner := handlers.NewQueryRunner(
		rt.container.QueryService,
		rt.container.ErrorHandler,
		rt.logger,
	)
	general := handlers.NewGeneralHandler(runner, rt.container.StoreClient, rt.container.Config, rt.logger)

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// General endpoints
	router.Get("/", general.Root)
	router.Get("/connect", general.Connect)
	router.Post("/query/custom", general.Custom)

	// Graph traversal endpoints
	router.Route("/graph", func(r chi.Router) {
		graphHandler := handlers.NewGraphHandler(runner)
		r.Get("/node-attributes", graphHandler.NodeAttributes)
		r.Get("/node-neighbors", graphHandler.NodeNeighbors)
	})

	// Host endpoints
	router.Route("/hosts", func(r chi.Router) {
		hostHandler := handlers.NewHostHandler(runner)
		r.Get("/communicated", hostHandler.Communicated)
		r.Get("/connections-from-to", hostHandler.ConnectionsFromTo)
		r.Get("/originated-connections", hostHandler.OriginatedConnections)
	})

	// Connection endpoints
	router.Route("/connections", func(r chi.Router) {
		connectionHandler := handlers.NewConnectionHandler(runner)
		r.Get("/search", connectionHandler.Search)
	})

	// Overview endpoints
	router.Route("/overview", func(r chi.Router) {
		overviewHandler := handlers.NewOverviewHandler(runner)
		r.Get("/hosts-info", overviewHandler.HostsInfo)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
