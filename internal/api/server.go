package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/witnessos/engine-core/internal/api/handlers"
	"github.com/witnessos/engine-core/internal/api/middleware"
	"github.com/witnessos/engine-core/internal/astro"
	"github.com/witnessos/engine-core/internal/config"
	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/internal/monitoring"
	"github.com/witnessos/engine-core/internal/orchestrator"
	"github.com/witnessos/engine-core/internal/workflow"
	"github.com/witnessos/engine-core/pkg/cache"
	"github.com/witnessos/engine-core/pkg/logger"
)

// Server wires the HTTP surface of §4.8 on top of the registry,
// orchestrator, and workflow manager.
type Server struct {
	config     *config.Config
	logger     logger.Logger
	registry   *engine.Registry
	orch       *orchestrator.Orchestrator
	workflows  *workflow.Manager
	eph        astro.Ephemeris
	rateLimit  cache.Cache
	router     *gin.Engine
	httpServer *http.Server
}

// NewServer builds the server and wires routes and middleware. If rateLimit
// is nil, request counts are kept in a process-local in-memory cache, so
// throttling still applies, per process.
func NewServer(
	cfg *config.Config,
	log logger.Logger,
	registry *engine.Registry,
	orch *orchestrator.Orchestrator,
	workflows *workflow.Manager,
	eph astro.Ephemeris,
	rateLimit cache.Cache,
) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	if rateLimit == nil {
		rateLimit = cache.NewNoopCache(log, time.Minute)
	}

	server := &Server{
		config:    cfg,
		logger:    log,
		registry:  registry,
		orch:      orch,
		workflows: workflows,
		eph:       eph,
		rateLimit: rateLimit,
		router:    router,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.CORSMiddleware(s.config.CORS))
	s.router.Use(middleware.RequestLogger(s.logger))
	s.router.Use(monitoring.HTTPMetricsMiddleware())
	s.router.Use(middleware.RateLimiter(s.rateLimit))
	s.router.Use(middleware.ErrorHandler(s.logger))
}

func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.registry)
	s.router.GET("/health", healthHandler.Health)

	if s.config.Monitoring.Enabled {
		monitoring.SetupPrometheusMetrics(s.router)
	}

	engineHandler := handlers.NewEngineHandler(s.registry)
	calculateHandler := handlers.NewCalculateHandler(s.orch)
	workflowHandler := handlers.NewWorkflowHandler(s.workflows)
	ephemerisHandler := handlers.NewEphemerisHandler(s.eph)

	v1 := s.router.Group("/api/v1")
	v1.GET("/engines", engineHandler.ListEngines)
	v1.POST("/engines/:name/calculate", calculateHandler.Calculate)
	v1.GET("/workflows", workflowHandler.ListWorkflows)
	v1.POST("/workflows/:name/run", workflowHandler.Run)
	v1.POST("/swiss_ephemeris/calculate", ephemerisHandler.Calculate)
}

// Start runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("engine-core HTTP server starting", "port", s.config.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down engine-core gracefully")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}
