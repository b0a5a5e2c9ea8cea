package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/elijahgives/webhook-client/pkg/config"
	"github.com/elijahgives/webhook-client/pkg/logger"
)

// Server is the relay HTTP server: it accepts notification requests and
// forwards them to the configured Discord webhook.
type Server struct {
	httpServer *http.Server
	router     *mux.Router
	logger     logger.Logger
	config     *config.Config
}

// NewServer creates a new relay server with routes and middleware wired
func NewServer(cfg *config.Config, log logger.Logger, handler *Handler) *Server {
	router := mux.NewRouter()

	middleware := NewMiddleware(log)
	router.Use(middleware.Recovery)
	router.Use(middleware.Logging)

	api := router.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/announcements", handler.HandleAnnouncement).Methods(http.MethodPost)
	api.HandleFunc("/alerts", handler.HandleAlert).Methods(http.MethodPost)
	api.HandleFunc("/messages", handler.HandleRawMessage).Methods(http.MethodPost)
	api.HandleFunc("/health", handler.HandleHealth).Methods(http.MethodGet)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Address(),
			Handler:      router,
			ReadTimeout:  parseDurationOr(cfg.HTTP.ReadTimeout, 10*time.Second),
			WriteTimeout: parseDurationOr(cfg.HTTP.WriteTimeout, 30*time.Second),
		},
		router: router,
		logger: log,
		config: cfg,
	}
}

// Router exposes the underlying router, mainly for tests
func (s *Server) Router() *mux.Router {
	return s.router
}

// Start starts the relay server and blocks until it stops
func (s *Server) Start() error {
	s.logger.WithField("address", s.httpServer.Addr).Info("Starting relay server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully stops the relay server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping relay server")
	return s.httpServer.Shutdown(ctx)
}

// parseDurationOr parses a duration string, falling back on bad input
func parseDurationOr(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
