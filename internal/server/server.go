package server

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr        string
	RatePerSec  rate.Limit
	RateBurst   int
	AllowOrigin string
}

// DefaultConfig returns the settings used when no environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		Addr:        ":8080",
		RatePerSec:  5,
		RateBurst:   10,
		AllowOrigin: "*",
	}
}

// ConfigFromEnv loads settings from GOBEAM_* environment variables,
// reading a .env file first when one exists.
func ConfigFromEnv() Config {
	godotenv.Load() // .env is optional

	cfg := DefaultConfig()
	if v := os.Getenv("GOBEAM_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("GOBEAM_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RatePerSec = rate.Limit(f)
		}
	}
	if v := os.Getenv("GOBEAM_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateBurst = n
		}
	}
	if v := os.Getenv("GOBEAM_ALLOW_ORIGIN"); v != "" {
		cfg.AllowOrigin = v
	}
	return cfg
}

// Server exposes the beam design operations over HTTP.
type Server struct {
	cfg     Config
	log     *zap.Logger
	limiter *ipRateLimiter
	router  *mux.Router
}

func New(cfg Config, log *zap.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		log:     log,
		limiter: newIPRateLimiter(cfg.RatePerSec, cfg.RateBurst),
		router:  mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.Use(s.requestID, s.logRequests, s.limiter.limit)

	api.HandleFunc("/design", s.handleDesign).Methods("POST")
	api.HandleFunc("/schematic", s.handleSchematic).Methods("GET")
	api.HandleFunc("/envelope", s.handleEnvelope).Methods("GET")
	api.HandleFunc("/report", s.handleReport).Methods("POST")
	api.HandleFunc("/batch", s.handleBatch).Methods("POST")
}

// Handler returns the root handler with CORS applied.
func (s *Server) Handler() http.Handler {
	return s.cors(s.router)
}

// Run serves until the context is canceled, then drains active
// connections before returning.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting server", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
