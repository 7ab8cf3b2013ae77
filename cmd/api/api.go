package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hirewire/jobboard/app/logger"
	"github.com/hirewire/jobboard/app/metrics"
	authmw "github.com/hirewire/jobboard/app/middleware"
	"github.com/hirewire/jobboard/app/services"
	"github.com/hirewire/jobboard/app/store"
)

type application struct {
	config      config
	store       store.Storage
	authService *services.AuthService
	db          interface {
		PingContext(ctx context.Context) error
		Close() error
	}
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

type config struct {
	addr         string
	authRequired bool
	db           dbConfig
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(authmw.RequestIDTracing())
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Use(authmw.Metrics())
	r.Use(authmw.SecurityHeaders())

	// CORS must run early so preflight requests are answered
	r.Use(authmw.CORS())

	r.Use(authmw.BodyLimitFromEnv())
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", http.HandlerFunc(app.healthCheckHandler))
		r.Get("/metrics", metrics.MetricsHandler().ServeHTTP)

		r.Route("/users", func(r chi.Router) {
			r.Post("/signup", http.HandlerFunc(app.signupHandler))
			r.Post("/login", http.HandlerFunc(app.loginHandler))
		})

		r.Route("/jobs", func(r chi.Router) {
			// The open deployment variant leaves job routes unguarded
			if app.config.authRequired {
				r.Use(authmw.RequireAuth(app.authService))
			}
			r.Get("/", http.HandlerFunc(app.listJobsHandler))
			r.Post("/", http.HandlerFunc(app.createJobHandler))
			r.Get("/{jobID}", http.HandlerFunc(app.getJobHandler))
			r.Put("/{jobID}", http.HandlerFunc(app.updateJobHandler))
			r.Delete("/{jobID}", http.HandlerFunc(app.deleteJobHandler))
		})
	})
	return r
}

// runWithGracefulShutdown starts the server and handles SIGTERM/SIGINT,
// letting in-flight requests finish before closing connections.
func (app *application) runWithGracefulShutdown(mux http.Handler, db interface{ Close() error }) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: 30 * time.Second,
		ReadTimeout:  10 * time.Second,
		IdleTimeout:  time.Minute,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Logger.Info().Str("addr", app.config.addr).Bool("auth_required", app.config.authRequired).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Logger.Info().Str("signal", sig.String()).Msg("Received signal, starting graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	logger.Logger.Info().Msg("Server gracefully stopped")

	logger.Logger.Info().Msg("Closing database connection")
	if err := db.Close(); err != nil {
		logger.Logger.Error().Err(err).Msg("Error closing database")
	}

	logger.Logger.Info().Msg("Graceful shutdown completed")
	return nil
}
