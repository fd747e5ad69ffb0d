package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/quillsign/quillsign/internal/config"
	"github.com/quillsign/quillsign/internal/middleware"
	"github.com/quillsign/quillsign/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	runtime, err := NewRuntime(cfg)
	if err != nil {
		os.Stderr.WriteString("failed to initialize runtime: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer runtime.Close()

	logger := runtime.Logger
	domain := NewDomain(runtime)

	limiter := middleware.NewRateLimiter(&cfg.Signing, logger)
	defer limiter.Stop()

	routeSys := routes.New(logger)
	if err := registerRoutes(routeSys, runtime, domain, limiter); err != nil {
		logger.Error("failed to register routes", "error", err)
		os.Exit(1)
	}

	handler := buildHandler(runtime, routeSys.Build())

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr)

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	if err := <-shutdownError; err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildHandler wraps the route multiplexer with the shared middleware
// chain: trailing slash trimming, request logging with metrics, and CORS.
func buildHandler(runtime *Runtime, mux http.Handler) http.Handler {
	handler := middleware.CORS(&runtime.Config.CORS)(mux)
	handler = middleware.Logger(runtime.Logger, runtime.Metrics)(handler)
	handler = middleware.TrimSlash()(handler)
	return handler
}
