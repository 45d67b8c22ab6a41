package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"housing-agent/config"
	httpLayer "housing-agent/http"
	"housing-agent/repository"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the housing recommendation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if addr != "" {
				cfg.ListenAddr = addr
			}
			return runServe(cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from LISTEN_ADDR or :8080)")
	return cmd
}

func runServe(cfg config.Config) error {
	listingStore := repository.NewCSVListingStore(cfg.ListingsCSV)
	listingHandler := httpLayer.NewListingHandler(listingStore)

	advisor := newAdvisor(cfg, "api")
	predictHandler := httpLayer.NewPredictHandler(advisor)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"GET /affordable/{budget}",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(listingHandler.Affordable),
		),
	)
	mux.Handle(
		"/predict",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(predictHandler.Predict),
		),
	)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 Housing API listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return err
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
		return err
	}

	log.Println("Server exited")
	return nil
}
