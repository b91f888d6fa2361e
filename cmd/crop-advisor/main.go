package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/crop-advisor/internal/api/http"
	"github.com/i474232898/crop-advisor/internal/config"
	"github.com/i474232898/crop-advisor/internal/location"
	"github.com/i474232898/crop-advisor/internal/orchestrator"
	"github.com/i474232898/crop-advisor/internal/pricing"
	"github.com/i474232898/crop-advisor/internal/scheduler"
	"github.com/i474232898/crop-advisor/internal/store"
	"github.com/i474232898/crop-advisor/internal/suggestion"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	locations := location.Default()

	suggestions, err := suggestion.NewCatalog(locations)
	if err != nil {
		log.Fatalf("failed to build suggestion catalog: %v", err)
	}

	// Price estimator behind a circuit breaker.
	estimator := pricing.NewTableEstimator(
		pricing.NewRandomSource(cfg.RandomSeed),
		pricing.FixedDelay(cfg.EstimateDelay),
		nil,
	)
	breaker := pricing.NewBreaker(estimator, cfg.BreakerMaxFailures, cfg.BreakerOpenTimeout)

	// In-memory session state with configured retention.
	memStore := store.NewMemoryStore(cfg.SessionMaxAge)

	orch := orchestrator.New(breaker, memStore, cfg.SessionMaxHistory)
	orch.OnTransition = func(sessionID string, from, to orchestrator.State) {
		log.Printf("DEBUG: session %s: %s -> %s", sessionID, from, to)
	}

	// Scheduler that periodically drops stale sessions.
	sched := scheduler.New(memStore, cfg.SessionSweepInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "crop-advisor",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10*time.Second + cfg.EstimateDelay,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	httpapi.RegisterHealth(app, "crop-advisor", health{breaker: breaker, store: memStore})

	httpapi.RegisterRoutes(app, locations, suggestions, orch)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()
	log.Printf("INFO: crop-advisor listening on :%s", cfg.Port)

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

// health reports the breaker state and live session count.
type health struct {
	breaker *pricing.Breaker
	store   *store.MemoryStore
}

func (h health) EstimatorState() string { return h.breaker.State() }
func (h health) Sessions() int          { return h.store.Len() }
