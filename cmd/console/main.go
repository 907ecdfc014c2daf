// Command console wires the sales-operations lifecycle core: blob
// cache, entity stores, seed fixtures and the lifecycle orchestrator.
// It prints the pipeline position of every known customer and exits;
// the UI consumes the same wiring in-process.
package main

import (
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/linneanarhi/internal-dashboard/internal/adapter/persistence/store"
	"github.com/linneanarhi/internal-dashboard/internal/infrastructure/config"
	"github.com/linneanarhi/internal-dashboard/internal/infrastructure/database"
	"github.com/linneanarhi/internal-dashboard/internal/seed"
	"github.com/linneanarhi/internal-dashboard/internal/usecase"
)

func main() {
	cfg := config.Load()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	// The cache is best-effort: without it the console still runs on
	// in-memory state.
	var cache store.BlobCache
	if c, err := database.Open(cfg.CachePath, log); err != nil {
		log.Warn("blob cache unavailable, running without persistence",
			"path", cfg.CachePath, "error", err)
	} else {
		cache = c
		defer c.Close()
	}

	customers := store.NewCustomerStore(cache, log)
	quotes := store.NewQuoteStore(cache, log)
	agreements := store.NewAgreementStore(cache, log)
	setups := store.NewSetupStore(cache, log)

	if err := seed.Apply(customers); err != nil {
		log.Error("failed to seed customers", "error", err)
		os.Exit(1)
	}

	lifecycle := usecase.NewLifecycleUseCase(customers, quotes, agreements, setups,
		usecase.Config{AutoActivate: cfg.AutoActivate}, log)

	for _, c := range customers.Snapshot() {
		state, err := lifecycle.FlowState(c.ID)
		if err != nil {
			log.Error("failed to resolve customer flow", "customer_id", c.ID, "error", err)
			continue
		}
		log.Info("customer pipeline",
			"customer_id", c.ID,
			"name", c.Name,
			"status", state.StatusLabel,
			"next_action", state.NextAction,
			"active", state.IsActive)
	}
}
