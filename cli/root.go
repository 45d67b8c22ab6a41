package cli

import (
	"log"

	"github.com/spf13/cobra"

	"housing-agent/config"
	"housing-agent/repository"
	"housing-agent/service"
)

// Execute runs the housing-agent CLI.
func Execute() error {
	root := &cobra.Command{
		Use:          "housing-agent",
		Short:        "Off-campus housing affordability advisor",
		SilenceUsage: true,
	}
	root.AddCommand(adviseCmd(), serveCmd())
	return root.Execute()
}

// newCache picks Redis when configured, else the in-process cache.
func newCache(cfg config.Config) repository.CacheRepository {
	if cfg.RedisAddr != "" {
		return repository.NewRedisCache(cfg.RedisAddr)
	}
	return repository.NewMockCache()
}

// newHistory connects to the warehouse when configured; anything less
// degrades to an in-memory event log with a warning, never a startup
// failure.
func newHistory(cfg config.Config) repository.HistoryRepository {
	if cfg.WarehouseDSN == "" {
		return repository.NewMemoryHistoryRepository()
	}
	repo, err := repository.NewPostgresHistoryRepository(cfg.WarehouseDSN)
	if err != nil {
		log.Printf("Warning: history warehouse unavailable, events kept in memory: %v", err)
		return repository.NewMemoryHistoryRepository()
	}
	return repo
}

// newAdvisor wires the full pipeline for one session.
func newAdvisor(cfg config.Config, userID string) *service.AdvisorService {
	affordability := service.NewAffordabilityService(
		repository.NewCSVHistoricalStore(cfg.HistoricalCSV),
		newCache(cfg),
	)
	return service.NewAdvisorService(
		affordability,
		repository.NewCSVListingStore(cfg.ListingsCSV),
		newHistory(cfg),
		userID,
	)
}
