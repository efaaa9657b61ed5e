// Package cli contains the stockbook commands. Commands are thin:
// they parse flags, call the services, and print. Business rules live
// in the app and core packages.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/example/stockbook/internal/adapters/sqlite"
	"github.com/example/stockbook/internal/app"
	"github.com/example/stockbook/internal/config"
	"github.com/example/stockbook/internal/db"
	"github.com/example/stockbook/internal/ports/primary"
	"github.com/example/stockbook/internal/reports"
)

// App wires the store, services, and report generator together.
// Commands receive an *App instead of reaching for globals, so tests
// can build one over a throwaway store.
type App struct {
	Config *config.Config
	Log    zerolog.Logger
	Store  *db.Store

	Paddocks primary.PaddockService
	Mobs     primary.MobService
	Animals  primary.AnimalService
	Products primary.ProductService
	Events   primary.EventService
	Tasks    primary.TaskService
	Settings primary.SettingsService
	Summary  primary.SummaryService
	Weights  primary.WeightsService

	Reports *reports.Generator
}

// NewApp opens the store at the configured path and builds the full
// service graph over it.
func NewApp(cfg *config.Config, log zerolog.Logger) (*App, error) {
	store, err := db.Open(cfg.DatabasePath(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	sqlDB := store.DB()
	paddockRepo := sqlite.NewPaddockRepository(sqlDB)
	mobRepo := sqlite.NewMobRepository(sqlDB)
	animalRepo := sqlite.NewAnimalRepository(sqlDB)
	productRepo := sqlite.NewProductRepository(sqlDB)
	eventRepo := sqlite.NewEventRepository(sqlDB)
	taskRepo := sqlite.NewTaskRepository(sqlDB)
	settingsRepo := sqlite.NewSettingsRepository(sqlDB)

	return &App{
		Config:   cfg,
		Log:      log,
		Store:    store,
		Paddocks: app.NewPaddockService(paddockRepo),
		Mobs:     app.NewMobService(mobRepo, animalRepo),
		Animals:  app.NewAnimalService(animalRepo),
		Products: app.NewProductService(productRepo),
		Events:   app.NewEventService(eventRepo, animalRepo, mobRepo, productRepo, paddockRepo),
		Tasks:    app.NewTaskService(taskRepo),
		Settings: app.NewSettingsService(settingsRepo),
		Summary:  app.NewSummaryService(animalRepo, eventRepo, taskRepo, cfg.PendingTaskDays),
		Weights:  app.NewWeightsService(eventRepo, animalRepo),
		Reports: reports.NewGenerator(
			animalRepo, mobRepo, paddockRepo, productRepo, eventRepo, settingsRepo, log,
		),
	}, nil
}

// recordedBy resolves the "recorded by" name for an event entry:
// the explicit flag value, else the configured operator.
func (a *App) recordedBy(flag string) string {
	if flag != "" {
		return flag
	}
	return a.Config.Operator
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// EnsureDirs creates the reports and backups directories.
func (a *App) EnsureDirs() error {
	for _, dir := range []string{a.Config.ReportsDir, a.Config.BackupsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
