// Package config loads the Stockbook runtime configuration from
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// DataDir is where the store, backups, and reports live.
	DataDir string
	// DatabaseFile is the store filename inside DataDir.
	DatabaseFile string
	// ReportsDir is where generated PDFs land by default.
	ReportsDir string
	// BackupsDir is where backups land by default.
	BackupsDir string
	// Operator is the default "recorded by" name stamped on events
	// when the entry path does not name one.
	Operator string
	// PendingTaskDays is the dashboard look-ahead window for due tasks.
	PendingTaskDays int
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
}

// Load reads configuration from STOCKBOOK_* environment variables,
// with defaults rooted under ~/.stockbook.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("STOCKBOOK")
	v.AutomaticEnv()

	v.SetDefault("DATA_DIR", filepath.Join(home, ".stockbook"))
	v.SetDefault("DATABASE_FILE", "stockbook.db")
	v.SetDefault("REPORTS_DIR", "")
	v.SetDefault("BACKUPS_DIR", "")
	v.SetDefault("OPERATOR", "")
	v.SetDefault("PENDING_TASK_DAYS", 7)
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		DataDir:         v.GetString("DATA_DIR"),
		DatabaseFile:    v.GetString("DATABASE_FILE"),
		ReportsDir:      v.GetString("REPORTS_DIR"),
		BackupsDir:      v.GetString("BACKUPS_DIR"),
		Operator:        v.GetString("OPERATOR"),
		PendingTaskDays: v.GetInt("PENDING_TASK_DAYS"),
		LogLevel:        v.GetString("LOG_LEVEL"),
	}
	if cfg.ReportsDir == "" {
		cfg.ReportsDir = filepath.Join(cfg.DataDir, "reports")
	}
	if cfg.BackupsDir == "" {
		cfg.BackupsDir = filepath.Join(cfg.DataDir, "backups")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// DatabasePath returns the full path to the store file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("STOCKBOOK_DATA_DIR is required")
	}
	if c.DatabaseFile == "" {
		return fmt.Errorf("STOCKBOOK_DATABASE_FILE is required")
	}
	if c.PendingTaskDays < 0 {
		return fmt.Errorf("STOCKBOOK_PENDING_TASK_DAYS must be non-negative")
	}
	return nil
}
