package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/quillsign/quillsign/internal/config"
	"github.com/quillsign/quillsign/internal/database"
	"github.com/quillsign/quillsign/internal/metrics"
	"github.com/quillsign/quillsign/internal/storage"
	"github.com/quillsign/quillsign/pkg/logging"
	"github.com/quillsign/quillsign/pkg/pagination"
	"github.com/quillsign/quillsign/pkg/tokens"
)

// Runtime holds the shared infrastructure every domain system is built on.
type Runtime struct {
	Config     *config.Config
	Logger     *slog.Logger
	DB         *sql.DB
	Storage    storage.System
	Tokens     tokens.Issuer
	Metrics    *metrics.Collector
	Pagination pagination.Config
}

// NewRuntime builds the shared infrastructure: logger, migrated database,
// blob storage, token issuer, and metrics collector.
func NewRuntime(cfg *config.Config) (*Runtime, error) {
	logger := logging.New(&cfg.Logging)

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	if err := database.Migrate(&cfg.Database); err != nil {
		db.Close()
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Runtime{
		Config:     cfg,
		Logger:     logger,
		DB:         db,
		Storage:    store,
		Tokens:     tokens.NewIssuer(),
		Metrics:    metrics.NewCollector(),
		Pagination: cfg.Pagination,
	}, nil
}

// Close releases runtime resources.
func (r *Runtime) Close() {
	r.DB.Close()
}
