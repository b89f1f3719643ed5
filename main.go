package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/visits"
	"github.com/Zachkp/portfolio/web"

	_ "modernc.org/sqlite"
)

const (
	dbPingTimeout  = 5 * time.Second
	cleanupTimeout = 30 * time.Second
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log, err := createLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	src, err := createContentSource(cfg, log)
	if err != nil {
		log.Error("Failed to create content source", logger.Error(err))
		return 1
	}

	opts := server.Options{
		Config:  cfg,
		Logger:  log,
		Content: src,
		Metrics: metrics.New(),
	}

	if cfg.NeedsDatabase() {
		db, dbErr := openDatabase(cfg, log)
		if dbErr != nil {
			log.Error("Failed to open database", logger.Error(dbErr))
			return 1
		}
		defer func() { _ = db.Close() }()

		store, storeErr := prepareVisitStore(cfg, log, db)
		if storeErr != nil {
			log.Error("Failed to prepare visit store", logger.Error(storeErr))
			return 1
		}
		opts.Visits = store
	}

	return runServer(opts, log)
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if validationErr := cfg.Validate(); validationErr != nil {
		return nil, fmt.Errorf("validate config: %w", validationErr)
	}
	return cfg, nil
}

// createLogger creates a logger instance from configuration.
func createLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}

// createContentSource serves the embedded JSON unless a remote base URL
// is configured.
func createContentSource(cfg *config.Config, log logger.Logger) (content.Source, error) {
	if cfg.Content.BaseURL == "" {
		log.Info("Serving embedded content")
		return content.NewFileSource(web.Data()), nil
	}
	src, err := content.NewHTTPSource(cfg.Content.BaseURL, cfg.Content.FetchTimeout)
	if err != nil {
		return nil, err
	}
	log.Info("Serving remote content",
		logger.String("base_url", cfg.Content.BaseURL),
		logger.Duration("timeout", cfg.Content.FetchTimeout),
	)
	return src, nil
}

// openDatabase opens and verifies the SQLite visit log.
func openDatabase(cfg *config.Config, log logger.Logger) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite", cfg.Database.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", pingErr)
	}

	log.Info("Database connected", logger.String("path", cfg.Database.Path))
	return db, nil
}

// prepareVisitStore migrates the visit log and applies the retention
// window once at start-up.
func prepareVisitStore(cfg *config.Config, log logger.Logger, db *sql.DB) (*visits.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	store := visits.NewStore(db)
	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}
	deleted, err := store.Cleanup(ctx, cfg.Privacy.Retention)
	if err != nil {
		return nil, err
	}
	log.Info("Visit log ready",
		logger.Int64("expired_deleted", deleted),
		logger.Duration("retention", cfg.Privacy.Retention),
	)
	return store, nil
}

// runServer builds the HTTP server and serves until SIGINT or SIGTERM.
func runServer(opts server.Options, log logger.Logger) int {
	srv, err := server.New(opts)
	if err != nil {
		log.Error("Failed to create server", logger.Error(err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Error("Server error", logger.Error(err))
		return 1
	}

	log.Info("Portfolio exited cleanly")
	return 0
}
