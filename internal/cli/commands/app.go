package commands

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/Shivansh-2508/PGT-Portal/internal/cli/client"
	"github.com/Shivansh-2508/PGT-Portal/internal/cli/session"
	"github.com/Shivansh-2508/PGT-Portal/internal/config"
	infradb "github.com/Shivansh-2508/PGT-Portal/internal/infrastructure/database"
	dbpkg "github.com/Shivansh-2508/PGT-Portal/pkg/database"
	"github.com/Shivansh-2508/PGT-Portal/pkg/logger"
)

// app bundles the collaborators shared by every command
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *sql.DB
	logClose io.Closer
	sessions *session.Context
	repo     *session.Repository
	client   *client.APIClient
}

// newApp loads configuration, sets up logging and opens the local store
func newApp() (*app, error) {
	cfg, err := config.Load(config.Options{
		ConfigFile: cfgFile,
		Server:     serverFlag,
		LogLevel:   logLevelFlag,
	})
	if err != nil {
		return nil, err
	}

	logClose, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	log := slog.Default()

	db, err := dbpkg.Open(cfg.Storage.Path, log)
	if err != nil {
		logClose.Close()
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}

	apiClient, err := client.NewAPIClient(cfg.ServerURL(), cfg.RequestTimeout)
	if err != nil {
		db.Close()
		logClose.Close()
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   log,
		db:       db,
		logClose: logClose,
		sessions: session.NewContext(),
		repo:     session.NewRepository(infradb.NewKVRepository(db), log),
		client:   apiClient,
	}, nil
}

// Close releases the database and the log file
func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close local storage", "error", err)
	}
	a.logClose.Close()
}
