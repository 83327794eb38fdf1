package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/triage/internal/config"
	"github.com/blackwell-systems/triage/internal/output"
	"github.com/blackwell-systems/triage/internal/report"
	"github.com/blackwell-systems/triage/internal/store"
)

// env is the state shared by every command after startup.
type env struct {
	cfg     *config.Config
	logger  zerolog.Logger
	reports *report.Manager
}

// setup loads the config, creates the working directories and prepares the
// report catalog, which is opened on first use.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}

	level := cfg.Level()
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	color.NoColor = !output.IsColorEnabled()

	// Operations that need a missing directory report their own failures.
	if err := cfg.EnsureDirs(); err != nil {
		logger.Warn().Err(err).Msg("failed to create working directories")
	}

	var open report.Opener
	if cfg.Catalog {
		path := cfg.CatalogPath
		open = func() (*store.Store, error) { return openCatalog(path) }
	}

	return &env{
		cfg:     cfg,
		logger:  logger,
		reports: report.NewLazy(open, cfg.ReportsDir, logger),
	}, nil
}

func (e *env) close() {
	if err := e.reports.Close(); err != nil {
		e.logger.Warn().Err(err).Msg("failed to close report catalog")
	}
}

// newLogger returns a human-readable zerolog logger writing to w.
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok && f == os.Stderr {
		noColor = !output.IsColorEnabled()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor}).
		Level(level).
		With().Timestamp().Logger()
}

// openCatalog opens the report catalog at path and creates its schema.
func openCatalog(path string) (*store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	st, err := store.New(path)
	if err != nil {
		return nil, err
	}
	if err := st.CreateSchema(); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

// catalogError adds a hint to a disabled-catalog error.
func catalogError(err error) error {
	if errors.Is(err, report.ErrCatalogDisabled) {
		return fmt.Errorf("%w (set catalog: true in the config file)", err)
	}
	return err
}
