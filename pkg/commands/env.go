package commands

import (
	"errors"
	"log/slog"

	"tableflip.dev/calm/pkg/config"
	"tableflip.dev/calm/pkg/journal"
	"tableflip.dev/calm/pkg/logging"
	"tableflip.dev/calm/pkg/narration"
	"tableflip.dev/calm/pkg/store"
)

// env is everything a command needs, built from the loaded config.
type env struct {
	Config      *config.Config
	Persistence store.Persistence
	Journal     *journal.Store
	Narrator    narration.Narrator

	closeLog func() error
}

// loadEnv reads the config, installs the logger and opens storage.
func loadEnv() (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := logging.Setup(cfg)
	if err != nil {
		return nil, err
	}
	p, err := store.Open(cfg)
	if err != nil {
		_ = closeLog()
		return nil, err
	}
	logger.Debug("calm: storage opened", "backend", cfg.Storage, "path", cfg.BasePath())

	return &env{
		Config:      cfg,
		Persistence: p,
		Journal: journal.New(p, journal.Options{
			Debounce:    cfg.Journal.Debounce,
			RequireText: cfg.Journal.RequireText,
			Logger:      logger,
		}),
		Narrator: narration.Detect(cfg.Narration),
		closeLog: closeLog,
	}, nil
}

// Close flushes the journal draft and releases storage and the log file.
func (e *env) Close() error {
	var errs []error
	if err := e.Journal.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := e.Persistence.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		slog.Warn("calm: shutdown", "error", errors.Join(errs...))
	}
	if err := e.closeLog(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// withEnv runs fn with a loaded env and closes it afterwards.
func withEnv(fn func(e *env) error) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	err = fn(e)
	if cerr := e.Close(); err == nil {
		err = cerr
	}
	return err
}
