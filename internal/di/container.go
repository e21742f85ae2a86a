package di

import (
	"context"
	"fmt"

	"portal-automation/internal/application/port/input"
	"portal-automation/internal/application/port/output"
	"portal-automation/internal/infrastructure/browser/rod"
	"portal-automation/internal/infrastructure/logger"
	"portal-automation/internal/infrastructure/storage"
	"portal-automation/internal/infrastructure/userinteraction"
	"portal-automation/internal/usecase/login"
	"portal-automation/internal/usecase/search"
)

type Container struct {
	Config    Config
	Logger    output.LoggerPort
	Sessions  output.SessionFactory
	Console   *userinteraction.ConsoleUserInteraction
	Snapshots output.SnapshotStore
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(cfg.TaskName, cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	c := &Container{
		Config:   cfg,
		Logger:   log,
		Sessions: rod.NewSessionFactory(log),
		Console:  userinteraction.NewConsoleUserInteraction(),
	}

	if cfg.SnapshotDir != "" {
		store, err := storage.NewFileSnapshotStore(cfg.SnapshotDir)
		if err != nil {
			log.Close()
			return nil, fmt.Errorf("failed to create snapshot store: %w", err)
		}
		c.Snapshots = store
	}

	return c, nil
}

// WithSession opens a browser, hands it to fn and closes it exactly once on
// every path out, including panics in fn.
func (c *Container) WithSession(ctx context.Context, fn func(session output.SessionPort) error) (err error) {
	session, err := c.Sessions.Open(ctx, c.Config.Browser)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			c.Logger.Error("Error quitting browser", "error", closeErr)
			if err == nil {
				err = closeErr
			}
		}
	}()

	return fn(session)
}

func (c *Container) LoginExecutor(session output.SessionPort) (input.LoginExecutor, error) {
	opts := []login.Option{login.WithProgress(c.Console)}
	if c.Snapshots != nil {
		opts = append(opts, login.WithSnapshotStore(c.Snapshots))
	}
	return login.New(session, c.Config.Login, c.Logger, opts...)
}

func (c *Container) SearchExecutor(session output.SessionPort) input.SearchExecutor {
	return search.New(session, c.Config.SearchURL, c.Logger)
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}
