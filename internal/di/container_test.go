package di

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-automation/internal/application/port/output"
	"portal-automation/internal/domain/entity"
	"portal-automation/internal/infrastructure/env"
	"portal-automation/internal/infrastructure/logger"
	"portal-automation/internal/usecase/login"
)

type countingSession struct {
	output.SessionPort
	closeCalls int
	closeErr   error
}

func (s *countingSession) Close() error {
	s.closeCalls++
	return s.closeErr
}

type fakeFactory struct {
	session *countingSession
	err     error
	opened  []entity.BrowserOptions
}

func (f *fakeFactory) Open(ctx context.Context, opts entity.BrowserOptions) (output.SessionPort, error) {
	f.opened = append(f.opened, opts)
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

func newTestContainer(factory *fakeFactory) *Container {
	return &Container{
		Config:   Config{Browser: entity.DefaultBrowserOptions()},
		Logger:   logger.NewNop(),
		Sessions: factory,
	}
}

func TestWithSession_ClosesOnceOnEveryPath(t *testing.T) {
	stepErr := &login.StepError{State: entity.LoginSecretEntered, Err: entity.ErrElementNotFound}

	tests := []struct {
		name    string
		fn      func(output.SessionPort) error
		wantErr error
	}{
		{"success", func(output.SessionPort) error { return nil }, nil},
		{"early failure", func(output.SessionPort) error { return stepErr }, entity.ErrElementNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := &fakeFactory{session: &countingSession{}}
			c := newTestContainer(factory)

			err := c.WithSession(context.Background(), tt.fn)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, factory.session.closeCalls)
			assert.Equal(t, []entity.BrowserOptions{entity.DefaultBrowserOptions()}, factory.opened)
		})
	}
}

func TestWithSession_ClosesOnPanic(t *testing.T) {
	factory := &fakeFactory{session: &countingSession{}}
	c := newTestContainer(factory)

	assert.Panics(t, func() {
		_ = c.WithSession(context.Background(), func(output.SessionPort) error {
			panic("boom")
		})
	})
	assert.Equal(t, 1, factory.session.closeCalls)
}

func TestWithSession_CloseErrorDoesNotMaskFlowError(t *testing.T) {
	closeErr := errors.New("browser already gone")
	factory := &fakeFactory{session: &countingSession{closeErr: closeErr}}
	c := newTestContainer(factory)

	err := c.WithSession(context.Background(), func(output.SessionPort) error {
		return entity.ErrNavigationTimeout
	})
	assert.ErrorIs(t, err, entity.ErrNavigationTimeout)

	err = c.WithSession(context.Background(), func(output.SessionPort) error { return nil })
	assert.ErrorIs(t, err, closeErr)
}

func TestWithSession_OpenFails(t *testing.T) {
	factory := &fakeFactory{err: entity.ErrInitialization}
	c := newTestContainer(factory)

	called := false
	err := c.WithSession(context.Background(), func(output.SessionPort) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, entity.ErrInitialization)
	assert.False(t, called)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("BROWSER_HEADLESS", "false")
	t.Setenv("BROWSER_USER_DATA_DIR", "/tmp/chrome_data")
	t.Setenv("BROWSER_REMOTE_DEBUG_PORT", "9222")
	t.Setenv("PORTAL_URL", "https://portal.example/")
	t.Setenv("PORTAL_STEP_TIMEOUT", "3s")
	t.Setenv("SNAPSHOT_DIR", "snapshots")

	cfg := ConfigFromEnv(&env.EnvService{}, "login")

	assert.Equal(t, "login", cfg.TaskName)
	assert.False(t, cfg.Browser.Headless)
	assert.True(t, cfg.Browser.NoSandbox)
	assert.True(t, cfg.Browser.DisableDevShmUsage)
	assert.Equal(t, "/tmp/chrome_data", cfg.Browser.UserDataDir)
	assert.Equal(t, 9222, cfg.Browser.RemoteDebuggingPort)

	assert.Equal(t, "https://portal.example/", cfg.Login.PortalURL)
	assert.Equal(t, login.DefaultLoginSelector, cfg.Login.LoginSelector)
	assert.Equal(t, 3*time.Second, cfg.Login.StepTimeout)
	assert.Equal(t, "snapshots", cfg.SnapshotDir)
}

func TestNewContainer(t *testing.T) {
	dir := t.TempDir()
	c, err := NewContainer(Config{
		TaskName:    "login",
		Log:         logger.Config{Dir: dir},
		Login:       login.DefaultConfig(),
		SnapshotDir: dir + "/snapshots",
	})
	require.NoError(t, err)
	defer c.Close()

	assert.NotNil(t, c.Sessions)
	assert.NotNil(t, c.Snapshots)

	uc, err := c.LoginExecutor(&countingSession{})
	require.NoError(t, err)
	assert.NotNil(t, uc)
	assert.NotNil(t, c.SearchExecutor(&countingSession{}))
}
