package login

import (
	"context"
	"fmt"
	"time"

	"portal-automation/internal/application/port/input"
	"portal-automation/internal/application/port/output"
	"portal-automation/internal/domain/entity"
)

var _ input.LoginExecutor = (*UseCase)(nil)

type UseCase struct {
	session   output.SessionPort
	cfg       Config
	logger    output.LoggerPort
	progress  output.ProgressPort
	snapshots output.SnapshotStore
}

type Option func(*UseCase)

func WithProgress(p output.ProgressPort) Option {
	return func(uc *UseCase) { uc.progress = p }
}

// WithSnapshotStore saves a page snapshot whenever the flow fails.
func WithSnapshotStore(s output.SnapshotStore) Option {
	return func(uc *UseCase) { uc.snapshots = s }
}

func New(session output.SessionPort, cfg Config, logger output.LoggerPort, opts ...Option) (*UseCase, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}

	uc := &UseCase{
		session: session,
		cfg:     cfg,
		logger:  logger.WithField("component", "login"),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc, nil
}

// Execute runs the login steps in order. The first failing step aborts the
// flow; the session is left open for the caller to close.
func (uc *UseCase) Execute(ctx context.Context, creds entity.Credentials) (*input.LoginResult, error) {
	start := time.Now()
	state := entity.LoginNotStarted

	if err := creds.Validate(); err != nil {
		uc.logger.Error("Invalid credentials", "error", err)
		return nil, &StepError{State: state, Err: err}
	}

	timeout := uc.cfg.StepTimeout
	steps := []struct {
		next entity.LoginState
		run  func() error
	}{
		{entity.LoginNavigated, func() error {
			return uc.session.Navigate(ctx, uc.cfg.PortalURL)
		}},
		{entity.LoginIdentifierEntered, func() error {
			return uc.fill(ctx, entity.ElementPresent(uc.cfg.LoginSelector, timeout), creds.Login)
		}},
		{entity.LoginSecretEntered, func() error {
			return uc.fill(ctx, entity.ElementPresent(uc.cfg.PasswordSelector, timeout), creds.Password)
		}},
		{entity.LoginSubmitted, func() error {
			return uc.click(ctx, entity.ElementClickable(uc.cfg.SubmitSelector, timeout))
		}},
		{entity.LoggedIn, func() error {
			_, err := uc.session.Await(ctx, entity.URLContains(uc.cfg.SuccessURLSubstring, timeout))
			return err
		}},
	}

	uc.logger.Info("Login started", "portal", uc.cfg.PortalURL, "login", creds.Login)

	for _, step := range steps {
		if err := step.run(); err != nil {
			return nil, uc.fail(ctx, state, err)
		}
		state = step.next
		uc.logger.Info("Login step completed", "state", state.String())
		if uc.progress != nil {
			uc.progress.ShowState(ctx, state)
		}
	}

	url, err := uc.session.CurrentURL(ctx)
	if err != nil {
		uc.logger.Warn("Could not read URL after login", "error", err)
	}

	result := &input.LoginResult{
		FinalState: state,
		URL:        url,
		Duration:   time.Since(start),
	}
	uc.logger.Info("Login successful, navigated to dashboard", "url", url, "duration", result.Duration)
	return result, nil
}

func (uc *UseCase) fill(ctx context.Context, cond entity.WaitCondition, text string) error {
	el, err := uc.session.Await(ctx, cond)
	if err != nil {
		return err
	}
	if el == nil {
		return fmt.Errorf("%w: %s", entity.ErrElementNotFound, cond.Target)
	}
	return el.Input(ctx, text)
}

func (uc *UseCase) click(ctx context.Context, cond entity.WaitCondition) error {
	el, err := uc.session.Await(ctx, cond)
	if err != nil {
		return err
	}
	if el == nil {
		return fmt.Errorf("%w: %s", entity.ErrElementNotFound, cond.Target)
	}
	return el.Click(ctx)
}

func (uc *UseCase) fail(ctx context.Context, state entity.LoginState, err error) error {
	uc.logger.Error("Error logging in", "state", state.String(), "error", err)
	if uc.progress != nil {
		uc.progress.ShowFailure(ctx, state, err)
	}
	uc.captureSnapshot(ctx, state)
	return &StepError{State: state, Err: err}
}

// captureSnapshot is best effort: a failure here never replaces the step error.
func (uc *UseCase) captureSnapshot(ctx context.Context, state entity.LoginState) {
	if !uc.session.IsReady() {
		return
	}

	snap, err := uc.session.Snapshot(ctx)
	if err != nil {
		uc.logger.Warn("Failure snapshot unavailable", "error", err)
		return
	}
	uc.logger.Info("Page at failure", "state", state.String(), "url", snap.URL, "title", snap.Title, "text", snap.Text)

	if uc.snapshots == nil {
		return
	}
	path, err := uc.snapshots.Save("login_"+state.String(), snap)
	if err != nil {
		uc.logger.Warn("Failure snapshot not saved", "error", err)
		return
	}
	uc.logger.Info("Failure snapshot saved", "path", path)
}
