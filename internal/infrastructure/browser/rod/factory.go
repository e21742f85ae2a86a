package rod

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"portal-automation/internal/application/port/output"
	"portal-automation/internal/domain/entity"
)

var _ output.SessionFactory = (*SessionFactory)(nil)

type SessionFactory struct {
	logger output.LoggerPort
}

func NewSessionFactory(logger output.LoggerPort) *SessionFactory {
	return &SessionFactory{logger: logger.WithField("component", "session")}
}

func (f *SessionFactory) Open(ctx context.Context, opts entity.BrowserOptions) (output.SessionPort, error) {
	return f.OpenSession(ctx, opts)
}

// OpenSession launches a browser, connects to it and opens a blank page.
func (f *SessionFactory) OpenSession(ctx context.Context, opts entity.BrowserOptions) (*Session, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	l := newLauncher(ctx, opts)

	controlURL, err := l.Launch()
	if err != nil {
		f.logger.Error("Error initializing browser", "error", err)
		return nil, fmt.Errorf("%w: launch: %v", entity.ErrInitialization, err)
	}

	browser := rod.New().
		ControlURL(controlURL).
		SlowMotion(opts.SlowMotion)
	if err := browser.Connect(); err != nil {
		killLauncher(l, opts)
		f.logger.Error("Error initializing browser", "error", err)
		return nil, fmt.Errorf("%w: connect: %v", entity.ErrInitialization, err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		killLauncher(l, opts)
		f.logger.Error("Error initializing browser", "error", err)
		return nil, fmt.Errorf("%w: open page: %v", entity.ErrInitialization, err)
	}

	f.logger.Info("Browser initialized successfully",
		"headless", opts.Headless,
		"userDataDir", opts.UserDataDir,
		"remoteDebuggingPort", opts.RemoteDebuggingPort,
	)

	return &Session{
		browser:      browser,
		launcher:     l,
		keepProfile:  opts.UserDataDir != "",
		page:         page,
		implicitWait: defaultImplicitWait,
		logger:       f.logger,
	}, nil
}

func newLauncher(ctx context.Context, opts entity.BrowserOptions) *launcher.Launcher {
	l := launcher.New().
		Context(ctx).
		Headless(opts.Headless).
		NoSandbox(opts.NoSandbox).
		Delete("use-mock-keychain")

	if opts.DisableGPU {
		l = l.Set("disable-gpu")
	}
	if opts.NoSandbox {
		l = l.Set("disable-setuid-sandbox")
	}
	if opts.DisableDevShmUsage {
		l = l.Set("disable-dev-shm-usage")
	}
	if opts.UserDataDir != "" {
		l = l.UserDataDir(opts.UserDataDir)
	}
	if opts.RemoteDebuggingPort > 0 {
		l = l.Set("remote-debugging-port", strconv.Itoa(opts.RemoteDebuggingPort))
	}
	if opts.BinPath != "" {
		l = l.Bin(opts.BinPath)
	}
	return l
}

// killLauncher stops the browser process. A temporary profile is removed, a
// persistent one given through UserDataDir is left in place.
func killLauncher(l *launcher.Launcher, opts entity.BrowserOptions) {
	l.Kill()
	if opts.UserDataDir == "" {
		l.Cleanup()
	}
}
