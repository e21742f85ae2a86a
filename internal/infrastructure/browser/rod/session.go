package rod

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"portal-automation/internal/application/port/output"
	"portal-automation/internal/domain/entity"
	"portal-automation/internal/infrastructure/browser/rodwrapper"
)

var _ output.SessionPort = (*Session)(nil)

const defaultImplicitWait = 10 * time.Second

// Session drives one page of one browser process. It is not safe for
// concurrent flows; the mutex only guards the closed flag.
type Session struct {
	browser     *rod.Browser
	launcher    *launcher.Launcher
	keepProfile bool
	page        *rod.Page
	logger      output.LoggerPort

	mu           sync.Mutex
	closed       bool
	implicitWait time.Duration
}

func (s *Session) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

func (s *Session) Navigate(ctx context.Context, rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		s.logger.Error("Error opening URL", "url", rawURL, "error", err)
		return err
	}
	if err := s.ensureOpen(); err != nil {
		return err
	}

	page := s.page.Context(ctx)
	if err := page.Navigate(rawURL); err != nil {
		s.logger.Error("Error opening URL", "url", rawURL, "error", err)
		return fmt.Errorf("%w: %s: %v", entity.ErrNavigation, rawURL, err)
	}
	if err := page.WaitLoad(); err != nil {
		s.logger.Error("Error waiting for page load", "url", rawURL, "error", err)
		return fmt.Errorf("%w: %s: wait load: %v", entity.ErrNavigation, rawURL, err)
	}

	s.logger.Info("Opened URL", "url", rawURL)
	return nil
}

// RunScript executes script as the body of a function in the page, so it can
// read arguments[i] and return a value. The result is decoded from JSON.
func (s *Session) RunScript(ctx context.Context, script string, args ...any) (any, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	js := "function() {\n" + script + "\n}"
	res, err := s.page.Context(ctx).Evaluate(rod.Eval(js, args...))
	if err != nil {
		s.logger.Error("Error executing script", "script", script, "error", err)
		return nil, fmt.Errorf("%w: %v", entity.ErrScript, err)
	}

	s.logger.Info("Executed script", "script", script)
	return res.Value.Val(), nil
}

func (s *Session) SetImplicitWait(d time.Duration) error {
	if d < 0 {
		err := fmt.Errorf("%w: wait time must be non-negative, got %s", entity.ErrInvalidInput, d)
		s.logger.Error("Error during wait", "error", err)
		return err
	}

	s.mu.Lock()
	s.implicitWait = d
	s.mu.Unlock()

	s.logger.Info("Implicit wait set", "wait", d)
	return nil
}

// Await blocks until cond holds or its timeout elapses. A zero timeout after
// the implicit wait is applied checks the page once.
func (s *Session) Await(ctx context.Context, cond entity.WaitCondition) (output.ElementPort, error) {
	if err := cond.Validate(); err != nil {
		s.logger.Error("Invalid wait condition", "condition", cond.String(), "error", err)
		return nil, err
	}
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	timeout := cond.Timeout
	if timeout == 0 {
		s.mu.Lock()
		timeout = s.implicitWait
		s.mu.Unlock()
	}

	var (
		found *rod.Element
		err   error
	)
	if timeout == 0 {
		found, err = s.checkOnce(ctx, cond)
	} else {
		found, err = s.waitFor(ctx, cond, timeout)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = timeoutError(cond, timeout)
		}
		s.logger.Error("Wait failed", "condition", cond.String(), "error", err)
		return nil, err
	}

	s.logger.Debug("Wait satisfied", "condition", cond.String())
	if found == nil {
		return nil, nil
	}
	return &Element{el: found, selector: cond.Target, timeout: timeout, logger: s.logger}, nil
}

// waitFor lets rod retry until cond holds; the page timeout bounds every retry.
func (s *Session) waitFor(ctx context.Context, cond entity.WaitCondition, timeout time.Duration) (*rod.Element, error) {
	p := s.page.Context(ctx).Timeout(timeout)
	defer p.CancelTimeout()

	if cond.Kind == entity.WaitURLContains {
		return nil, p.Wait(rod.Eval(`(s) => location.href.includes(s)`, cond.Target))
	}

	el, err := p.Element(cond.Target)
	if err != nil {
		return nil, err
	}
	if cond.Kind == entity.WaitElementClickable {
		if err := el.WaitVisible(); err != nil {
			return nil, err
		}
		if err := el.WaitEnabled(); err != nil {
			return nil, err
		}
	}
	return el, nil
}

// checkOnce evaluates cond a single time, for a zero wait.
func (s *Session) checkOnce(ctx context.Context, cond entity.WaitCondition) (*rod.Element, error) {
	p := s.page.Context(ctx)

	if cond.Kind == entity.WaitURLContains {
		info, err := p.Info()
		if err != nil {
			return nil, fmt.Errorf("%w: page info: %v", entity.ErrNavigation, err)
		}
		if !strings.Contains(info.URL, cond.Target) {
			return nil, timeoutError(cond, 0)
		}
		return nil, nil
	}

	ok, el, err := p.Has(cond.Target)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, timeoutError(cond, 0)
	}
	if cond.Kind == entity.WaitElementClickable {
		clickable, err := isClickable(el)
		if err != nil {
			return nil, err
		}
		if !clickable {
			return nil, timeoutError(cond, 0)
		}
	}
	return el, nil
}

func (s *Session) CurrentURL(ctx context.Context) (string, error) {
	if err := s.ensureOpen(); err != nil {
		return "", err
	}
	info, err := s.page.Context(ctx).Info()
	if err != nil {
		return "", fmt.Errorf("%w: page info: %v", entity.ErrNavigation, err)
	}
	return info.URL, nil
}

// Snapshot captures the page for diagnostics. Parts that fail are left empty.
func (s *Session) Snapshot(ctx context.Context) (*entity.PageSnapshot, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	page := s.page.Context(ctx)
	snap := &entity.PageSnapshot{TakenAt: time.Now()}

	info, err := page.Info()
	if err != nil {
		return nil, fmt.Errorf("%w: page info: %v", entity.ErrNavigation, err)
	}
	snap.URL = info.URL
	snap.Title = info.Title

	if html, err := page.HTML(); err == nil {
		snap.Text = rodwrapper.VisibleText(html, nil)
	} else {
		s.logger.Warn("Snapshot HTML unavailable", "error", err)
	}

	raw, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(80),
	})
	if err == nil {
		snap.Screenshot, err = rodwrapper.ShrinkScreenshot(raw)
	}
	if err != nil {
		s.logger.Warn("Snapshot screenshot unavailable", "error", err)
	}

	return snap, nil
}

// Close releases the browser. It is safe to call more than once and on a
// session whose page already crashed.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	var closeErr error
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			s.logger.Error("Error quitting browser", "error", err)
			closeErr = fmt.Errorf("close browser: %w", err)
		}
	}
	if s.launcher != nil {
		s.launcher.Kill()
		if !s.keepProfile {
			s.launcher.Cleanup()
		}
	}

	if closeErr == nil {
		s.logger.Info("Browser quit successfully")
	}
	return closeErr
}

func (s *Session) ensureOpen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return entity.ErrSessionClosed
	}
	return nil
}

func validateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("%w: empty URL", entity.ErrInvalidInput)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported URL %q", entity.ErrInvalidInput, rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: URL %q has no host", entity.ErrInvalidInput, rawURL)
	}
	return nil
}

func timeoutError(cond entity.WaitCondition, timeout time.Duration) error {
	if cond.Kind == entity.WaitURLContains {
		return fmt.Errorf("%w: URL does not contain %q after %s", entity.ErrNavigationTimeout, cond.Target, timeout)
	}
	return fmt.Errorf("%w: %s after %s", entity.ErrElementNotFound, cond.Target, timeout)
}

// isClickable mirrors what a user can press: rendered and not disabled.
func isClickable(el *rod.Element) (bool, error) {
	visible, err := el.Visible()
	if err != nil || !visible {
		return false, err
	}
	disabled, err := el.Property("disabled")
	if err != nil {
		return false, err
	}
	return !disabled.Bool(), nil
}
