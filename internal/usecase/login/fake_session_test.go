package login

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"portal-automation/internal/application/port/output"
	"portal-automation/internal/domain/entity"
)

// fakeSession is an in-memory page. Selectors listed in present can be
// awaited; those also listed in clickable can be clicked. Clicking the submit
// selector moves the URL to afterSubmitURL.
type fakeSession struct {
	mu sync.Mutex

	present        map[string]bool
	clickable      map[string]bool
	submitSelector string
	afterSubmitURL string
	navigateErr    error
	snapshotErr    error

	url        string
	closed     bool
	closeCalls int
	navigated  []string
	awaited    []entity.WaitCondition
	inputs     map[string]string
	clicks     []string
	snapshots  int
}

func newFakePortal() *fakeSession {
	return &fakeSession{
		present: map[string]bool{
			DefaultLoginSelector:    true,
			DefaultPasswordSelector: true,
			DefaultSubmitSelector:   true,
		},
		clickable:      map[string]bool{DefaultSubmitSelector: true},
		submitSelector: DefaultSubmitSelector,
		afterSubmitURL: "https://platonus.iitu.edu.kz/dashboard",
		url:            "about:blank",
		inputs:         map[string]string{},
	}
}

var _ output.SessionPort = (*fakeSession)(nil)

func (f *fakeSession) Navigate(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return entity.ErrSessionClosed
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%w: %q", entity.ErrInvalidInput, url)
	}
	if f.navigateErr != nil {
		return f.navigateErr
	}
	f.navigated = append(f.navigated, url)
	f.url = url
	return nil
}

func (f *fakeSession) RunScript(ctx context.Context, script string, args ...any) (any, error) {
	return nil, nil
}

func (f *fakeSession) SetImplicitWait(d time.Duration) error {
	return nil
}

func (f *fakeSession) Await(ctx context.Context, cond entity.WaitCondition) (output.ElementPort, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, entity.ErrSessionClosed
	}
	f.awaited = append(f.awaited, cond)

	switch cond.Kind {
	case entity.WaitURLContains:
		if strings.Contains(f.url, cond.Target) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s", entity.ErrNavigationTimeout, cond.Target)
	case entity.WaitElementClickable:
		if f.present[cond.Target] && f.clickable[cond.Target] {
			return &fakeElement{session: f, selector: cond.Target}, nil
		}
	default:
		if f.present[cond.Target] {
			return &fakeElement{session: f, selector: cond.Target}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", entity.ErrElementNotFound, cond.Target)
}

func (f *fakeSession) CurrentURL(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.url, nil
}

func (f *fakeSession) Snapshot(ctx context.Context) (*entity.PageSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshots++
	if f.snapshotErr != nil {
		return nil, f.snapshotErr
	}
	return &entity.PageSnapshot{URL: f.url, Title: "Platonus", Text: "Sign in", TakenAt: time.Now()}, nil
}

func (f *fakeSession) IsReady() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.closed
}

func (f *fakeSession) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeCalls++
	f.closed = true
	return nil
}

type fakeElement struct {
	session  *fakeSession
	selector string
}

func (e *fakeElement) Input(ctx context.Context, text string) error {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()
	e.session.inputs[e.selector] = text
	return nil
}

func (e *fakeElement) Click(ctx context.Context) error {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()
	e.session.clicks = append(e.session.clicks, e.selector)
	if e.selector == e.session.submitSelector && e.session.afterSubmitURL != "" {
		e.session.url = e.session.afterSubmitURL
	}
	return nil
}

type recordingProgress struct {
	states   []entity.LoginState
	failedAt []entity.LoginState
}

func (p *recordingProgress) ShowState(ctx context.Context, state entity.LoginState) {
	p.states = append(p.states, state)
}

func (p *recordingProgress) ShowFailure(ctx context.Context, state entity.LoginState, err error) {
	p.failedAt = append(p.failedAt, state)
}

type memorySnapshots struct {
	saved map[string]*entity.PageSnapshot
}

func (m *memorySnapshots) Save(name string, snap *entity.PageSnapshot) (string, error) {
	if m.saved == nil {
		m.saved = map[string]*entity.PageSnapshot{}
	}
	m.saved[name] = snap
	return "mem://" + name, nil
}
