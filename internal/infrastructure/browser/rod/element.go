package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"portal-automation/internal/application/port/output"
	"portal-automation/internal/domain/entity"
)

var _ output.ElementPort = (*Element)(nil)

// Element is an awaited element. Interactions are bounded by the timeout of
// the wait that found it, so a covered or read-only element fails in time.
type Element struct {
	el       *rod.Element
	selector string
	timeout  time.Duration
	logger   output.LoggerPort
}

func (e *Element) bound(ctx context.Context) (*rod.Element, func()) {
	el := e.el.Context(ctx)
	if e.timeout <= 0 {
		return el, func() {}
	}
	el = el.Timeout(e.timeout)
	return el, func() { el.CancelTimeout() }
}

// Input replaces the field's content with text.
func (e *Element) Input(ctx context.Context, text string) error {
	el, cancel := e.bound(ctx)
	defer cancel()

	if err := el.SelectAllText(); err == nil {
		_ = el.Input("")
	}
	if err := el.Input(text); err != nil {
		e.logger.Error("Input failed", "selector", e.selector, "error", err)
		return fmt.Errorf("%w: input %s: %v", entity.ErrInteraction, e.selector, err)
	}
	return nil
}

func (e *Element) Click(ctx context.Context) error {
	el, cancel := e.bound(ctx)
	defer cancel()

	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		e.logger.Error("Click failed", "selector", e.selector, "error", err)
		return fmt.Errorf("%w: click %s: %v", entity.ErrInteraction, e.selector, err)
	}
	return nil
}
