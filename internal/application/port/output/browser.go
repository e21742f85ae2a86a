package output

import (
	"context"
	"time"

	"portal-automation/internal/domain/entity"
)

type SessionFactory interface {
	Open(ctx context.Context, opts entity.BrowserOptions) (SessionPort, error)
}

type SessionPort interface {
	Navigate(ctx context.Context, url string) error
	RunScript(ctx context.Context, script string, args ...any) (any, error)
	SetImplicitWait(d time.Duration) error
	Await(ctx context.Context, cond entity.WaitCondition) (ElementPort, error)

	CurrentURL(ctx context.Context) (string, error)
	Snapshot(ctx context.Context) (*entity.PageSnapshot, error)

	IsReady() bool
	Close() error
}

type ElementPort interface {
	Input(ctx context.Context, text string) error
	Click(ctx context.Context) error
}
