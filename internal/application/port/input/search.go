package input

import (
	"context"
	"time"
)

type SearchResult struct {
	Query string
	URL   string
}

type SearchExecutor interface {
	Execute(ctx context.Context, query string, wait time.Duration) (*SearchResult, error)
}
