package input

import (
	"context"
	"time"

	"portal-automation/internal/domain/entity"
)

type LoginResult struct {
	FinalState entity.LoginState
	URL        string
	Duration   time.Duration
}

type LoginExecutor interface {
	Execute(ctx context.Context, creds entity.Credentials) (*LoginResult, error)
}
