package output

import (
	"context"

	"portal-automation/internal/domain/entity"
)

type UserInteractionPort interface {
	AskQuestion(ctx context.Context, question string) (string, error)
	AskSecret(ctx context.Context, question string) (string, error)
}

type ProgressPort interface {
	ShowState(ctx context.Context, state entity.LoginState)
	ShowFailure(ctx context.Context, state entity.LoginState, err error)
}
