package login

import (
	"fmt"

	"portal-automation/internal/domain/entity"
)

// StepError reports the last state the flow reached before it failed. It
// unwraps to the underlying error kind, so errors.Is(err, entity.ErrElementNotFound)
// keeps working.
type StepError struct {
	State entity.LoginState
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("login failed after %s: %v", e.State, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
