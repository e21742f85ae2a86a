package login

import (
	"fmt"
	"time"

	"portal-automation/internal/domain/entity"
)

const (
	DefaultPortalURL        = "https://platonus.iitu.edu.kz/"
	DefaultLoginSelector    = "#login_input"
	DefaultPasswordSelector = "#pass_input"
	DefaultSubmitSelector   = "#Submit1"
	DefaultSuccessURL       = "/dashboard"
	DefaultStepTimeout      = 10 * time.Second
)

// Config describes where the portal lives and how its login form is found.
// Every step shares StepTimeout; there is no per-step override.
type Config struct {
	PortalURL           string
	LoginSelector       string
	PasswordSelector    string
	SubmitSelector      string
	SuccessURLSubstring string
	StepTimeout         time.Duration
}

func DefaultConfig() Config {
	return Config{
		PortalURL:           DefaultPortalURL,
		LoginSelector:       DefaultLoginSelector,
		PasswordSelector:    DefaultPasswordSelector,
		SubmitSelector:      DefaultSubmitSelector,
		SuccessURLSubstring: DefaultSuccessURL,
		StepTimeout:         DefaultStepTimeout,
	}
}

// normalize fills blank fields from DefaultConfig and rejects a negative timeout.
func (c Config) normalize() (Config, error) {
	def := DefaultConfig()
	if c.PortalURL == "" {
		c.PortalURL = def.PortalURL
	}
	if c.LoginSelector == "" {
		c.LoginSelector = def.LoginSelector
	}
	if c.PasswordSelector == "" {
		c.PasswordSelector = def.PasswordSelector
	}
	if c.SubmitSelector == "" {
		c.SubmitSelector = def.SubmitSelector
	}
	if c.SuccessURLSubstring == "" {
		c.SuccessURLSubstring = def.SuccessURLSubstring
	}
	if c.StepTimeout < 0 {
		return c, fmt.Errorf("%w: step timeout must be non-negative, got %s", entity.ErrInvalidInput, c.StepTimeout)
	}
	if c.StepTimeout == 0 {
		c.StepTimeout = def.StepTimeout
	}
	return c, nil
}
