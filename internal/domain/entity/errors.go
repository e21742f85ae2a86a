package entity

import "errors"

var (
	ErrInitialization    = errors.New("browser initialization failed")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNavigation        = errors.New("navigation failed")
	ErrScript            = errors.New("script execution failed")
	ErrElementNotFound   = errors.New("element not found")
	ErrNavigationTimeout = errors.New("navigation timeout")
	ErrInteraction       = errors.New("element interaction failed")
	ErrSessionClosed     = errors.New("session is closed")
)
