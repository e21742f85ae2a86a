package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type WaitKind string

const (
	WaitElementPresent   WaitKind = "element_present"
	WaitElementClickable WaitKind = "element_clickable"
	WaitURLContains      WaitKind = "url_contains"
)

// WaitCondition is a predicate over the current page plus the longest time
// it may take to hold. A zero Timeout defers to the session's implicit wait.
type WaitCondition struct {
	Kind    WaitKind
	Target  string
	Timeout time.Duration
}

func ElementPresent(selector string, timeout time.Duration) WaitCondition {
	return WaitCondition{Kind: WaitElementPresent, Target: selector, Timeout: timeout}
}

func ElementClickable(selector string, timeout time.Duration) WaitCondition {
	return WaitCondition{Kind: WaitElementClickable, Target: selector, Timeout: timeout}
}

func URLContains(substr string, timeout time.Duration) WaitCondition {
	return WaitCondition{Kind: WaitURLContains, Target: substr, Timeout: timeout}
}

func (c WaitCondition) Validate() error {
	switch c.Kind {
	case WaitElementPresent, WaitElementClickable, WaitURLContains:
	default:
		return fmt.Errorf("%w: unknown wait kind %q", ErrInvalidInput, c.Kind)
	}
	if strings.TrimSpace(c.Target) == "" {
		return fmt.Errorf("%w: empty wait target", ErrInvalidInput)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative wait timeout %s", ErrInvalidInput, c.Timeout)
	}
	return nil
}

func (c WaitCondition) String() string {
	return fmt.Sprintf("%s(%s, %s)", c.Kind, c.Target, c.Timeout)
}

// WaitSeconds converts a number of seconds into a wait duration.
func WaitSeconds(seconds float64) (time.Duration, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("%w: wait time must be a finite number", ErrInvalidInput)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("%w: wait time must be non-negative, got %v", ErrInvalidInput, seconds)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// ParseWaitSeconds accepts a decimal number of seconds ("5", "0.5").
func ParseWaitSeconds(s string) (time.Duration, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: wait time %q is not a number", ErrInvalidInput, s)
	}
	return WaitSeconds(seconds)
}
