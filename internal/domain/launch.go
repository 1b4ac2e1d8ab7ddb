package domain

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects how a job list runs inside a session.
type Mode string

const (
	// ModeSequential runs all jobs one after another in a single window
	// via a command chain.
	ModeSequential Mode = "sequential"

	// ModeConcurrent runs all jobs simultaneously, one per window, with
	// no ordering.
	ModeConcurrent Mode = "concurrent"
)

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSequential:
		return ModeSequential, nil
	case ModeConcurrent:
		return ModeConcurrent, nil
	default:
		return "", fmt.Errorf("invalid mode %q (expected sequential or concurrent)", s)
	}
}

// Launch records one launcher invocation: what was launched, where and when.
// It never carries job outcomes; exit statuses are not consumed by drover.
type Launch struct {
	ID          string
	SessionName string
	Mode        Mode
	Jobs        []Job
	LaunchedAt  time.Time
}
