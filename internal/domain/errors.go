package domain

import "errors"

var (
	ErrNoJobs                 = errors.New("no jobs to launch")
	ErrSessionExists          = errors.New("session already exists")
	ErrSessionNotFound        = errors.New("session not found")
	ErrMultiplexerUnavailable = errors.New("tmux is not available")
)
