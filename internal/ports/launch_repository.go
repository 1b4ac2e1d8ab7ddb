package ports

import (
	"context"

	"drover/internal/domain"
)

// LaunchRecorder persists launch records.
type LaunchRecorder interface {
	Record(ctx context.Context, launch domain.Launch) error
}

// LaunchReader reads launch history.
type LaunchReader interface {
	// Recent returns up to limit launches, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Launch, error)
}

// LaunchRepository is the composite interface.
type LaunchRepository interface {
	LaunchRecorder
	LaunchReader
	Close() error
}
