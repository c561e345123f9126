package cli

import (
	"errors"
	"fmt"

	"github.com/flowlabs/flowmap/pkg/domain/progress"
	"github.com/flowlabs/flowmap/pkg/domain/roadmap"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, roadmap.ErrNoRoadmap):
		return NewCLIError("no roadmap found", "Run 'flowmap generate' to create one", err)
	case errors.Is(err, progress.ErrNoState):
		return NewCLIError("no progress state found", "Run 'flowmap generate' to create a roadmap first", err)
	}

	return err
}
