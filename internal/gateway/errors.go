package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("generation backend not configured")

	// ErrGeneration matches every *GenerationError.
	ErrGeneration = errors.New("generation failed")
)

// ConfigurationError reports that the backend is unusable, typically
// because credentials are missing. It is not retryable without operator
// intervention.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return ErrConfiguration.Error()
	}
	return fmt.Sprintf("%s: %v", ErrConfiguration, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// GenerationError reports a failed backend call for one section. The caller
// may retry the same operation.
type GenerationError struct {
	Section string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Section, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) Is(target error) bool { return target == ErrGeneration }
