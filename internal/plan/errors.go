package plan

import (
	"errors"
	"fmt"
)

var (
	// ErrLocked matches every *LockedSectionError.
	ErrLocked = errors.New("section locked until the overview is generated")

	// ErrUnknownSection is returned for sections that cannot be generated
	// or cleared through the dependent-section operations.
	ErrUnknownSection = errors.New("unknown section")
)

// LockedSectionError reports an attempt to generate a dependent section
// before the overview exists.
type LockedSectionError struct {
	Section Section
}

func (e *LockedSectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Section, ErrLocked)
}

func (e *LockedSectionError) Is(target error) bool { return target == ErrLocked }
