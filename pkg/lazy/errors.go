package lazy

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatible is matched by every error reporting a callable that
	// cannot accept the spread result plus its bound arguments.
	ErrIncompatible = errors.New("incompatible stage")

	// ErrEmptyChain is returned when a zero Chain is executed or extended.
	ErrEmptyChain = errors.New("empty chain")
)

// IncompatibleError describes why a stage could not be attached.
type IncompatibleError struct {
	Depth  int
	Func   string
	Reason string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("%s: stage %d (%s): %s", ErrIncompatible, e.Depth, e.Func, e.Reason)
}

func (e *IncompatibleError) Is(target error) bool {
	return target == ErrIncompatible
}

// Incompatible builds an *IncompatibleError for the stage at depth.
func Incompatible(depth int, fn, format string, args ...any) error {
	return &IncompatibleError{
		Depth:  depth,
		Func:   fn,
		Reason: fmt.Sprintf(format, args...),
	}
}
