package core

import (
	"fmt"

	"github.com/giantswarm/portreserve/internal/sentinel"
)

// ErrPortsExhausted is matched (via errors.Is) by the ExhaustedError that
// Reserve returns when every candidate port was already in use.
const ErrPortsExhausted = sentinel.Error("all candidate ports already in use")

// Compile-time checks: ExhaustedError is an error and matches the sentinel.
var _ error = (*ExhaustedError)(nil)

// ExhaustedError reports that Reserve tried every candidate its Source
// offered and found each one already bound. It is recoverable: the caller
// may retry with a different or larger candidate source.
type ExhaustedError struct {
	// Attempts is the number of failed bind attempts made before giving up.
	// It always equals the length the candidate source declared.
	Attempts int
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("port candidates exhausted after %d attempts", e.Attempts)
}

// Is reports whether target is ErrPortsExhausted, letting callers use
// errors.Is without caring about the attempt count.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrPortsExhausted
}
