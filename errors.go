package portreserve

import "github.com/giantswarm/portreserve/internal/core"

// ErrPortsExhausted is matched via errors.Is by the error Reserve returns
// when every candidate port in the supplied source was already bound.
// It is an immutable constant safe for use in wrapped error chain comparison.
//
// Exhaustion is recoverable: the caller may retry with a different or
// larger candidate source. Any other failure from Reserve is a fatal bind
// error (permission denied, resource limits) that retrying cannot fix.
const ErrPortsExhausted = core.ErrPortsExhausted

// ExhaustedError is the concrete error type behind ErrPortsExhausted. Its
// Attempts field carries the exact number of failed bind attempts, for
// diagnostics:
//
//	var exhausted *portreserve.ExhaustedError
//	if errors.As(err, &exhausted) {
//	    log.Printf("tried %d ports", exhausted.Attempts)
//	}
//
// ExhaustedError is a type alias (not a named type) so that the underlying
// [core.ExhaustedError] methods are part of the public API.
type ExhaustedError = core.ExhaustedError
