package portreserve

import (
	"log/slog"

	"github.com/giantswarm/portreserve/internal/core"
)

// SetLogger replaces the package-level logger used by portreserve.
// This allows applications to integrate portreserve logging with their own
// logging infrastructure. The provided logger should already have any
// desired attributes; portreserve will not add additional attributes.
//
// If l is nil, the logger resets to the default: slog.Default() with a
// "component" attribute, re-derived on the next use and then cached. Call
// SetLogger(nil) after slog.SetDefault() to pick up changes.
//
// SetLogger is safe to call concurrently with other portreserve operations;
// the logger is stored as an atomic pointer. The library logs at Debug
// when a candidate port turns out to be in use and at Warn when closing a
// reserved socket fails, nothing else.
//
// Example:
//
//	portreserve.SetLogger(myLogger.With("component", "portreserve"))
func SetLogger(l *slog.Logger) {
	core.SetLogger(l)
}
