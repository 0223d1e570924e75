package portreserve

import "github.com/giantswarm/portreserve/internal/core"

// Source produces a finite sequence of candidate port numbers for Reserve
// to try, in order. Len must report the remaining element count up front:
// Reserve reads it once and uses it as the authoritative bound on bind
// attempts, so acquisition always terminates after at most Len() tries.
//
// The built-in constructors below cover the common cases; any type with
// Next/Len works for callers that need a custom candidate policy.
type Source = core.Source

// Single returns a Source with exactly one candidate port.
// Single(WildcardPort) asks the OS to assign any free ephemeral port.
func Single(port uint16) Source {
	return core.Single(port)
}

// Ports returns a Source that yields the given ports in order. The slice
// is copied, so the caller may reuse it freely.
func Ports(ports ...uint16) Source {
	return core.Ports(ports...)
}

// Range returns a Source yielding every port from first through last,
// inclusive, in ascending order.
//
// Panics if first > last. A reversed range is a programmer error rather
// than a runtime condition, so it fails fast instead of surfacing later as
// a confusing zero-attempt exhaustion.
func Range(first, last uint16) Source {
	return core.Range(first, last)
}

// RandomRange returns a Source of count candidates drawn uniformly from
// first through last, inclusive. Draws are independent, so duplicates are
// possible; count is the declared length, so it is exactly how many bind
// attempts Reserve will make before reporting exhaustion.
//
// Panics if first > last or count is negative.
func RandomRange(first, last uint16, count int) Source {
	return core.RandomRange(first, last, count)
}

// EphemeralRange returns a Source of count random candidates from the IANA
// dynamic port range (EphemeralRangeFirst through EphemeralRangeLast).
// Use it with Reserve when a port must come from the ephemeral range
// specifically; ReserveUDPPort and ReserveTCPPort are the simpler choice
// when any free port will do.
//
// Panics if count is negative.
func EphemeralRange(count int) Source {
	return core.RandomRange(EphemeralRangeFirst, EphemeralRangeLast, count)
}
