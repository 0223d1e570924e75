package core

import "io"

// Reserve drives the bounded acquisition loop: it pulls up to src.Len()
// candidates from src and asks b to bind each one on the loopback
// interface. The first successful bind wins and is returned as a live
// Reservation; candidates that are already in use are skipped and counted.
//
// The length src declares when Reserve starts is the authoritative bound:
// the loop never makes more bind attempts than that, regardless of how many
// elements the source could produce. If every candidate is in use, Reserve
// returns an *ExhaustedError reporting exactly that many attempts.
//
// Any bind failure other than "address in use" (permission denied, resource
// limits) aborts the loop immediately and propagates to the caller. It is
// not counted as an attempt and never converted into an exhaustion error,
// since retrying cannot fix it.
func Reserve[R io.Closer](b Binder[R], src Source) (*Reservation[R], error) {
	n := src.Len()
	for attempt := range n {
		port := src.Next()
		res, assigned, ok, err := b.Bind(port)
		if err != nil {
			// Fatal for the whole acquisition; the binder already attached
			// bind context, so propagate as-is.
			return nil, err
		}
		if !ok {
			Logger().Debug("port already in use, trying next candidate",
				"port", port, "attempt", attempt+1, "candidates", n)
			continue
		}
		return newReservation(assigned, res), nil
	}
	return nil, &ExhaustedError{Attempts: n}
}
