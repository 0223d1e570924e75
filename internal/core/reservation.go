package core

import (
	"io"
	"net"
	"strconv"
	"sync/atomic"
)

// Reservation holds an acquired port open. It owns the live OS resource
// (UDP socket or TCP listener) whose bind keeps the port unavailable to
// other binds on this host; the port stays protected until the reservation
// is taken or closed.
//
// A Reservation is created only by a successful bind inside Reserve and
// releases its resource exactly once: Take and Close share a single-shot
// guard, so whichever runs first closes the socket and later calls are
// no-ops.
type Reservation[R io.Closer] struct {
	port uint16
	res  R

	// released is set once by Take or Close. The atomic flag makes the
	// exactly-once close guarantee hold even if a caller accidentally
	// races Take and Close from different goroutines.
	released atomic.Bool
}

// newReservation transfers ownership of res into a new Reservation.
func newReservation[R io.Closer](port uint16, res R) *Reservation[R] {
	return &Reservation[R]{port: port, res: res}
}

// Peek returns the assigned port number without affecting the reservation;
// the underlying socket stays open and the port stays protected.
func (r *Reservation[R]) Peek() uint16 {
	return r.port
}

// Take consumes the reservation: it closes the held socket, releasing the
// port, and returns the port number. After Take the port is no longer
// protected against reuse; callers are expected to rebind it immediately,
// accepting the small residual race window inherent in every
// reserve-a-free-port scheme.
//
// Take is idempotent. A close failure is logged rather than returned, since
// the port number is still valid either way; callers that need the close
// error use Close instead.
func (r *Reservation[R]) Take() uint16 {
	if r.released.CompareAndSwap(false, true) {
		if err := r.res.Close(); err != nil {
			Logger().Warn("close reserved socket", "port", r.port, "error", err)
		}
	}
	return r.port
}

// Close releases the reservation without taking the port number, closing
// the underlying socket. It implements io.Closer, so a reservation can be
// released by any cleanup path that handles closers. Subsequent calls
// return nil.
func (r *Reservation[R]) Close() error {
	if !r.released.CompareAndSwap(false, true) {
		return nil
	}
	return r.res.Close()
}

// Int returns the port as an int, for interoperability with net APIs that
// carry ports as int (e.g. net.TCPAddr.Port). It always equals int(Peek())
// and does not affect the reservation.
func (r *Reservation[R]) Int() int {
	return int(r.port)
}

// Addr returns the reserved loopback endpoint in host:port form, suitable
// for net.Listen, net.Dial and friends.
func (r *Reservation[R]) Addr() string {
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(int(r.port)))
}

// String implements fmt.Stringer, returning the same host:port form as Addr.
func (r *Reservation[R]) String() string {
	return r.Addr()
}
