package portreserve

import (
	"io"

	"github.com/giantswarm/portreserve/internal/core"
)

// Reservation holds an acquired loopback port open. It owns the live OS
// resource (open UDP socket or TCP listener) whose bind keeps the port
// unavailable to any other bind on this host. The port stays protected
// until the reservation is consumed:
//
//   - Peek returns the port number without affecting the reservation.
//   - Take closes the held socket exactly once and returns the port number,
//     the advisory release point: rebind the port immediately afterwards.
//   - Close releases the reservation without taking the number (io.Closer).
//
// Read-only interop views: Int returns the port as an int (always equal to
// int(Peek())) for net APIs that carry ports as int, and Addr/String return
// the "127.0.0.1:<port>" endpoint form.
//
// Reservation is a type alias (not a named type) so the [core.Reservation]
// methods are part of the public API without redeclaration.
type Reservation[R io.Closer] = core.Reservation[R]
