package portreserve

import (
	"io"
	"net"

	"github.com/giantswarm/portreserve/internal/core"
)

// Binder attempts to bind a socket of one transport kind to a port on the
// loopback interface (127.0.0.1) and reports success, "address in use", or
// a fatal bind failure. See [core.Binder] for the full Bind contract.
//
// The capability set is sealed to exactly two kinds, UDP and TCP: reserving
// a port means holding an OS-level bind open, and only those two transport
// kinds have one. The interface carries an unexported method, so no third
// implementation can exist outside this module.
//
// Binder is a type alias (not a named type) so that the sealed
// [core.Binder] interface itself is the public abstraction; UDP and TCP are
// its only values.
type Binder[R io.Closer] = core.Binder[R]

// UDP reserves ports by binding loopback UDP sockets. A successful
// reservation owns the open *net.UDPConn holding the port.
var UDP Binder[*net.UDPConn] = core.UDP

// TCP reserves ports by binding loopback TCP listeners. A successful
// reservation owns the open *net.TCPListener holding the port.
var TCP Binder[*net.TCPListener] = core.TCP
