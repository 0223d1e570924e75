package core

import (
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
)

// loopback is the only address this package binds to. Reserving a port on a
// routable interface is out of scope; the OS bind call on 127.0.0.1 is the
// sole source of truth for "is this port free".
var loopback = net.IPv4(127, 0, 0, 1)

// Binder attempts to bind a socket of one transport kind to a port on the
// loopback interface and reports the outcome. The capability set is sealed:
// the only implementations are UDP and TCP, because "reserve" means holding
// an OS-level bind and only those two transport kinds have one. The
// unexported method prevents implementations outside this package.
//
// Bind's three-way outcome:
//   - success: res is the live, open resource holding the bind, and
//     assigned is the port the OS actually bound (equal to the requested
//     port unless the request was the wildcard 0, in which case the OS
//     picks a free ephemeral port); ok is true.
//   - address in use: ok is false and err is nil. This is an expected,
//     recoverable condition inside Reserve's retry loop, not an error.
//   - any other bind failure (permission denied, resource limits, invalid
//     address): err is non-nil. Retrying cannot fix these, so Reserve
//     propagates them immediately.
type Binder[R io.Closer] interface {
	Bind(port uint16) (res R, assigned uint16, ok bool, err error)

	// sealed restricts implementations to this package.
	sealed()
}

// UDP binds 127.0.0.1 UDP sockets. The reserved resource is the open
// *net.UDPConn holding the port.
var UDP Binder[*net.UDPConn] = udpBinder{}

// TCP binds 127.0.0.1 TCP listeners. The reserved resource is the open
// *net.TCPListener holding the port.
var TCP Binder[*net.TCPListener] = tcpBinder{}

type udpBinder struct{}

func (udpBinder) Bind(port uint16) (*net.UDPConn, uint16, bool, error) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: loopback, Port: int(port)})
	if err != nil {
		if isAddrInUse(err) {
			return nil, 0, false, nil
		}
		return nil, 0, false, fmt.Errorf("listen on udp address: %w", err)
	}
	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		_ = conn.Close()
		return nil, 0, false, fmt.Errorf("unexpected address type: %T", conn.LocalAddr())
	}
	return conn, uint16(addr.Port), true, nil
}

func (udpBinder) sealed() {}

type tcpBinder struct{}

func (tcpBinder) Bind(port uint16) (*net.TCPListener, uint16, bool, error) {
	l, err := net.ListenTCP("tcp", &net.TCPAddr{IP: loopback, Port: int(port)})
	if err != nil {
		if isAddrInUse(err) {
			return nil, 0, false, nil
		}
		return nil, 0, false, fmt.Errorf("listen on tcp address: %w", err)
	}
	addr, ok := l.Addr().(*net.TCPAddr)
	if !ok {
		_ = l.Close()
		return nil, 0, false, fmt.Errorf("unexpected address type: %T", l.Addr())
	}
	return l, uint16(addr.Port), true, nil
}

func (tcpBinder) sealed() {}

// isAddrInUse reports whether err is the OS "address already in use" bind
// failure.
func isAddrInUse(err error) bool {
	return errors.Is(err, syscall.EADDRINUSE)
}
