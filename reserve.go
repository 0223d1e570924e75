package portreserve

import (
	"fmt"
	"io"
	"net"

	"github.com/giantswarm/portreserve/internal/core"
)

// Reserve acquires one free loopback port of the given transport kind by
// trying the candidates from src in order. The first candidate that binds
// wins; candidates already in use are skipped. Each bind attempt is a
// blocking OS call, and the loop is bounded by src.Len(), never by
// wall-clock time.
//
// If every candidate in src is already bound, Reserve returns an
// *ExhaustedError (matching ErrPortsExhausted via errors.Is) that reports
// exactly src.Len() attempts. Any bind failure other than "address in use"
// aborts immediately and propagates to the caller; it is never counted as
// an attempt or converted into an exhaustion error.
//
// Reserve is safe to call concurrently: reservations share no state, and
// the OS bind call itself serializes races between callers.
func Reserve[R io.Closer](b Binder[R], src Source) (*Reservation[R], error) {
	return core.Reserve(b, src)
}

// ReserveUDPPort reserves one OS-assigned ephemeral UDP port on the
// loopback interface. It requests the wildcard port, so it only fails on
// fatal bind errors (e.g. file descriptor exhaustion), never by running
// out of candidates.
func ReserveUDPPort() (*Reservation[*net.UDPConn], error) {
	return core.Reserve(core.UDP, core.Single(WildcardPort))
}

// ReserveTCPPort reserves one OS-assigned ephemeral TCP port on the
// loopback interface. It requests the wildcard port, so it only fails on
// fatal bind errors, never by running out of candidates.
func ReserveTCPPort() (*Reservation[*net.TCPListener], error) {
	return core.Reserve(core.TCP, core.Single(WildcardPort))
}

// MustReserveUDPPort is ReserveUDPPort for test setup paths where a bind
// failure is unrecoverable anyway. Panics on error.
func MustReserveUDPPort() *Reservation[*net.UDPConn] {
	res, err := ReserveUDPPort()
	if err != nil {
		panic(fmt.Sprintf("portreserve: %v", err))
	}
	return res
}

// MustReserveTCPPort is ReserveTCPPort for test setup paths where a bind
// failure is unrecoverable anyway. Panics on error.
func MustReserveTCPPort() *Reservation[*net.TCPListener] {
	res, err := ReserveTCPPort()
	if err != nil {
		panic(fmt.Sprintf("portreserve: %v", err))
	}
	return res
}
