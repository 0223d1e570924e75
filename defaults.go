package portreserve

// Well-known port numbers used by the built-in sources and entry points.
// These constants are exported so callers can build custom candidate
// sources relative to them (e.g., Range(EphemeralRangeFirst, 50000)).
const (
	// WildcardPort is the bind request that asks the OS to assign any
	// currently free ephemeral port. ReserveUDPPort and ReserveTCPPort
	// request this port, which by OS convention always binds successfully
	// to a free port, so those entry points essentially cannot exhaust.
	WildcardPort uint16 = 0

	// EphemeralRangeFirst is the first port of the IANA dynamic/private
	// range. EphemeralRange draws its candidates from here upward.
	EphemeralRangeFirst uint16 = 49152

	// EphemeralRangeLast is the last port of the IANA dynamic/private
	// range, and the top of the 16-bit port space.
	EphemeralRangeLast uint16 = 65535
)
