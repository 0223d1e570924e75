// Package portreserve acquires an OS-assigned, currently-unused loopback
// port for UDP or TCP and returns a Reservation that keeps the underlying
// socket or listener open, so the port cannot be raced away by another
// process before the caller uses it. It is aimed at test harnesses and
// local tooling that need ephemeral, collision-free port numbers.
//
// # Basic Usage
//
//	import "github.com/giantswarm/portreserve"
//
//	res, err := portreserve.ReserveTCPPort()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	port := res.Take() // closes the held listener and returns the number
//
//	srv := &http.Server{Addr: fmt.Sprintf("127.0.0.1:%d", port)}
//	// Start the server on the reserved port...
//
// While a Reservation is held (before Take or Close), any independent bind
// to the same port on this host fails with "address in use". Take releases
// the bind and hands back the numeric port; the caller is expected to
// rebind it immediately, accepting the small residual race window inherent
// in every reserve-a-free-port scheme.
//
// # Choosing Candidates
//
// Reserve is the generic form: it takes one of the two sealed transport
// binders (UDP or TCP) and a finite Source of candidate ports, trying each
// in order until one binds:
//
//	res, err := portreserve.Reserve(portreserve.TCP,
//	    portreserve.Ports(8080, 8081, 8082))
//	if errors.Is(err, portreserve.ErrPortsExhausted) {
//	    // every candidate was already bound
//	}
//
// Sources are finite by contract, so Reserve never retries indefinitely:
// once every candidate has been tried, it fails with an *ExhaustedError
// carrying the exact attempt count. Callers that specifically want ports
// from the IANA dynamic range can scan it with a bounded random probe:
//
//	res, err := portreserve.Reserve(portreserve.TCP, portreserve.EphemeralRange(5))
//
// # Parallel Testing
//
// Reservations are independent and need no coordination: concurrent tests
// simply reserve their own ports, and the OS serializes actual bind races.
//
//	for i := 0; i < 10; i++ {
//	    t.Run(fmt.Sprintf("test-%d", i), func(t *testing.T) {
//	        t.Parallel()
//	        res, err := portreserve.ReserveTCPPort()
//	        if err != nil {
//	            t.Fatal(err)
//	        }
//	        defer res.Close() // Returns nil on success; safe to ignore in defer
//	        // Point the component under test at res.Addr()...
//	    })
//	}
package portreserve
