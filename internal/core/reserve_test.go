package core

import (
	"errors"
	"testing"
)

// stubConn stands in for a bound socket and counts Close calls.
type stubConn struct {
	closes int
}

func (c *stubConn) Close() error {
	c.closes++
	return nil
}

// stubOutcome scripts one Bind call of a stubBinder.
type stubOutcome struct {
	assigned uint16
	ok       bool
	err      error
}

// stubBinder implements Binder[*stubConn] with a scripted outcome per call,
// recording every requested port. Declared inside the package because the
// Binder capability set is sealed; production code admits only UDP and TCP.
type stubBinder struct {
	outcomes []stubOutcome
	calls    []uint16
	conns    []*stubConn
}

func (b *stubBinder) Bind(port uint16) (*stubConn, uint16, bool, error) {
	b.calls = append(b.calls, port)
	o := b.outcomes[0]
	b.outcomes = b.outcomes[1:]
	if o.err != nil {
		return nil, 0, false, o.err
	}
	if !o.ok {
		return nil, 0, false, nil
	}
	conn := &stubConn{}
	b.conns = append(b.conns, conn)
	return conn, o.assigned, true, nil
}

func (b *stubBinder) sealed() {}

func TestReserveFirstCandidateFree(t *testing.T) {
	t.Parallel()

	b := &stubBinder{outcomes: []stubOutcome{{assigned: 8000, ok: true}}}

	res, err := Reserve[*stubConn](b, Ports(8000, 8080, 9090))
	if err != nil {
		t.Fatalf("Reserve() error: %v", err)
	}
	if got := res.Peek(); got != 8000 {
		t.Errorf("Peek() = %d, want 8000", got)
	}
	// First success wins: no further attempts after the first free port.
	if len(b.calls) != 1 {
		t.Errorf("bind attempts = %d, want 1", len(b.calls))
	}
}

func TestReserveSkipsBusyCandidates(t *testing.T) {
	t.Parallel()

	// First two candidates in use, third free: success on the third after
	// exactly three attempts.
	b := &stubBinder{outcomes: []stubOutcome{
		{ok: false},
		{ok: false},
		{assigned: 9090, ok: true},
	}}

	res, err := Reserve[*stubConn](b, Ports(8000, 8080, 9090))
	if err != nil {
		t.Fatalf("Reserve() error: %v", err)
	}
	if got := res.Peek(); got != 9090 {
		t.Errorf("Peek() = %d, want 9090", got)
	}
	wantCalls := []uint16{8000, 8080, 9090}
	if len(b.calls) != len(wantCalls) {
		t.Fatalf("bind attempts = %d, want %d", len(b.calls), len(wantCalls))
	}
	for i, want := range wantCalls {
		if b.calls[i] != want {
			t.Errorf("attempt %d bound port %d, want %d", i, b.calls[i], want)
		}
	}
}

func TestReserveExhausted(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		candidates   []uint16
		wantAttempts int
	}{
		"single busy candidate": {candidates: []uint16{8080}, wantAttempts: 1},
		"three busy candidates": {candidates: []uint16{8000, 8080, 9090}, wantAttempts: 3},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			outcomes := make([]stubOutcome, len(tc.candidates))
			b := &stubBinder{outcomes: outcomes}

			_, err := Reserve[*stubConn](b, Ports(tc.candidates...))

			var exhausted *ExhaustedError
			if !errors.As(err, &exhausted) {
				t.Fatalf("Reserve() error = %v, want *ExhaustedError", err)
			}
			if exhausted.Attempts != tc.wantAttempts {
				t.Errorf("Attempts = %d, want %d", exhausted.Attempts, tc.wantAttempts)
			}
			if !errors.Is(err, ErrPortsExhausted) {
				t.Error("errors.Is(err, ErrPortsExhausted) = false, want true")
			}
			if len(b.calls) != tc.wantAttempts {
				t.Errorf("bind attempts = %d, want exactly %d", len(b.calls), tc.wantAttempts)
			}
		})
	}
}

func TestReserveEmptySource(t *testing.T) {
	t.Parallel()

	b := &stubBinder{}

	_, err := Reserve[*stubConn](b, Ports())

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Reserve() error = %v, want *ExhaustedError", err)
	}
	if exhausted.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0", exhausted.Attempts)
	}
	if len(b.calls) != 0 {
		t.Errorf("bind attempts = %d, want 0 for an empty source", len(b.calls))
	}
}

func TestReserveFatalBindErrorAborts(t *testing.T) {
	t.Parallel()

	fatal := errors.New("permission denied")
	b := &stubBinder{outcomes: []stubOutcome{
		{ok: false},
		{err: fatal},
	}}

	_, err := Reserve[*stubConn](b, Ports(8000, 80, 9090))
	if err == nil {
		t.Fatal("Reserve() returned nil error, want fatal bind failure")
	}
	// Propagated unconverted: the cause stays reachable and the failure is
	// never reinterpreted as exhaustion.
	if !errors.Is(err, fatal) {
		t.Errorf("errors.Is(err, fatal) = false; got %v", err)
	}
	if errors.Is(err, ErrPortsExhausted) {
		t.Error("fatal bind failure was converted into ErrPortsExhausted")
	}
	// Short-circuits immediately: the third candidate is never tried.
	if len(b.calls) != 2 {
		t.Errorf("bind attempts = %d, want 2 (loop must stop at the fatal error)", len(b.calls))
	}
}

// overSource declares a shorter length than it could produce, to prove the
// declared length is the authoritative retry bound.
type overSource struct {
	declared int
	produced int
}

func (s *overSource) Next() uint16 {
	s.produced++
	return uint16(7000 + s.produced)
}

func (s *overSource) Len() int { return s.declared }

func TestReserveDeclaredLengthBoundsAttempts(t *testing.T) {
	t.Parallel()

	b := &stubBinder{outcomes: []stubOutcome{{ok: false}, {ok: false}}}
	src := &overSource{declared: 2}

	_, err := Reserve[*stubConn](b, src)

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Reserve() error = %v, want *ExhaustedError", err)
	}
	if exhausted.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", exhausted.Attempts)
	}
	if len(b.calls) != 2 {
		t.Errorf("bind attempts = %d, want 2 despite the source producing more", len(b.calls))
	}
	if src.produced != 2 {
		t.Errorf("source produced %d candidates, want 2", src.produced)
	}
}

func TestReserveWildcardAssignmentPropagates(t *testing.T) {
	t.Parallel()

	// Requesting 0 must surface the port the OS actually assigned.
	b := &stubBinder{outcomes: []stubOutcome{{assigned: 45678, ok: true}}}

	res, err := Reserve[*stubConn](b, Single(0))
	if err != nil {
		t.Fatalf("Reserve() error: %v", err)
	}
	if got := res.Peek(); got != 45678 {
		t.Errorf("Peek() = %d, want OS-assigned 45678", got)
	}
	if b.calls[0] != 0 {
		t.Errorf("requested port = %d, want wildcard 0", b.calls[0])
	}
}
