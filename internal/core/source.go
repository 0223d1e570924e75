package core

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Source produces a finite sequence of candidate port numbers for Reserve
// to try, in order. Len reports the remaining element count; it must be
// knowable up front because Reserve reads it once and uses it as the
// authoritative bound on bind attempts. Next is called at most Len() times.
type Source interface {
	// Next returns the next candidate port.
	Next() uint16

	// Len returns the number of candidates remaining.
	Len() int
}

// Single returns a Source with exactly one candidate. Single(0) is the
// wildcard request: the OS assigns any free ephemeral port.
func Single(port uint16) Source {
	return single(port)
}

type single uint16

func (s single) Next() uint16 { return uint16(s) }
func (s single) Len() int     { return 1 }

// Ports returns a Source that yields the given ports in order. The slice is
// copied, so later mutation by the caller does not affect the source. An
// empty call yields a zero-length source, which Reserve reports as
// exhausted after zero attempts.
func Ports(ports ...uint16) Source {
	return &portList{ports: slices.Clone(ports)}
}

type portList struct {
	ports []uint16
}

func (l *portList) Next() uint16 {
	p := l.ports[0]
	l.ports = l.ports[1:]
	return p
}

func (l *portList) Len() int { return len(l.ports) }

// Range returns a Source that yields every port from first through last,
// inclusive, in ascending order.
//
// Panics if first > last. A reversed range is a programmer error, and
// failing fast beats surfacing it later as a zero-attempt exhaustion.
func Range(first, last uint16) Source {
	if first > last {
		panic(fmt.Sprintf("portreserve: reversed port range %d-%d", first, last))
	}
	return &portRange{next: uint32(first), remaining: int(last) - int(first) + 1}
}

// portRange tracks the next port as uint32 so that a range ending at 65535
// does not wrap when advanced past its final element.
type portRange struct {
	next      uint32
	remaining int
}

func (r *portRange) Next() uint16 {
	p := uint16(r.next)
	r.next++
	r.remaining--
	return p
}

func (r *portRange) Len() int { return r.remaining }

// RandomRange returns a Source of count candidates drawn uniformly from
// first through last, inclusive. Draws are independent, so duplicates are
// possible; count is the declared length, so it bounds Reserve's bind
// attempts exactly.
//
// Panics if first > last or count is negative.
func RandomRange(first, last uint16, count int) Source {
	if first > last {
		panic(fmt.Sprintf("portreserve: reversed port range %d-%d", first, last))
	}
	if count < 0 {
		panic(fmt.Sprintf("portreserve: candidate count must not be negative, got %d", count))
	}
	return &randomRange{first: first, span: int(last) - int(first) + 1, remaining: count}
}

type randomRange struct {
	first     uint16
	span      int
	remaining int
}

func (r *randomRange) Next() uint16 {
	r.remaining--
	return r.first + uint16(rand.IntN(r.span)) //nolint:gosec // ports are not secrets
}

func (r *randomRange) Len() int { return r.remaining }
