// Package core provides the internal implementation of portreserve.
// It contains the sealed Binder abstraction (loopback bind-and-report for
// UDP sockets and TCP listeners), the candidate Source implementations
// (single port, explicit list, sequential range, randomized range), the
// bounded first-success acquisition loop, and the Reservation handle that
// keeps the bound socket open until it is taken or closed.
package core
