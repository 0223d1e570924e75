// Package sentinel provides an immutable error type for sentinel error
// declarations.
//
// Sentinel errors declared with errors.New are mutable package variables.
// Error is a string-based error type that can be declared as a const,
// keeping sentinels truly immutable while remaining compatible with
// errors.Is across wrapped error chains.
package sentinel
