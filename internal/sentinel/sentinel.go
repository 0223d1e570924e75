package sentinel

// Compile-time check that Error implements the error interface.
var _ error = Error("")

// Error is an error type backed by a string constant. Declaring sentinel
// errors as const Error values makes them immutable: unlike errors.New,
// which produces a pointer that must live in a reassignable var, a const
// cannot be swapped out by a consumer.
//
// Error is comparable, so the default == comparison used by errors.Is
// matches it through wrapped error chains without a custom Is method.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}
