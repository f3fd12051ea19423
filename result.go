package xgxtrace

// Result is either Ok, holding a value of type T, or Err, holding an *Error[E]
// that records the call sites the error was propagated through.
//
// The zero Result is Ok with the zero T. Results are small values; pass and
// return them by value. Once a Result has been consumed (propagated with Try,
// downgraded, or unwrapped) the consumer owns the outcome and the original
// value should not be reused for further propagation.
type Result[T, E any] struct {
	val T
	err *Error[E]
}

// IsOk reports whether r holds a value.
func (r Result[T, E]) IsOk() bool { return r.err == nil }

// IsErr reports whether r holds an error.
func (r Result[T, E]) IsErr() bool { return r.err != nil }

// Value returns the success value, or the zero T when r is Err. It never
// panics.
func (r Result[T, E]) Value() T {
	if r.err != nil {
		var zero T
		return zero
	}
	return r.val
}

// Err returns the error, or nil when r is Ok. It never panics and records
// nothing.
func (r Result[T, E]) Err() *Error[E] { return r.err }

// Payload returns the raw error payload and true when r is Err, or the zero
// E and false when r is Ok.
func (r Result[T, E]) Payload() (E, bool) {
	if r.err == nil {
		var zero E
		return zero, false
	}
	return r.err.inner, true
}

// Locations returns the recorded call sites of the error, oldest first, or nil
// when r is Ok.
func (r Result[T, E]) Locations() []CallSite {
	if r.err == nil {
		return nil
	}
	return r.err.Locations()
}
