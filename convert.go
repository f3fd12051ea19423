// convert.go - downgrading a Result to the conventional (T, error) pair.
//
// Once a value leaves the traced channel there is no propagation step to hook
// into, so its trace is frozen (StopTrace) or dropped (DiscardCallStack).
// FromResult goes the other way.
package xgxtrace

// StopTrace converts r into a conventional (T, error) pair. The error is the
// *Error itself, so the recorded trace is preserved (and reachable with
// LocationsOf), but nothing is recorded after this point. When r is Ok the
// error is a nil interface.
func (r Result[T, E]) StopTrace() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.val, nil
}

// DiscardCallStack converts r into a conventional (T, error) pair whose error
// is the raw payload. The recorded trace is dropped. Payloads that are not
// errors are discarded with DiscardTrace.
func DiscardCallStack[T any, E error](r Result[T, E]) (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err.inner
	}
	return r.val, nil
}

// DiscardTrace drops the recorded trace of r and returns the value, the raw
// payload, and whether r was Err. Unlike DiscardCallStack it accepts any
// payload type.
func DiscardTrace[T, E any](r Result[T, E]) (T, E, bool) {
	if r.err != nil {
		var zero T
		return zero, r.err.inner, true
	}
	var zero E
	return r.val, zero, false
}
