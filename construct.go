// construct.go - constructors for Error and Result.
//
// Err and NewError start with an empty trace: sites are only recorded by
// propagation steps. Trace is the exception, recording where it was called so
// that a trace is never empty even before the first hop.
package xgxtrace

// NewError wraps payload with an empty trace.
func NewError[E any](payload E) *Error[E] {
	return &Error[E]{inner: payload}
}

// Trace wraps payload and records the call site of Trace as the first entry.
func Trace[E any](payload E) *Error[E] {
	e := NewError(payload)
	e.PushLocation(callSite(1))
	return e
}

// MapError converts the payload of e with f and keeps the recorded trace.
// It is how an error changes payload type while crossing from one result type
// to another.
func MapError[E, F any](e *Error[E], f func(E) F) *Error[F] {
	return &Error[F]{inner: f(e.inner), trace: e.Locations()}
}

// Ok returns a successful Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{val: v}
}

// Err returns a failed Result holding payload in a fresh Error with an empty
// trace. The success type must be given explicitly: Err[int](payload).
func Err[T, E any](payload E) Result[T, E] {
	return Result[T, E]{err: NewError(payload)}
}

// FromError returns a failed Result holding e as-is. It is the return half of
// a propagation step:
//
//	v, err := load().Try()
//	if err != nil {
//		return xgxtrace.FromError[Config](err)
//	}
//
// A nil e yields Ok with the zero value.
func FromError[T, E any](e *Error[E]) Result[T, E] {
	return Result[T, E]{err: e}
}

// FromResult lifts a conventional (T, error) pair into the traced channel.
// A nil err yields Ok(v). An err that already is an *Error[error] (for
// example one downgraded with StopTrace) is reused, so its trace continues;
// any other err starts a fresh, empty trace.
func FromResult[T any](v T, err error) Result[T, error] {
	if err == nil {
		return Ok[T, error](v)
	}
	if te, ok := err.(*Error[error]); ok && te != nil {
		return FromError[T](te)
	}
	return Err[T](err)
}
