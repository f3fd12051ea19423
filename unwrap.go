// unwrap.go - terminal accessors for Result.
//
// Unwrap, Expect, UnwrapErr and ExpectErr panic on the wrong variant. The panic
// is the fault: it is not meant to be recovered into an error. The panic
// message carries the full rendering (payload plus call sites) so the trace
// survives into crash output.
//
// The remaining accessors never panic.
package xgxtrace

import "fmt"

// Unwrap returns the success value. It panics when r is Err.
func (r Result[T, E]) Unwrap() T {
	if r.err != nil {
		panic(fmt.Sprintf("called Unwrap on an Err value: %+v", r.err))
	}
	return r.val
}

// Expect returns the success value. It panics with msg when r is Err.
func (r Result[T, E]) Expect(msg string) T {
	if r.err != nil {
		panic(fmt.Sprintf("%s: %+v", msg, r.err))
	}
	return r.val
}

// UnwrapErr returns the error. It panics when r is Ok.
func (r Result[T, E]) UnwrapErr() *Error[E] {
	if r.err == nil {
		panic(fmt.Sprintf("called UnwrapErr on an Ok value: %v", r.val))
	}
	return r.err
}

// ExpectErr returns the error. It panics with msg when r is Ok.
func (r Result[T, E]) ExpectErr(msg string) *Error[E] {
	if r.err == nil {
		panic(fmt.Sprintf("%s: %v", msg, r.val))
	}
	return r.err
}

// UnwrapOr returns the success value, or def when r is Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.val
}

// UnwrapOrDefault returns the success value, or the zero T when r is Err.
func (r Result[T, E]) UnwrapOrDefault() T {
	return r.Value()
}

// UnwrapOrElse returns the success value, or f applied to the error when r is
// Err.
func (r Result[T, E]) UnwrapOrElse(f func(*Error[E]) T) T {
	if r.err != nil {
		return f(r.err)
	}
	return r.val
}
