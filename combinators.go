// combinators.go - mapping and chaining over Result.
//
// Methods cannot declare their own type parameters, so combinators that
// change T or E are package functions. None of them is a propagation step:
// an Err passes through with its trace exactly as it was.
package xgxtrace

// Map applies f to the value of an Ok result. An Err is passed through with its
// trace unchanged.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.err != nil {
		return FromError[U](r.err)
	}
	return Ok[U, E](f(r.val))
}

// MapErr applies f to the payload of an Err result and keeps the trace. An Ok
// is passed through.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.err != nil {
		return FromError[T](MapError(r.err, f))
	}
	return Ok[T, F](r.val)
}

// MapOr returns f applied to the value, or def when r is Err.
func MapOr[T, U, E any](r Result[T, E], def U, f func(T) U) U {
	if r.err != nil {
		return def
	}
	return f(r.val)
}

// MapOrElse returns f applied to the value, or fe applied to the error when r
// is Err.
func MapOrElse[T, U, E any](r Result[T, E], fe func(*Error[E]) U, f func(T) U) U {
	if r.err != nil {
		return fe(r.err)
	}
	return f(r.val)
}

// AndThen calls f with the value of an Ok result and returns its result. An
// Err is passed through with its trace unchanged.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.err != nil {
		return FromError[U](r.err)
	}
	return f(r.val)
}

// OrElse calls f with the error of an Err result and returns its result. An Ok
// is passed through.
func OrElse[T, E, F any](r Result[T, E], f func(*Error[E]) Result[T, F]) Result[T, F] {
	if r.err != nil {
		return f(r.err)
	}
	return Ok[T, F](r.val)
}

// And returns next when r is Ok, and r's error otherwise.
func And[T, U, E any](r Result[T, E], next Result[U, E]) Result[U, E] {
	if r.err != nil {
		return FromError[U](r.err)
	}
	return next
}

// Or returns r when it is Ok, and alt otherwise.
func Or[T, E, F any](r Result[T, E], alt Result[T, F]) Result[T, F] {
	if r.err != nil {
		return alt
	}
	return Ok[T, F](r.val)
}

// Inspect calls f with the value of an Ok result and returns r.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.err == nil {
		f(r.val)
	}
	return r
}

// InspectErr calls f with the error of an Err result and returns r.
func (r Result[T, E]) InspectErr(f func(*Error[E])) Result[T, E] {
	if r.err != nil {
		f(r.err)
	}
	return r
}
