// try.go - the propagation step.
//
// Go has no user-definable early-return operator, so a propagation step is two
// halves written at the call site:
//
//	v, err := step().Try()       // records this line when step failed
//	if err != nil {
//		return xgxtrace.FromError[Out](err)
//	}
//
// Try captures its own call site through the runtime, so callers write no
// tracing code beyond the usual error check. Helpers that should be invisible
// in traces capture Caller() on entry and propagate with TryAt instead.
//
// Check and Handle offer an implicit variant built on panic and recover for
// code that prefers straight-line bodies.
package xgxtrace

import "fmt"

// Try is the propagation step. If r is Ok it returns the value and a nil
// error. If r is Err it returns the zero T and a new *Error whose trace is r's
// trace plus the call site of Try. r itself is left untouched.
func (r Result[T, E]) Try() (T, *Error[E]) {
	if r.err == nil {
		return r.val, nil
	}
	var zero T
	return zero, r.err.withLocation(callSite(1))
}

// TryAt is Try with an explicit site instead of the captured one. Caller
// transparent helpers use it to attribute the hop to their own caller:
//
//	func mustLoad(name string) xgxtrace.Result[*Config, error] {
//		site := xgxtrace.Caller()
//		cfg, err := load(name).TryAt(site)
//		...
//	}
//
// A transparent helper called from another transparent helper takes the site
// as a parameter instead of capturing it, and forwards it unchanged.
func (r Result[T, E]) TryAt(site CallSite) (T, *Error[E]) {
	if r.err == nil {
		return r.val, nil
	}
	var zero T
	return zero, r.err.withLocation(site)
}

// escape carries an annotated error from Check to Handle.
type escape[E any] struct {
	err *Error[E]
}

func (e *escape[E]) Error() string {
	return fmt.Sprintf("xgxtrace: Check escaped without a matching Handle: %+v", e.err)
}

// Check is the implicit propagation step. If r is Ok it returns the value. If
// r is Err it records the call site of Check and unwinds to the deferred
// Handle of the enclosing function, which turns the annotated error into that
// function's result:
//
//	func loadAll() (res xgxtrace.Result[int, error]) {
//		defer xgxtrace.Handle(&res)
//		a := loadA().Check()
//		b := loadB().Check()
//		return xgxtrace.Ok[int, error](a + b)
//	}
//
// Every function using Check must defer Handle with the same error type E.
// Without one the unwinding continues as an ordinary panic.
func (r Result[T, E]) Check() T {
	if r.err == nil {
		return r.val
	}
	panic(&escape[E]{err: r.err.withLocation(callSite(1))})
}

// Handle must be deferred directly by functions that use Check. It stores an
// escaping error in *res; any other panic is re-raised.
func Handle[T, E any](res *Result[T, E]) {
	v := recover()
	if v == nil {
		return
	}
	esc, ok := v.(*escape[E])
	if !ok {
		panic(v)
	}
	*res = FromError[T](esc.err)
}
