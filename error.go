// error.go - the traced error value.
//
// Design tenets:
//   - Payload-agnostic: the error payload E is whatever the caller chooses; the
//     tracing layer never inspects it.
//   - Append-only traces: a site, once recorded, is never removed or reordered.
//   - Copy-on-write propagation: every propagation step returns a fresh Error,
//     so values handed to other goroutines never alias a growing trace.
//   - Interop-first: Error implements error and Unwrap, so errors.Is/As reach
//     the payload when it is itself an error.
package xgxtrace

// Traced is the non-generic view of an Error[E]. Use it with errors.As when the
// payload type is unknown at the call site.
type Traced interface {
	error

	// Locations returns a copy of the recorded call sites, oldest first.
	Locations() []CallSite

	// Unwrap returns the payload when it is an error, and nil otherwise.
	Unwrap() error
}

// Error wraps a payload of type E together with the ordered call sites it was
// propagated through. Locations()[0] is the deepest (first) hop, the last entry
// is the most recent.
//
// An *Error is normally obtained from a Result via Try or UnwrapErr, or built
// with NewError or Trace. The nil *Error is never a valid Err.
type Error[E any] struct {
	inner E
	trace []CallSite
}

var _ Traced = (*Error[error])(nil)

// Inner returns the payload, discarding the call sites.
func (e *Error[E]) Inner() E { return e.inner }

// Split returns the payload and a copy of the recorded call sites.
func (e *Error[E]) Split() (E, []CallSite) { return e.inner, e.Locations() }

// Locations returns a copy of the recorded call sites, oldest first.
func (e *Error[E]) Locations() []CallSite {
	if len(e.trace) == 0 {
		return nil
	}
	out := make([]CallSite, len(e.trace))
	copy(out, e.trace)
	return out
}

// Len returns the number of recorded call sites.
func (e *Error[E]) Len() int { return len(e.trace) }

// PushLocation appends site to the trace. It is the only method that mutates
// an Error in place and must not be called concurrently with other methods on
// the same value.
func (e *Error[E]) PushLocation(site CallSite) {
	e.trace = append(e.trace, site)
}

// Error returns the payload's display form. The recorded call sites are not
// included; format with %+v to render them.
func (e *Error[E]) Error() string {
	if e == nil {
		return "<nil>"
	}
	return display(e.inner)
}

// Unwrap returns the payload when it is an error, and nil otherwise.
func (e *Error[E]) Unwrap() error {
	if e == nil {
		return nil
	}
	if err, ok := any(e.inner).(error); ok {
		return err
	}
	return nil
}

// withLocation returns a copy of e with site appended. The copy never shares
// its backing array with e.
func (e *Error[E]) withLocation(site CallSite) *Error[E] {
	trace := make([]CallSite, len(e.trace), len(e.trace)+1)
	copy(trace, e.trace)
	n := &Error[E]{inner: e.inner, trace: trace}
	n.PushLocation(site)
	return n
}
