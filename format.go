// format.go - fmt.Formatter implementations for xgx-trace.
//
// Behavior for *Error:
//
//	%s, %v   → payload display (Error()).
//	%+v      → payload display, then one call site per line, most recent first:
//	             <payload>
//	             github.com/acme/app/main.go:42
//	             github.com/acme/app/load.go:17
//	%q       → quoted Error().
//
// Behavior for Result:
//
//	%v       → Ok(<value>) or Err(<payload>).
//	%+v      → as %v, with the error rendered by %+v.
//
// Rendering is a pure function of the value; there is no global formatter.
package xgxtrace

import (
	"fmt"
	"io"
	"strings"
)

// display renders a payload with its own %v form.
func display(v any) string {
	return fmt.Sprint(v)
}

// formatTrace writes the payload followed by the call sites in reverse
// recording order.
func formatTrace(w io.Writer, payload string, trace []CallSite) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, payload)
	for i := len(trace) - 1; i >= 0; i-- {
		_, _ = io.WriteString(w, "\n")
		_, _ = io.WriteString(w, trace[i].String())
	}
}

// Format implements fmt.Formatter.
func (e *Error[E]) Format(s fmt.State, verb rune) {
	if e == nil {
		_, _ = io.WriteString(s, "<nil>")
		return
	}
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatTrace(s, e.Error(), e.trace)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// Render returns the %+v form of e: the payload display followed by each
// recorded call site, most recent first, one per line.
func (e *Error[E]) Render() string {
	if e == nil {
		return "<nil>"
	}
	var sb strings.Builder
	formatTrace(&sb, e.Error(), e.trace)
	return sb.String()
}

// Format implements fmt.Formatter.
func (r Result[T, E]) Format(s fmt.State, verb rune) {
	if r.err == nil {
		_, _ = fmt.Fprintf(s, "Ok(%v)", r.val)
		return
	}
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "Err(%+v)", r.err)
		return
	}
	_, _ = fmt.Fprintf(s, "Err(%v)", r.err)
}

// String returns the %v form of r.
func (r Result[T, E]) String() string {
	return fmt.Sprintf("%v", r)
}
