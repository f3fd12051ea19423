// doc.go - package documentation for xgx-trace
//
// Package xgxtrace provides Result[T, E], a two-variant outcome whose error
// side records the call sites it is propagated through. When an error reaches
// the code that finally handles it, %+v prints the payload followed by the
// path it took, nearest hop first, much like a stack trace but built from the
// returns themselves rather than from stack unwinding.
//
// # Propagation
//
// A propagation step is Try followed by an early return:
//
//	func doSomething() xgxtrace.Result[int, error] {
//		v, err := foo().Try()
//		if err != nil {
//			return xgxtrace.FromError[int](err)
//		}
//		return xgxtrace.Ok[int, error](v * 2)
//	}
//
// Each Try on an Err appends the site of the Try call. A chain of N hops
// records exactly N sites, oldest first. Err and NewError start with an empty
// trace; Trace additionally records the construction site.
//
// Check and a deferred Handle give the same behavior without the explicit
// if-return, using panic and recover inside a single function.
//
// # Caller transparency
//
// Small helpers often should not appear in traces. A helper captures Caller()
// on entry and propagates with TryAt(site); the recorded hop then names the
// helper's caller. Nested transparent helpers pass the site down as a
// parameter rather than capturing a new one.
//
// # Leaving the traced channel
//
// StopTrace returns (T, error) with the *Error as the error: the trace is kept
// but frozen. DiscardCallStack returns the raw payload instead, and
// DiscardTrace does the same for payloads that are not errors. FromResult
// lifts a (T, error) pair back in and resumes a frozen trace.
//
// # Formatting
//
//   - %v, %s on *Error → payload display only.
//   - %+v on *Error    → payload, then one "<file>:<line>" per hop, most recent first.
//   - %v on Result     → Ok(<v>) or Err(<payload>); %+v expands the error.
//
// The Go runtime reports no source columns, so captured call sites render as
// <file>:<line>. <file> is the package-qualified short path.
//
// # Interop
//
//   - *Error implements error; Unwrap exposes an error payload to errors.Is/As.
//   - LocationsOf and IsTraced inspect plain errors; Traces collects every trace
//     in a wrapped or joined error graph.
//   - CallSite satisfies github.com/bdlm/std/error.Caller.
//
// # Concurrency
//
// Results are values. Propagation is copy-on-write, so a Result handed to
// another goroutine can keep accumulating hops without affecting any other
// holder. PushLocation is the only in-place mutator.
//
// Logging adapters live in the tracelog subpackage.
package xgxtrace
