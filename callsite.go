// callsite.go - call-site capture for xgx-trace.
//
// Design goals:
//   - One frame per capture. A propagation step records where it ran, never a
//     full stack.
//   - Accurate resolution through inlined frames: go-stack resolves via
//     runtime.CallersFrames.
//   - Explicit skip accounting so helpers can attribute a site to their caller
//     (see Caller and TryAt).
//
// Skip model:
//
//	Here/Caller/CaptureSkip → callSite → stack.Caller
//
// stack.Caller(0) is callSite itself, so callSite adds +1 to place skip=0 at the
// function that called callSite.
package xgxtrace

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	stderr "github.com/bdlm/std/error"
	"github.com/go-stack/stack"
)

// CallSite identifies the source location where a propagation step ran.
//
// CallSite values are produced by the runtime (Here, Caller, CaptureSkip and
// the propagation helpers) and are immutable. The Go runtime reports no column
// information, so Column is 0 ("unknown") for captured sites.
type CallSite struct {
	file     string
	line     int
	column   int
	function string
	pc       uintptr
}

var _ stderr.Caller = CallSite{}

// Here returns the call site of the Here call itself.
func Here() CallSite {
	return callSite(1)
}

// Caller returns the site where the function calling Caller was invoked.
//
// It is the building block for caller-transparent helpers: capture Caller() on
// entry and propagate with TryAt so the recorded frame names the helper's
// caller rather than the helper.
func Caller() CallSite {
	return callSite(2)
}

// CaptureSkip returns the call site skip frames above the function calling
// CaptureSkip. CaptureSkip(0) is equivalent to Here, CaptureSkip(1) to Caller.
// A skip beyond the top of the stack yields the zero CallSite.
func CaptureSkip(skip int) CallSite {
	if skip < 0 {
		skip = 0
	}
	return callSite(skip + 1)
}

func callSite(skip int) CallSite {
	fr := stack.Caller(skip + 1).Frame()
	if fr.PC == 0 && fr.Line == 0 {
		return CallSite{}
	}
	return callSiteFrom(fr)
}

func callSiteFrom(fr runtime.Frame) CallSite {
	return CallSite{
		file:     fr.File,
		line:     fr.Line,
		function: fr.Function,
		pc:       fr.PC,
	}
}

// File returns the absolute source file path as reported by the runtime.
func (c CallSite) File() string { return c.file }

// Line returns the 1-based line number.
func (c CallSite) Line() int { return c.line }

// Column returns the 1-based column, or 0 when unknown.
func (c CallSite) Column() int { return c.column }

// Function returns the fully-qualified function name (pkg.Func or pkg.T.Method).
func (c CallSite) Function() string { return c.function }

// Pc returns the program counter of the call.
func (c CallSite) Pc() uintptr { return c.pc }

// Ok reports whether the site resolved to a real frame.
func (c CallSite) Ok() bool { return c.file != "" && c.line > 0 }

// Path returns the package import path joined with the file's base name, e.g.
// "github.com/xgx-io/xgx-trace/result_test.go". The checkout directory does
// not leak into it.
func (c CallSite) Path() string {
	base := filepath.Base(c.file)
	pkg := pkgPath(c.function)
	if pkg == "" {
		return base
	}
	return pkg + "/" + base
}

// String renders the site as <file>:<line>:<column>, or <file>:<line> when the
// column is unknown.
func (c CallSite) String() string {
	if !c.Ok() {
		return "unknown"
	}
	var sb strings.Builder
	sb.WriteString(c.Path())
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(c.line))
	if c.column > 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(c.column))
	}
	return sb.String()
}

// pkgPath returns the import path of the package declaring funcName:
// "github.com/xgx-io/xgx-trace.Result[...].Try" → "github.com/xgx-io/xgx-trace".
// The runtime escapes dots in the last path element as %2e.
func pkgPath(funcName string) string {
	if funcName == "" {
		return ""
	}
	lastSlash := strings.LastIndex(funcName, "/")
	dot := strings.Index(funcName[lastSlash+1:], ".")
	if dot == -1 {
		return ""
	}
	return strings.ReplaceAll(funcName[:lastSlash+1+dot], "%2e", ".")
}
