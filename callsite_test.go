// callsite_test.go - verification of call-site capture and rendering.
package xgxtrace

import (
	"strconv"
	"strings"
	"testing"

	stderr "github.com/bdlm/std/error"
)

func callerOfHelper() CallSite {
	return Caller()
}

func skipTwo() CallSite {
	return skipTwoInner()
}

func skipTwoInner() CallSite {
	return CaptureSkip(2)
}

func TestHere_PointsAtItsOwnLine(t *testing.T) {
	t.Parallel()

	site := Here()
	line := Here().Line() - 1

	if !site.Ok() {
		t.Fatalf("Here() not resolved: %#v", site)
	}
	if got := site.Line(); got != line {
		t.Fatalf("Line=%d want=%d", got, line)
	}
	if !strings.HasSuffix(site.Function(), ".TestHere_PointsAtItsOwnLine") {
		t.Fatalf("Function=%q", site.Function())
	}
	if !strings.HasSuffix(site.File(), "callsite_test.go") {
		t.Fatalf("File=%q", site.File())
	}
	if site.Pc() == 0 {
		t.Fatalf("Pc is zero")
	}
	if site.Column() != 0 {
		t.Fatalf("Column=%d want=0 (unknown)", site.Column())
	}
}

func TestCaller_ReturnsCallSiteOfEnclosingFunction(t *testing.T) {
	t.Parallel()

	site := callerOfHelper()
	line := Here().Line() - 1

	if got := site.Line(); got != line {
		t.Fatalf("Line=%d want=%d", got, line)
	}
	if !strings.HasSuffix(site.Function(), ".TestCaller_ReturnsCallSiteOfEnclosingFunction") {
		t.Fatalf("Function=%q", site.Function())
	}
}

func TestCaptureSkip_SkipsFrames(t *testing.T) {
	t.Parallel()

	site := skipTwo()
	line := Here().Line() - 1

	if got := site.Line(); got != line {
		t.Fatalf("Line=%d want=%d", got, line)
	}

	if got, want := CaptureSkip(0).Line(), Here().Line(); got != want {
		t.Fatalf("CaptureSkip(0) line=%d want=%d", got, want)
	}
	if got, want := CaptureSkip(-3).Line(), Here().Line(); got != want {
		t.Fatalf("CaptureSkip(-3) line=%d want=%d", got, want)
	}
}

func TestCaptureSkip_PastTopIsZero(t *testing.T) {
	t.Parallel()

	const absurdSkip = 1 << 20
	site := CaptureSkip(absurdSkip)
	if site.Ok() {
		t.Fatalf("expected unresolved site, got %v", site)
	}
	if site != (CallSite{}) {
		t.Fatalf("expected zero CallSite, got %#v", site)
	}
	if got := site.String(); got != "unknown" {
		t.Fatalf("String=%q want=%q", got, "unknown")
	}
}

func TestCallSite_StringAndPath(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		site CallSite
		want string
	}{
		{
			name: "package-qualified without column",
			site: CallSite{file: "/src/acme/app/main.go", line: 42, function: "github.com/acme/app.run"},
			want: "github.com/acme/app/main.go:42",
		},
		{
			name: "with column",
			site: CallSite{file: "/src/acme/app/main.go", line: 42, column: 7, function: "github.com/acme/app.run"},
			want: "github.com/acme/app/main.go:42:7",
		},
		{
			name: "stdlib-style function without slash",
			site: CallSite{file: "/usr/lib/go/src/main/main.go", line: 3, function: "main.main"},
			want: "main/main.go:3",
		},
		{
			name: "bare file",
			site: CallSite{file: "main.go", line: 1, function: "main.main"},
			want: "main/main.go:1",
		},
		{
			name: "checkout directory differs from package name",
			site: CallSite{file: "/home/dev/_ws/main.go", line: 9, function: "github.com/acme/app.run"},
			want: "github.com/acme/app/main.go:9",
		},
		{
			name: "escaped dot in last element",
			site: CallSite{file: "/mod/yaml/encode.go", line: 5, function: "gopkg.in/yaml%2ev3.Marshal"},
			want: "gopkg.in/yaml.v3/encode.go:5",
		},
		{
			name: "generic method",
			site: CallSite{file: "/x/y/try.go", line: 2, function: "github.com/acme/res.Result[...].Try"},
			want: "github.com/acme/res/try.go:2",
		},
		{
			name: "unknown function",
			site: CallSite{file: "/x/y/z.go", line: 4},
			want: "z.go:4",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.site.String(); got != tc.want {
				t.Fatalf("String=%q want=%q", got, tc.want)
			}
		})
	}
}

func TestCallSite_RenderedLineMatchesCapture(t *testing.T) {
	t.Parallel()

	site := Here()
	want := "github.com/xgx-io/xgx-trace/callsite_test.go:" + strconv.Itoa(site.Line())
	if got := site.String(); got != want {
		t.Fatalf("String=%q want=%q", got, want)
	}
}

func TestCallSite_SatisfiesBdlmCaller(t *testing.T) {
	t.Parallel()

	var c stderr.Caller = Here()
	if !c.Ok() || c.Line() <= 0 || c.File() == "" || c.String() == "" {
		t.Fatalf("Caller view incomplete: ok=%v line=%d file=%q", c.Ok(), c.Line(), c.File())
	}
}
