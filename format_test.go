package xgxtrace

import (
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting_ConciseAndVerbose(t *testing.T) {
	t.Parallel()

	_, err := descend(2).Try()

	for _, verb := range []string{"%v", "%s"} {
		if got := fmt.Sprintf(verb, err); got != "baz" {
			t.Fatalf("%s=%q want=%q", verb, got, "baz")
		}
	}
	if got := fmt.Sprintf("%q", err); got != `"baz"` {
		t.Fatalf("%%q=%q", got)
	}
	if got := err.Error(); got != "baz" {
		t.Fatalf("Error()=%q", got)
	}

	verbose := fmt.Sprintf("%+v", err)
	if verbose != err.Render() {
		t.Fatalf("%%+v and Render differ:\n%s\n---\n%s", verbose, err.Render())
	}
	lines := strings.Split(verbose, "\n")
	if len(lines) != 4 {
		t.Fatalf("verbose has %d lines, want 4:\n%s", len(lines), verbose)
	}
	locs := err.Locations()
	for i, line := range lines[1:] {
		if want := locs[len(locs)-1-i].String(); line != want {
			t.Fatalf("line %d=%q want=%q (most recent first)", i+1, line, want)
		}
	}
	if !strings.Contains(lines[1], "format_test.go:") {
		t.Fatalf("most recent site should be this test: %q", lines[1])
	}
}

func TestErrorFormatting_NoSites(t *testing.T) {
	t.Parallel()

	e := NewError(42)
	if got := fmt.Sprintf("%+v", e); got != "42" {
		t.Fatalf("%%+v=%q want=%q", got, "42")
	}
}

func TestErrorFormatting_Nil(t *testing.T) {
	t.Parallel()

	var e *Error[string]
	if got := fmt.Sprintf("%+v", e); got != "<nil>" {
		t.Fatalf("%%+v(nil)=%q", got)
	}
	if got := e.Error(); got != "<nil>" {
		t.Fatalf("Error(nil)=%q", got)
	}
	if got := e.Render(); got != "<nil>" {
		t.Fatalf("Render(nil)=%q", got)
	}
}

func TestResultFormatting(t *testing.T) {
	t.Parallel()

	if got := fmt.Sprint(Ok[int, string](3)); got != "Ok(3)" {
		t.Fatalf("Ok %%v=%q", got)
	}
	if got := Ok[string, error]("x").String(); got != "Ok(x)" {
		t.Fatalf("Ok String=%q", got)
	}

	r := descend(1)
	if got := fmt.Sprintf("%v", r); got != "Err(baz)" {
		t.Fatalf("Err %%v=%q", got)
	}
	verbose := fmt.Sprintf("%+v", r)
	if !strings.HasPrefix(verbose, "Err(baz\n") || !strings.HasSuffix(verbose, ")") {
		t.Fatalf("Err %%+v=%q", verbose)
	}
	if !strings.Contains(verbose, "try_test.go:") {
		t.Fatalf("Err %%+v missing site: %q", verbose)
	}
}
