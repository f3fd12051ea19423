package xgxtrace_test

import (
	"errors"
	"fmt"
	"strconv"

	xgxtrace "github.com/xgx-io/xgx-trace"
)

var errEmpty = errors.New("empty input")

func parsePort(s string) xgxtrace.Result[int, error] {
	if s == "" {
		return xgxtrace.Err[int](errEmpty)
	}
	n, err := strconv.Atoi(s)
	return xgxtrace.FromResult(n, err)
}

func listenAddr(s string) xgxtrace.Result[string, error] {
	port, err := parsePort(s).Try()
	if err != nil {
		return xgxtrace.FromError[string](err)
	}
	return xgxtrace.Ok[string, error](fmt.Sprintf(":%d", port))
}

func ExampleResult_Try() {
	fmt.Println(listenAddr("8080"))

	r := listenAddr("")
	fmt.Println(r, len(r.Locations()))
	// Output:
	// Ok(:8080)
	// Err(empty input) 1
}

func ExampleDiscardCallStack() {
	_, err := xgxtrace.DiscardCallStack(listenAddr(""))
	fmt.Println(err == errEmpty, xgxtrace.IsTraced(err))
	// Output: true false
}

func ExampleResult_StopTrace() {
	_, err := listenAddr("").StopTrace()
	fmt.Println(errors.Is(err, errEmpty), len(xgxtrace.LocationsOf(err)))
	// Output: true 1
}
