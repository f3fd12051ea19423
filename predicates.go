// predicates.go - questions about arbitrary errors that may carry a trace.
//
// These work on plain error values, typically after a Result was downgraded
// with StopTrace, and rely on errors.As so wrapped and joined errors are
// searched too.
package xgxtrace

import "errors"

// IsTraced reports whether err is, or wraps, a traced error.
func IsTraced(err error) bool {
	if err == nil {
		return false
	}
	var t Traced
	return errors.As(err, &t)
}

// LocationsOf returns the call sites of the first traced error along err's
// chain, oldest first, or nil if there is none.
func LocationsOf(err error) []CallSite {
	if err == nil {
		return nil
	}
	var t Traced
	if errors.As(err, &t) {
		return t.Locations()
	}
	return nil
}

// Has reports whether target appears anywhere in err's unwrap graph.
// It wraps errors.Is with nil-safety.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
