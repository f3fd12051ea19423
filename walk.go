// walk.go - collecting traces from an error graph.
//
// A traced error can end up inside other errors: its payload may itself be a
// traced error, or several downgraded results may be joined with errors.Join.
// Traces walks the whole unwrap graph and returns every trace it finds.
//
// Traversal:
//   - Pre-order DFS over both Unwrap() error and Unwrap() []error.
//   - A dual seen-set guards against cycles: pointers are keyed by address,
//     other values by value when they are comparable all the way down. Anything
//     else is treated as acyclic and bounded by maxWalkNodes.
package xgxtrace

import "reflect"

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// maxWalkNodes caps the number of visited nodes, not the width of any join.
const maxWalkNodes = 1 << 16

// Traces returns the recorded call sites of every traced error in err's unwrap
// graph, outermost first. Traces without any recorded site are skipped.
func Traces(err error) [][]CallSite {
	var out [][]CallSite
	walk(err, func(e error) bool {
		if t, ok := e.(Traced); ok {
			if locs := t.Locations(); len(locs) > 0 {
				out = append(out, locs)
			}
		}
		return true
	})
	return out
}

// walk visits each distinct node of err's unwrap graph in pre-order and stops
// early when visit returns false.
func walk(err error, visit func(error) bool) {
	if err == nil {
		return
	}
	seen := newSeenSet()
	stack := make([]error, 0, 8)
	stack = append(stack, err)
	seen.mark(err)

	for visited := 0; len(stack) > 0 && visited < maxWalkNodes; visited++ {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			// push in reverse for left-to-right order
			for i := len(kids) - 1; i >= 0; i-- {
				if c := kids[i]; c != nil && seen.mark(c) {
					stack = append(stack, c)
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); c != nil && seen.mark(c) {
				stack = append(stack, c)
			}
		}
	}
}

type seenSet struct {
	byValue map[error]struct{}
	byPtr   map[uintptr]struct{}
}

func newSeenSet() *seenSet {
	return &seenSet{
		byValue: make(map[error]struct{}, 16),
		byPtr:   make(map[uintptr]struct{}, 16),
	}
}

// mark returns true if err was newly marked and false if it was seen before.
//
// Type-level comparability is not enough for a map key: a comparable struct
// may hold a slice in an interface field, and hashing it panics. Value-level
// comparability checks the dynamic contents as well.
func (s *seenSet) mark(err error) bool {
	rv := reflect.ValueOf(err)
	switch {
	case rv.Kind() == reflect.Pointer:
		if rv.IsNil() {
			return true
		}
		id := rv.Pointer()
		if _, ok := s.byPtr[id]; ok {
			return false
		}
		s.byPtr[id] = struct{}{}
		return true

	case rv.Comparable():
		if _, ok := s.byValue[err]; ok {
			return false
		}
		s.byValue[err] = struct{}{}
		return true

	default:
		return true
	}
}
