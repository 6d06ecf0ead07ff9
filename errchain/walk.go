package errchain

import (
	"errors"
	"reflect"
)

// maxChainDepth is a backstop for degenerate foreign chains whose nodes are
// not comparable and therefore evade the visited check in Walk.
const maxChainDepth = 1024

// causer is the predecessor convention of github.com/pkg/errors.
type causer interface {
	Cause() error
}

// next steps to the direct predecessor of err, recognizing both the standard
// Unwrap convention and the pkg/errors Cause convention.
func next(err error) error {
	if c := errors.Unwrap(err); c != nil {
		return c
	}

	if c, ok := err.(causer); ok {
		return c.Cause()
	}

	return nil
}

// sameError reports whether two chain nodes are the same error value. It
// never panics: values of a non-comparable dynamic type compare unequal to
// everything.
func sameError(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	return a == b
}

// Root returns the original failure at the bottom of the cause chain. If err
// does not wrap anything, it is returned as-is.
func Root(err error) error {
	var last error
	Walk(err, func(e error) bool {
		last = e
		return true
	})

	return last
}

// Walk visits err and then each predecessor in turn, outermost first,
// stopping when fn returns false or the chain ends. A node that was already
// visited ends the walk, so a cyclic foreign chain is traversed exactly once.
func Walk(err error, fn func(error) bool) {
	var seen []error

	for e, depth := err, 0; e != nil && depth < maxChainDepth; e, depth = next(e), depth+1 {
		for _, s := range seen {
			if sameError(e, s) {
				return
			}
		}

		if !fn(e) {
			return
		}

		seen = append(seen, e)
	}
}

// Depth reports the length of the cause chain, counting the original failure
// as 1. A nil err has depth 0. Depth is exact for any acyclic chain; cyclic
// chains count each node once.
func Depth(err error) int {
	n := 0
	Walk(err, func(error) bool {
		n++
		return true
	})

	return n
}
