package errchain

import (
	"errors"
	"fmt"
	"runtime"
)

const stackDepth = 32

// Frame represents a single entry in a resolved stack trace.
type Frame struct {
	Func string
	File string
	Line int
}

// String satisfies the fmt.Stringer interface.
func (f Frame) String() string {
	return fmt.Sprintf("%s:%d - %s", f.File, f.Line, f.Func)
}

// StackTrace returns the resolved frames of the outermost error in the chain
// that captured a stack, or nil when none did. Foreign errors without the
// Stack capability are skipped over via errors.As.
func StackTrace(err error) []Frame {
	var sp interface{ Stack() []uintptr }
	if errors.As(err, &sp) {
		return resolve(sp.Stack())
	}

	return nil
}

// capture grabs raw program counters at the call site. skip is the number of
// frames to ascend above the caller of capture, where 0 means the caller
// itself is the first frame.
func capture(skip int) []uintptr {
	pcs := make([]uintptr, stackDepth)

	n := runtime.Callers(skip+2, pcs)
	if n <= 0 {
		return nil
	}

	return pcs[:n:n]
}

// resolve expands program counters into frames. Resolution is deferred to
// here rather than done at capture time so the failure path stays cheap and
// inlined frames still resolve correctly.
func resolve(pcs []uintptr) []Frame {
	if len(pcs) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs)
	out := make([]Frame, 0, len(pcs))

	for {
		fr, more := frames.Next()
		if fr.Function == "" && fr.File == "" && fr.Line == 0 {
			break
		}

		out = append(out, Frame{Func: fr.Function, File: fr.File, Line: fr.Line})

		if !more {
			break
		}
	}

	return out
}
