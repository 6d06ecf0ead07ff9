// Package errlog renders an error's causal chain into a structure fit for a
// zap logger. It does not log on its own schedule and carries no state; it
// only extracts what errchain containers (and plain errors) already hold.
package errlog

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/next-trace/scg-errchain/errchain"
)

// Report is the extracted view of one failure: the top-level message, the
// original failure at the bottom of the chain, every intermediate cause, and
// the stack captured closest to where the failure surfaced.
type Report struct {
	Error      string
	Root       string
	Depth      int
	CauseChain []string
	Origin     string
	Stack      string
}

// Build extracts a Report from err. A nil err yields the zero Report.
func Build(err error) Report {
	if err == nil {
		return Report{}
	}

	r := Report{
		Error: err.Error(),
		Root:  errchain.Root(err).Error(),
		Depth: errchain.Depth(err),
	}

	// The first visited node is err itself; only its predecessors belong in
	// the chain. Position is tracked with a flag because comparing interface
	// values panics for non-comparable error types.
	first := true
	errchain.Walk(err, func(e error) bool {
		if first {
			first = false
			return true
		}
		r.CauseChain = append(r.CauseChain, fmt.Sprintf("%T: %v", e, e))
		return true
	})

	if frames := errchain.StackTrace(err); len(frames) > 0 {
		r.Origin = frames[0].String()

		lines := make([]string, len(frames))
		for i, fr := range frames {
			lines[i] = fr.String()
		}

		r.Stack = strings.Join(lines, "\n")
	}

	return r
}

// Fields renders err as zap fields. Empty parts of the report are omitted so
// plain errors log as a single field.
func Fields(err error) []zap.Field {
	r := Build(err)

	fields := []zap.Field{
		zap.String("error", r.Error),
		zap.Int("error_depth", r.Depth),
	}

	if r.Root != r.Error {
		fields = append(fields, zap.String("error_root", r.Root))
	}

	if len(r.CauseChain) > 0 {
		fields = append(fields, zap.Strings("error_causes", r.CauseChain))
	}

	if r.Origin != "" {
		fields = append(fields, zap.String("error_origin", r.Origin))
	}

	if r.Stack != "" {
		fields = append(fields, zap.String("error_stack", r.Stack))
	}

	return fields
}

// Log writes one error-level entry with the full chain attached. A nil err
// logs nothing.
func Log(l *zap.Logger, msg string, err error) {
	if l == nil || err == nil {
		return
	}

	l.Error(msg, Fields(err)...)
}
