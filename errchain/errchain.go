package errchain

import (
	"github.com/next-trace/scg-errchain/contract"
)

// chain is the shared core of both error forms: the kind value, the optional
// direct predecessor, and the program counters captured at construction.
type chain[K contract.Kind] struct {
	kind  K
	cause error
	stack []uintptr
}

// chainValue builds the core with the call-site stack attached. skip is the
// number of frames between the caller of chainValue and the user's call site.
func chainValue[K contract.Kind](cause error, kind K, skip int) chain[K] {
	return chain[K]{
		kind:  kind,
		cause: cause,
		stack: capture(skip + 1),
	}
}

func newChain[K contract.Kind](cause error, kind K, skip int) *chain[K] {
	c := chainValue(cause, kind, skip+1)
	return &c
}

// Error is the indirect form: the chain core lives behind one level of heap
// indirection, so the value itself is always pointer-sized. One allocation
// per construction. This is the form every combinator in this package returns.
type Error[K contract.Kind] struct {
	inner *chain[K]
}

// InlineError is the inline form: the chain core is stored by value, so no
// allocation happens at construction at the cost of a larger value. The zero
// value carries the zero kind and is not meaningful; always construct via
// NewInline or WrapInline.
type InlineError[K contract.Kind] struct {
	inner chain[K]
}

// compile-time guarantee that both forms implement contract.Failer
var (
	_ contract.Failer = Error[StringKind]{}
	_ contract.Failer = InlineError[StringKind]{}
)

// ------ core constructors

// New wraps a fresh kind with no cause and captures the call-site stack.
// It always succeeds.
func New[K contract.Kind](kind K) Error[K] {
	return Error[K]{inner: newChain(nil, kind, 1)}
}

// Wrap builds an Error whose cause is the supplied prior failure. The cause
// is recorded as-is, including nil: wrapping never fails and never inspects
// the failure it is handed.
func Wrap[K contract.Kind](cause error, kind K) Error[K] {
	return Error[K]{inner: newChain(cause, kind, 1)}
}

// NewInline is New for the inline form.
func NewInline[K contract.Kind](kind K) InlineError[K] {
	return InlineError[K]{inner: chainValue(nil, kind, 1)}
}

// WrapInline is Wrap for the inline form.
func WrapInline[K contract.Kind](cause error, kind K) InlineError[K] {
	return InlineError[K]{inner: chainValue(cause, kind, 1)}
}

// ------ indirect form accessors

// Error renders the outermost kind's message only. The cause chain is never
// folded into the primary display; walk Cause (or use Walk/Root) for the
// full history.
func (e Error[K]) Error() string {
	if e.inner == nil {
		return "<nil>"
	}

	return e.inner.kind.Error()
}

// Kind returns the kind value the container was built with. The zero value
// of Error yields the zero kind.
func (e Error[K]) Kind() K {
	if e.inner == nil {
		var zero K
		return zero
	}

	return e.inner.kind
}

// Cause returns the direct predecessor, or nil when there is none. This also
// satisfies the causer convention of github.com/pkg/errors.
func (e Error[K]) Cause() error {
	if e.inner == nil {
		return nil
	}

	return e.inner.cause
}

// Unwrap lets errors.Is / errors.As follow the cause chain.
func (e Error[K]) Unwrap() error { return e.Cause() }

// Stack returns a copy of the program counters captured at construction;
// NEVER the internal slice.
func (e Error[K]) Stack() []uintptr {
	if e.inner == nil {
		return nil
	}

	return cloneStack(e.inner.stack)
}

// StackTrace resolves the captured program counters into frames.
func (e Error[K]) StackTrace() []Frame { return resolve(e.Stack()) }

// ------ inline form accessors

func (e InlineError[K]) Error() string { return e.inner.kind.Error() }

func (e InlineError[K]) Kind() K { return e.inner.kind }

// Cause returns the direct predecessor, or nil when there is none.
func (e InlineError[K]) Cause() error { return e.inner.cause }

// Unwrap lets errors.Is / errors.As follow the cause chain.
func (e InlineError[K]) Unwrap() error { return e.inner.cause }

// Stack returns a copy of the program counters captured at construction.
func (e InlineError[K]) Stack() []uintptr { return cloneStack(e.inner.stack) }

// StackTrace resolves the captured program counters into frames.
func (e InlineError[K]) StackTrace() []Frame { return resolve(e.Stack()) }

// Indirect converts to the pointer-sized form, preserving kind, cause and
// the originally captured stack.
func (e InlineError[K]) Indirect() Error[K] {
	c := e.inner
	return Error[K]{inner: &c}
}

// ------ convenience kind

// StringKind is a minimal Kind carrying only a message. Handy for quick
// failure domains and tests; real domains should declare their own closed
// variant set.
type StringKind string

func (k StringKind) Error() string { return string(k) }

func cloneStack(in []uintptr) []uintptr {
	if len(in) == 0 {
		return nil
	}

	out := make([]uintptr, len(in))
	copy(out, in)

	return out
}
