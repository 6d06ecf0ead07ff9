// Package errchain provides a generic, immutable error container with causal
// chaining, in the spirit of kind/error pairs.
//
// A failure domain declares a closed set of kind values (small comparable
// types implementing error), and wraps lower-level failures into an Error
// tagged with one of those kinds. Each wrap records the previous failure as
// the cause, building a singly linked, acyclic chain from the original
// low-level failure up to the top-level reported one.
//
// Key characteristics:
//   - Construction is total: no constructor, combinator, or guard in this
//     package can fail or panic on the failure path.
//   - Errors are immutable after construction; chaining always builds a new
//     container and never touches the old one.
//   - Display stays terse: Error() renders only the outermost kind's message.
//     The full chain and the captured stack remain available on demand via
//     Cause, Walk, Root, and StackTrace.
//   - Two storage forms with identical read semantics: Error (pointer-sized,
//     one allocation) and InlineError (by value, no allocation).
//
// Integration with the standard errors helpers (Is/As/Unwrap) and with the
// Cause() convention of github.com/pkg/errors is supported on both forms.
package errchain
