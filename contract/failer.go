// Package contract exposes the minimal failure interfaces used by other packages.
//
// Implementations must keep errors immutable after construction and support
// errors.Unwrap for proper interoperability with standard error helpers.
package contract

// Failer is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Render the human-readable message via Error().
//   - Return the direct predecessor from Cause(), or nil when there is none.
//   - Return the raw program counters captured at construction from Stack(),
//     or nil when no stack was captured. The returned slice must be safe for
//     the caller to keep; NEVER return the internal slice directly.
//
// The interface intentionally contains only read accessors to keep the API
// surface minimal: a failure value never changes once built.
type Failer interface {
	error
	Cause() error
	Stack() []uintptr
}

// Kind constrains the error-kind types an Error container can carry.
//
// A kind is a comparable value from a closed set of failure variants. Its
// Error method formats the human-readable message for the variant,
// interpolating any payload fields. Equality between kinds is plain ==,
// which covers both the variant identity and the payload.
//
// Constructing a kind must never fail and kinds must never be mutated.
type Kind interface {
	comparable
	error
}
