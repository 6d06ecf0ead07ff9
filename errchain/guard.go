package errchain

import (
	"fmt"

	"github.com/next-trace/scg-errchain/contract"
)

// Bail builds a ready-to-return failure from a kind. The intended call shape
// is an immediate return:
//
//	return errchain.Bail(ErrKindCorrupt{Path: path})
//
// The result is always non-nil.
func Bail[K contract.Kind](kind K) error {
	return Error[K]{inner: newChain(nil, kind, 1)}
}

// Bailf is Bail for kind variants carrying a single message string: ctor is
// applied to the formatted arguments and the result wrapped as with Bail.
//
//	return errchain.Bailf(NewCorruptMetadata, "checksum mismatch at %d", off)
func Bailf[K contract.Kind](ctor func(string) K, format string, args ...any) error {
	return Error[K]{inner: newChain(nil, ctor(fmt.Sprintf(format, args...)), 1)}
}

// Ensure returns nil when ok holds, otherwise a failure built as with Bail.
// The condition is an ordinary bool argument, so any side effects in its
// expression happen exactly once at the call site:
//
//	if err := errchain.Ensure(len(meta) > 100, kind); err != nil {
//		return err
//	}
func Ensure[K contract.Kind](ok bool, kind K) error {
	if ok {
		return nil
	}

	return Error[K]{inner: newChain(nil, kind, 1)}
}

// Ensuref is Ensure with the Bailf constructor form. Formatting only happens
// on the failure path.
func Ensuref[K contract.Kind](ok bool, ctor func(string) K, format string, args ...any) error {
	if ok {
		return nil
	}

	return Error[K]{inner: newChain(nil, ctor(fmt.Sprintf(format, args...)), 1)}
}
