package errchain

import (
	"github.com/next-trace/scg-errchain/contract"
)

// ChainErr replaces a failure with a new Error whose kind is the callback's
// output and whose cause is the original failure. The callback learns nothing
// about the original beyond the fact that one occurred.
//
// A nil err means the operation succeeded: ChainErr returns nil and the
// success path is left untouched. For non-nil err the result is always a
// non-nil Error[K]; the cause is never dropped.
func ChainErr[K contract.Kind](err error, build func() K) error {
	if err == nil {
		return nil
	}

	return Error[K]{inner: newChain(err, build(), 1)}
}

// ChainInspectErr is ChainErr, except the callback receives the original
// failure before it is recorded as cause, so the new kind can be selected
// based on what actually went wrong.
func ChainInspectErr[K contract.Kind](err error, build func(error) K) error {
	if err == nil {
		return nil
	}

	return Error[K]{inner: newChain(err, build(err), 1)}
}

// ReplaceErr is ChainInspectErr for callbacks that take ownership of the
// original failure (stash it, dissect it, pass it along). The original is
// still recorded as the cause of the result, so the chain stays intact
// regardless of what the callback does with its argument.
func ReplaceErr[K contract.Kind](err error, build func(error) K) error {
	if err == nil {
		return nil
	}

	return Error[K]{inner: newChain(err, build(err), 1)}
}
