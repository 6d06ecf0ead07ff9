package errchain_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-errchain/errchain"
)

func TestRoot_PlainErrorReturnedAsIs(t *testing.T) {
	t.Parallel()

	err := errors.New("flat")
	require.Same(t, err, errchain.Root(err))
	require.Nil(t, errchain.Root(nil))
}

func TestWalk_OutermostFirstAndEarlyStop(t *testing.T) {
	t.Parallel()

	bottom := errors.New("bottom")
	mid := errchain.Wrap(bottom, layerKind{n: 1})
	top := errchain.Wrap(mid, layerKind{n: 2})

	var msgs []string
	errchain.Walk(top, func(e error) bool {
		msgs = append(msgs, e.Error())
		return true
	})
	require.Equal(t, []string{"layer 2 failed", "layer 1 failed", "bottom"}, msgs)

	var visited int
	errchain.Walk(top, func(error) bool {
		visited++
		return false
	})
	require.Equal(t, 1, visited, "Walk must stop when fn returns false")
}

func TestDepth_NilIsZero(t *testing.T) {
	t.Parallel()

	require.Zero(t, errchain.Depth(nil))
	require.Equal(t, 1, errchain.Depth(errors.New("alone")))
}

// selfRef unwraps to itself; a foreign error like this must not hang the
// walkers.
type selfRef struct{}

func (selfRef) Error() string   { return "ouroboros" }
func (s selfRef) Unwrap() error { return s }

func TestWalk_SelfReferentialChainTerminates(t *testing.T) {
	t.Parallel()

	require.Equal(t, selfRef{}, errchain.Root(selfRef{}))
	require.Equal(t, 1, errchain.Depth(selfRef{}))
}

// loopErr forms mutual cycles through its next pointer.
type loopErr struct {
	name string
	next *loopErr
}

func (l *loopErr) Error() string { return l.name }

func (l *loopErr) Unwrap() error {
	if l.next == nil {
		return nil
	}
	return l.next
}

func TestWalk_MutualCycleVisitedOnce(t *testing.T) {
	t.Parallel()

	a := &loopErr{name: "a"}
	b := &loopErr{name: "b", next: a}
	a.next = b

	var msgs []string
	errchain.Walk(a, func(e error) bool {
		msgs = append(msgs, e.Error())
		return true
	})

	require.Equal(t, []string{"a", "b"}, msgs)
	require.Equal(t, 2, errchain.Depth(a))
	require.Same(t, b, errchain.Root(a))
}

func TestDepth_DeepHonestChainStaysExact(t *testing.T) {
	t.Parallel()

	const layers = 100

	var err error = errors.New("origin")
	for i := 0; i < layers; i++ {
		err = errchain.Wrap(err, errchain.StringKind(fmt.Sprintf("layer %d", i)))
	}

	require.Equal(t, layers+1, errchain.Depth(err))
	require.EqualError(t, errchain.Root(err), "origin")
}

func TestStackTrace_OutermostCaptureWins(t *testing.T) {
	t.Parallel()

	frames := errchain.StackTrace(errors.New("no capability"))
	require.Nil(t, frames)

	err := errchain.Wrap(errors.New("inner"), layerKind{n: 3})
	frames = errchain.StackTrace(err)
	require.NotEmpty(t, frames)
	require.Contains(t, frames[0].Func, "errchain_test")
	require.Contains(t, frames[0].String(), ".go:")
}

func TestMissingMetadataFileScenario(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.meta")

	_, err := os.Open(path)
	require.Error(t, err)

	chained := errchain.ChainErr(err, func() metadataIo { return metadataIo{path: path} })

	var e errchain.Error[metadataIo]
	require.True(t, errors.As(chained, &e))
	require.Equal(t, metadataIo{path: path}, e.Kind())

	cause := e.Cause()
	require.NotNil(t, cause)
	require.ErrorIs(t, cause, fs.ErrNotExist)
	require.True(t, strings.Contains(cause.Error(), "missing.meta"),
		"cause must format to the underlying not-found message, got %q", cause.Error())
}
