// Package main demonstrates usage of the scg-errchain packages.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/next-trace/scg-errchain/errchain"
	"github.com/next-trace/scg-errchain/errlog"
)

// The demo failure domain: one comparable type per variant.

type MetadataIo struct{ Path string }

func (k MetadataIo) Error() string { return fmt.Sprintf("metadata I/O error %q", k.Path) }

type CorruptMetadata struct{ Reason string }

func (k CorruptMetadata) Error() string { return "corrupt metadata file: " + k.Reason }

// NewCorruptMetadata is the constructor form used with Bailf/Ensuref.
func NewCorruptMetadata(reason string) CorruptMetadata { return CorruptMetadata{Reason: reason} }

func validateMetadata(path, metadata string) error {
	if err := errchain.Ensuref(metadata != "", NewCorruptMetadata,
		"metadata file %q is empty", path); err != nil {
		return err
	}

	if err := errchain.Ensuref(len(metadata) > 100, NewCorruptMetadata,
		"metadata file %q is too long", path); err != nil {
		return err
	}

	return errchain.Bailf(NewCorruptMetadata, "validation isn't actually implemented")
}

func load(metadataPath string) error {
	raw, err := os.ReadFile(metadataPath)
	if err = errchain.ChainErr(err, func() MetadataIo {
		return MetadataIo{Path: metadataPath}
	}); err != nil {
		return err
	}

	return validateMetadata(metadataPath, string(raw))
}

func main() {
	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	// Missing file: the ChainErr wrap tags the os error with MetadataIo.
	missing := filepath.Join(os.TempDir(), "missing.meta")
	errlog.Log(logger, "load failed", load(missing))

	// Short file: the Ensuref guard fires with CorruptMetadata.
	short := filepath.Join(os.TempDir(), "short.meta")
	if err := os.WriteFile(short, []byte("too short to be real metadata"), 0o600); err != nil {
		logger.Fatal("writing demo file", zap.Error(err))
	}
	defer func() { _ = os.Remove(short) }()

	errlog.Log(logger, "load failed", load(short))
}
