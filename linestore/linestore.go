// Package linestore persists one fixed-size random line per file,
// reading it non-destructively or destructively consuming it, built on
// top of storage/driver the way the teacher's blob store is built on
// top of its storage driver abstraction rather than talking to os
// directly.
package linestore

import (
	"context"

	"github.com/lineality/padnetotp/internal/padctx"
	"github.com/lineality/padnetotp/padtypes"
	"github.com/lineality/padnetotp/pathcodec"
	storagedriver "github.com/lineality/padnetotp/storage/driver"
)

// Read returns the entire content of the line at idx under root,
// without removing it. Any number of callers may Read the same line
// concurrently.
func Read(ctx context.Context, d storagedriver.StorageDriver, root string, idx padtypes.PadIndex) ([]byte, error) {
	p := pathcodec.LinePath(root, idx)
	content, err := d.GetContent(ctx, p)
	if err != nil {
		if _, ok := err.(storagedriver.PathNotFoundError); ok {
			return nil, padtypes.NotFound{Index: idx}
		}
		return nil, padtypes.Io{Path: p, Cause: err}
	}
	padctx.WithIndexField(ctx, idx).Debugf("linestore: read %q", p)
	return content, nil
}

// LoadAndDelete reads the line at idx and then removes it. The file is
// only removed after a complete, successful read; if the read fails the
// file is left untouched. If the removal itself fails, the operation
// fails and the bytes already read are discarded — the caller must not
// trust a partially-deleted line as consumed.
func LoadAndDelete(ctx context.Context, d storagedriver.StorageDriver, root string, idx padtypes.PadIndex) ([]byte, error) {
	content, err := Read(ctx, d, root, idx)
	if err != nil {
		return nil, err
	}

	p := pathcodec.LinePath(root, idx)
	if err := d.Delete(ctx, p); err != nil {
		if _, ok := err.(storagedriver.PathNotFoundError); ok {
			// Another caller raced us; the file is gone either way, but
			// this operation did not itself observe a clean delete.
			return nil, padtypes.NotFound{Index: idx}
		}
		return nil, padtypes.Io{Path: p, Cause: err}
	}
	padctx.WithIndexField(ctx, idx).Debugf("linestore: consumed %q", p)
	return content, nil
}
