// Package xorstream streams a plaintext or ciphertext file through a
// padset, XOR-ing byte-for-byte against concatenated pad lines in index
// order. WriteContinuous implements destructive writer mode (starting
// from the cursor); ReadFrom implements non-destructive reader mode
// (starting from a caller-supplied index). Both cross page, pad, and
// nest boundaries transparently via PadIndex.Increment, matching the
// "strict cleanup continuous xor" framing the original implementation's
// function names carried (padnet_writer_strict_cleanup_continuous_xor_file).
package xorstream

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/lineality/padnetotp/integrity"
	"github.com/lineality/padnetotp/internal/padctx"
	"github.com/lineality/padnetotp/linestore"
	"github.com/lineality/padnetotp/metrics"
	"github.com/lineality/padnetotp/padset"
	"github.com/lineality/padnetotp/padtypes"
	"github.com/lineality/padnetotp/pathcodec"
	storagedriver "github.com/lineality/padnetotp/storage/driver"
)

// validatedScope remembers which (nest, pad) or (nest, pad, page) scopes
// have already been validated during this single operation, so a page
// spanning multiple lines is not re-validated on every line.
type validatedScope struct {
	pages map[[3]int]bool
	pads  map[[2]int]bool
}

func newValidatedScope() *validatedScope {
	return &validatedScope{pages: map[[3]int]bool{}, pads: map[[2]int]bool{}}
}

// ensureValidated checks whether a page or pad digest exists for the
// current index's (nest, pad, page) and, if so and not yet consumed
// this operation, validates it — consuming (removing) the digest only
// in writer mode. Page-level digests take precedence over pad-level
// ones when both happen to be present.
func ensureValidated(ctx context.Context, d storagedriver.StorageDriver, root string, idx padtypes.PadIndex, bounds padtypes.Bounds, seen *validatedScope, consume bool) error {
	pageKey := [3]int{idx.Nest, idx.Pad, idx.Page}
	if !seen.pages[pageKey] {
		pagePath := pathcodec.PageDigestPath(root, idx.Width, idx.Nest, idx.Pad, idx.Page)
		if _, err := d.Stat(ctx, pagePath); err == nil {
			if err := integrity.ValidateAndConsumePage(ctx, d, root, idx.Width, idx.Nest, idx.Pad, idx.Page, bounds, consume); err != nil {
				return err
			}
			seen.pages[pageKey] = true
			return nil
		} else if _, ok := err.(storagedriver.PathNotFoundError); !ok {
			return padtypes.Io{Path: pagePath, Cause: err}
		}
		seen.pages[pageKey] = true
	}

	padKey := [2]int{idx.Nest, idx.Pad}
	if !seen.pads[padKey] {
		padPath := pathcodec.PadDigestPath(root, idx.Width, idx.Nest, idx.Pad)
		if _, err := d.Stat(ctx, padPath); err == nil {
			if err := integrity.ValidateAndConsumePad(ctx, d, root, idx.Width, idx.Nest, idx.Pad, bounds, consume); err != nil {
				return err
			}
		} else if _, ok := err.(storagedriver.PathNotFoundError); !ok {
			return padtypes.Io{Path: padPath, Cause: err}
		}
		seen.pads[padKey] = true
	}
	return nil
}

// WriteContinuous streams plaintextPath through root's padset, locating
// the starting line via the cursor, XOR-ing each line's bytes against
// up to lineLength plaintext bytes, writing the result to ciphertextPath,
// and destructively consuming (load-and-delete) every line it touches.
// It returns the index it started from — which must be communicated
// out-of-band to the decrypting party — and the total number of bytes
// written.
func WriteContinuous(ctx context.Context, d storagedriver.StorageDriver, root string, bounds padtypes.Bounds, lineLength int, plaintextPath, ciphertextPath string) (padtypes.PadIndex, int64, error) {
	start := time.Now()
	defer metrics.XorLatency.WithValues("writer").UpdateSince(start)

	startIdx, ok, err := padset.FindFirstAvailableLine(ctx, d, root, bounds.Width)
	if err != nil {
		return padtypes.PadIndex{}, 0, err
	}
	if !ok {
		return padtypes.PadIndex{}, 0, padtypes.PadExhausted{Root: root}
	}

	in, err := os.Open(plaintextPath)
	if err != nil {
		return padtypes.PadIndex{}, 0, padtypes.Io{Path: plaintextPath, Cause: err}
	}
	defer in.Close()

	out, err := os.Create(ciphertextPath)
	if err != nil {
		return padtypes.PadIndex{}, 0, padtypes.Io{Path: ciphertextPath, Cause: err}
	}
	defer out.Close()

	seen := newValidatedScope()
	current := startIdx
	var total int64
	buf := make([]byte, lineLength)
	exhausted := false

	for {
		n, err := io.ReadFull(in, buf)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return startIdx, total, padtypes.Io{Path: plaintextPath, Cause: err}
		}
		if n == 0 {
			break
		}
		if exhausted {
			return startIdx, total, padtypes.PadExhausted{Root: root}
		}

		// Only now that there is plaintext to encrypt do we touch the
		// pad: this keeps consumption at exactly ceil(total/L) lines,
		// never one more than the input required.
		if err := ensureValidated(ctx, d, root, current, bounds, seen, true); err != nil {
			return startIdx, total, err
		}
		line, err := linestore.LoadAndDelete(ctx, d, root, current)
		if err != nil {
			return startIdx, total, err
		}
		metrics.LinesConsumed.Inc()

		cipher := make([]byte, n)
		for i := 0; i < n; i++ {
			cipher[i] = buf[i] ^ line[i]
		}
		if _, werr := out.Write(cipher); werr != nil {
			return startIdx, total, padtypes.Io{Path: ciphertextPath, Cause: werr}
		}
		total += int64(n)

		if n < lineLength {
			break
		}

		next, ok := current.Increment(bounds)
		if !ok {
			// The last line of the padset is used up; this is only an
			// error if more plaintext follows.
			exhausted = true
			continue
		}
		current = next
	}

	padctx.GetLogger(ctx).Infof("xorstream: writer consumed through %s, wrote %d bytes", current, total)
	return startIdx, total, nil
}

// ReadFrom is the non-destructive, caller-supplied-start analogue of
// WriteContinuous: it reads ciphertextPath, XORs it against the same
// pad lines (read, not consumed) starting at start, and writes the
// recovered plaintext to plaintextPath. Validation still runs when a
// digest is present, but digests are never removed — reader-side pads
// may be validated repeatedly across operations.
func ReadFrom(ctx context.Context, d storagedriver.StorageDriver, root string, bounds padtypes.Bounds, lineLength int, ciphertextPath, plaintextPath string, start padtypes.PadIndex) (int64, error) {
	readStart := time.Now()
	defer metrics.XorLatency.WithValues("reader").UpdateSince(readStart)

	in, err := os.Open(ciphertextPath)
	if err != nil {
		return 0, padtypes.Io{Path: ciphertextPath, Cause: err}
	}
	defer in.Close()

	out, err := os.Create(plaintextPath)
	if err != nil {
		return 0, padtypes.Io{Path: plaintextPath, Cause: err}
	}
	defer out.Close()

	seen := newValidatedScope()
	current := start
	var total int64
	buf := make([]byte, lineLength)
	exhausted := false

	for {
		n, err := io.ReadFull(in, buf)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return total, padtypes.Io{Path: ciphertextPath, Cause: err}
		}
		if n == 0 {
			break
		}
		if exhausted {
			return total, padtypes.PadExhausted{Root: root}
		}

		// Only now that there is ciphertext to decrypt do we touch the
		// pad, so the reader reconstructs exactly the lines the writer
		// consumed and no more.
		if err := ensureValidated(ctx, d, root, current, bounds, seen, false); err != nil {
			return total, err
		}
		line, err := linestore.Read(ctx, d, root, current)
		if err != nil {
			return total, err
		}

		plain := make([]byte, n)
		for i := 0; i < n; i++ {
			plain[i] = buf[i] ^ line[i]
		}
		if _, werr := out.Write(plain); werr != nil {
			return total, padtypes.Io{Path: plaintextPath, Cause: werr}
		}
		total += int64(n)

		if n < lineLength {
			break
		}

		next, ok := current.Increment(bounds)
		if !ok {
			// The last line of the padset is used up; this is only an
			// error if more ciphertext follows.
			exhausted = true
			continue
		}
		current = next
	}

	padctx.GetLogger(ctx).Infof("xorstream: reader reconstructed %d bytes from %s", total, start)
	return total, nil
}
