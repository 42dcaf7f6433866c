// Package integrity computes and verifies the padset's tamper-evidence
// digests at page and pad granularity, using opencontainers/go-digest
// for the hash type the way the teacher's blobwriter uses digest.Digest
// to identify blob content.
package integrity

import (
	"context"

	"github.com/opencontainers/go-digest"

	"github.com/lineality/padnetotp/internal/padctx"
	"github.com/lineality/padnetotp/metrics"
	"github.com/lineality/padnetotp/padtypes"
	"github.com/lineality/padnetotp/pathcodec"
	storagedriver "github.com/lineality/padnetotp/storage/driver"
)

// Algorithm is the digest algorithm used for every padset integrity
// digest. A concrete 256-bit collision-resistant hash, rendered as
// lowercase hex by digest.Digest.Encoded().
const Algorithm = digest.SHA256

// BuildPageDigest reads each line l=0..bounds.Line in page (nest, pad,
// page) in order, feeds the raw bytes into the digester, and writes the
// resulting hex digest to the page digest path.
func BuildPageDigest(ctx context.Context, d storagedriver.StorageDriver, root string, width padtypes.WidthClass, nest, pad, page int, bounds padtypes.Bounds) error {
	digester := Algorithm.Digester()
	for l := 0; l <= bounds.Line; l++ {
		idx := padtypes.PadIndex{Width: width, Nest: nest, Pad: pad, Page: page, Line: l}
		content, err := d.GetContent(ctx, pathcodec.LinePath(root, idx))
		if err != nil {
			return padtypes.Io{Path: pathcodec.LinePath(root, idx), Cause: err}
		}
		if _, err := digester.Hash().Write(content); err != nil {
			return padtypes.Io{Path: pathcodec.LinePath(root, idx), Cause: err}
		}
	}

	p := pathcodec.PageDigestPath(root, width, nest, pad, page)
	if err := d.PutContent(ctx, p, []byte(digester.Digest().Encoded()+"\n")); err != nil {
		return padtypes.Io{Path: p, Cause: err}
	}
	return nil
}

// BuildPadDigest reads pages pg=0..bounds.Page in order, within each
// page reading lines l=0..bounds.Line in order, feeds them into the
// digester page-major line-minor, and writes the hex digest to the pad
// digest path.
func BuildPadDigest(ctx context.Context, d storagedriver.StorageDriver, root string, width padtypes.WidthClass, nest, pad int, bounds padtypes.Bounds) error {
	digester := Algorithm.Digester()
	for pg := 0; pg <= bounds.Page; pg++ {
		for l := 0; l <= bounds.Line; l++ {
			idx := padtypes.PadIndex{Width: width, Nest: nest, Pad: pad, Page: pg, Line: l}
			content, err := d.GetContent(ctx, pathcodec.LinePath(root, idx))
			if err != nil {
				return padtypes.Io{Path: pathcodec.LinePath(root, idx), Cause: err}
			}
			if _, err := digester.Hash().Write(content); err != nil {
				return padtypes.Io{Path: pathcodec.LinePath(root, idx), Cause: err}
			}
		}
	}

	p := pathcodec.PadDigestPath(root, width, nest, pad)
	if err := d.PutContent(ctx, p, []byte(digester.Digest().Encoded()+"\n")); err != nil {
		return padtypes.Io{Path: p, Cause: err}
	}
	return nil
}

// ValidateAndConsumePage recomputes the page digest from current
// on-disk content and compares it to the stored digest. On match, it
// returns nil and, when consume is true, removes the digest file
// (committing to "page is intact and about to be consumed"); with
// consume false the digest file is left in place. On mismatch, it fails with
// IntegrityFailure and leaves the digest file in place. If the digest
// file is absent, validation vacuously passes — the padset was built at
// NoValidation, or this page was already validated and consumed.
func ValidateAndConsumePage(ctx context.Context, d storagedriver.StorageDriver, root string, width padtypes.WidthClass, nest, pad, page int, bounds padtypes.Bounds, consume bool) error {
	p := pathcodec.PageDigestPath(root, width, nest, pad, page)
	stored, err := d.GetContent(ctx, p)
	if err != nil {
		if _, ok := err.(storagedriver.PathNotFoundError); ok {
			return nil
		}
		return padtypes.Io{Path: p, Cause: err}
	}

	digester := Algorithm.Digester()
	for l := 0; l <= bounds.Line; l++ {
		idx := padtypes.PadIndex{Width: width, Nest: nest, Pad: pad, Page: page, Line: l}
		content, err := d.GetContent(ctx, pathcodec.LinePath(root, idx))
		if err != nil {
			return padtypes.Io{Path: pathcodec.LinePath(root, idx), Cause: err}
		}
		if _, err := digester.Hash().Write(content); err != nil {
			return padtypes.Io{Path: pathcodec.LinePath(root, idx), Cause: err}
		}
	}

	if !matches(stored, digester.Digest()) {
		metrics.IntegrityFailures.WithValues(string(padtypes.ScopePage)).Inc()
		padctx.GetLogger(ctx).Warnf("integrity: page digest mismatch at %q", p)
		return padtypes.IntegrityFailure{ScopeKind: padtypes.ScopePage, Path: p}
	}

	if consume {
		if err := d.Delete(ctx, p); err != nil {
			return padtypes.Io{Path: p, Cause: err}
		}
	}
	return nil
}

// ValidateAndConsumePad is the pad-granularity analogue of
// ValidateAndConsumePage.
func ValidateAndConsumePad(ctx context.Context, d storagedriver.StorageDriver, root string, width padtypes.WidthClass, nest, pad int, bounds padtypes.Bounds, consume bool) error {
	p := pathcodec.PadDigestPath(root, width, nest, pad)
	stored, err := d.GetContent(ctx, p)
	if err != nil {
		if _, ok := err.(storagedriver.PathNotFoundError); ok {
			return nil
		}
		return padtypes.Io{Path: p, Cause: err}
	}

	digester := Algorithm.Digester()
	for pg := 0; pg <= bounds.Page; pg++ {
		for l := 0; l <= bounds.Line; l++ {
			idx := padtypes.PadIndex{Width: width, Nest: nest, Pad: pad, Page: pg, Line: l}
			content, err := d.GetContent(ctx, pathcodec.LinePath(root, idx))
			if err != nil {
				return padtypes.Io{Path: pathcodec.LinePath(root, idx), Cause: err}
			}
			if _, err := digester.Hash().Write(content); err != nil {
				return padtypes.Io{Path: pathcodec.LinePath(root, idx), Cause: err}
			}
		}
	}

	if !matches(stored, digester.Digest()) {
		metrics.IntegrityFailures.WithValues(string(padtypes.ScopePad)).Inc()
		padctx.GetLogger(ctx).Warnf("integrity: pad digest mismatch at %q", p)
		return padtypes.IntegrityFailure{ScopeKind: padtypes.ScopePad, Path: p}
	}

	if consume {
		if err := d.Delete(ctx, p); err != nil {
			return padtypes.Io{Path: p, Cause: err}
		}
	}
	return nil
}

// matches compares a stored digest file's contents (tolerating a
// trailing newline) against a freshly computed digest.
func matches(stored []byte, computed digest.Digest) bool {
	s := string(stored)
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s == computed.Encoded()
}
