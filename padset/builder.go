// Package padset materializes a padset directory tree (Build) and walks
// an existing one to find the first remaining line (FindFirstAvailableLine).
package padset

import (
	"context"
	"io"

	"github.com/lineality/padnetotp/integrity"
	"github.com/lineality/padnetotp/internal/padctx"
	"github.com/lineality/padnetotp/metrics"
	"github.com/lineality/padnetotp/padtypes"
	"github.com/lineality/padnetotp/pathcodec"
	storagedriver "github.com/lineality/padnetotp/storage/driver"
)

// BuildConfig holds the parameters for materializing a new padset,
// mirroring the teacher's validate-then-default DriverParameters
// pattern (registry/storage/driver/filesystem.DriverParameters) — every
// field here is required and validated rather than defaulted, since a
// padset's shape cannot be changed after the fact.
type BuildConfig struct {
	Bounds     padtypes.Bounds
	LineLength int
	Level      padtypes.ValidationLevel
}

func (c BuildConfig) validate() error {
	if c.LineLength <= 0 {
		return padtypes.InvalidBounds{Bounds: c.Bounds, Reason: "line length must be positive"}
	}
	if c.Bounds.Nest < 0 || c.Bounds.Pad < 0 || c.Bounds.Page < 0 || c.Bounds.Line < 0 {
		return padtypes.InvalidBounds{Bounds: c.Bounds, Reason: "bounds components must be non-negative"}
	}
	max := c.Bounds.Width.Max()
	if c.Bounds.Nest > max || c.Bounds.Pad > max || c.Bounds.Page > max || c.Bounds.Line > max {
		return padtypes.InvalidBounds{Bounds: c.Bounds, Reason: "bounds component exceeds width class range"}
	}
	return nil
}

// Build materializes the full directory tree of random lines, drawing
// line material from rng (an opaque external random byte source — this
// module never generates randomness itself), and writes page or pad
// digests as cfg.Level requires. On any error, Build propagates
// immediately; partial directory state is not rolled back, matching
// spec.md's "caller is expected to remove root" contract.
func Build(ctx context.Context, d storagedriver.StorageDriver, root string, cfg BuildConfig, rng io.Reader) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	bounds := cfg.Bounds
	width := bounds.Width

	for nest := 0; nest <= bounds.Nest; nest++ {
		for pad := 0; pad <= bounds.Pad; pad++ {
			for page := 0; page <= bounds.Page; page++ {
				for line := 0; line <= bounds.Line; line++ {
					idx := padtypes.PadIndex{Width: width, Nest: nest, Pad: pad, Page: page, Line: line}
					buf := make([]byte, cfg.LineLength)
					n, err := io.ReadFull(rng, buf)
					if err != nil {
						return padtypes.Rng{Requested: cfg.LineLength, Got: n}
					}
					p := pathcodec.LinePath(root, idx)
					if err := d.PutContent(ctx, p, buf); err != nil {
						return padtypes.Io{Path: p, Cause: err}
					}
					metrics.LinesBuilt.Inc()
				}
				if cfg.Level == padtypes.PageLevel {
					if err := integrity.BuildPageDigest(ctx, d, root, width, nest, pad, page, bounds); err != nil {
						return err
					}
				}
			}
			if cfg.Level == padtypes.PadLevel {
				if err := integrity.BuildPadDigest(ctx, d, root, width, nest, pad, bounds); err != nil {
					return err
				}
			}
		}
	}

	padctx.GetLogger(ctx).Infof("padset: built %s at %q, level=%s", bounds, root, cfg.Level)
	return nil
}
