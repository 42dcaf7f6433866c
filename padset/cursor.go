package padset

import (
	"context"
	"path"

	"github.com/lineality/padnetotp/padtypes"
	"github.com/lineality/padnetotp/pathcodec"

	storagedriver "github.com/lineality/padnetotp/storage/driver"
)

// FindFirstAvailableLine walks root in the order implied by the path
// codec (nest-major, line-minor) and returns the first index whose line
// file still exists. It returns ok=false if the padset is fully
// consumed. Listings are always freshly sorted — never cached across
// operations and never trusted to arrive in directory-entry order —
// mirroring the teacher's walk.go, which sorts before recursing for the
// same determinism reason.
func FindFirstAvailableLine(ctx context.Context, d storagedriver.StorageDriver, root string, width padtypes.WidthClass) (padtypes.PadIndex, bool, error) {
	nests, err := list(ctx, d, root)
	if err != nil {
		return padtypes.PadIndex{}, false, err
	}
	for _, nestName := range nests {
		if !pathcodec.IsNestDir(nestName) {
			continue
		}
		nestPath := path.Join(root, nestName)
		pads, err := list(ctx, d, nestPath)
		if err != nil {
			return padtypes.PadIndex{}, false, err
		}
		for _, padName := range pads {
			if !pathcodec.IsPadDir(padName) {
				continue
			}
			padPath := path.Join(nestPath, padName)
			pages, err := list(ctx, d, padPath)
			if err != nil {
				return padtypes.PadIndex{}, false, err
			}
			for _, pageName := range pages {
				if !pathcodec.IsPageDir(pageName) {
					continue
				}
				pagePath := path.Join(padPath, pageName)
				lines, err := list(ctx, d, pagePath)
				if err != nil {
					return padtypes.PadIndex{}, false, err
				}
				for _, lineName := range lines {
					if !pathcodec.IsLineFile(lineName) {
						continue
					}
					idx, err := pathcodec.ParseLinePath([]string{nestName, padName, pageName, lineName})
					if err != nil {
						continue
					}
					if idx.Width != width {
						continue
					}
					return idx, true, nil
				}
			}
		}
	}
	return padtypes.PadIndex{}, false, nil
}

// list returns the sorted direct descendants of p, treating a missing
// directory as an empty listing rather than an error — an empty or not-
// yet-created padset simply has no lines to find.
func list(ctx context.Context, d storagedriver.StorageDriver, p string) ([]string, error) {
	entries, err := d.List(ctx, p)
	if err != nil {
		if _, ok := err.(storagedriver.PathNotFoundError); ok {
			return nil, nil
		}
		return nil, padtypes.Io{Path: p, Cause: err}
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = path.Base(e)
	}
	return names, nil
}
