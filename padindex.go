package padnetotp

import "github.com/lineality/padnetotp/padtypes"

// PadIndex, Bounds, WidthClass and ValidationLevel are re-exported from
// padtypes as aliases so callers of the root façade never need to import
// padtypes themselves, while every internal package (padset, linestore,
// xorstream, integrity, pathcodec) depends only on padtypes and never on
// this package — avoiding the import cycle a direct dependency here would
// otherwise create with api.go.
type (
	PadIndex        = padtypes.PadIndex
	Bounds          = padtypes.Bounds
	WidthClass      = padtypes.WidthClass
	ValidationLevel = padtypes.ValidationLevel
)

const (
	Standard4Byte = padtypes.Standard4Byte
	Extended      = padtypes.Extended

	NoValidation = padtypes.NoValidation
	PageLevel    = padtypes.PageLevel
	PadLevel     = padtypes.PadLevel
)

// NewStandardIndex constructs a Standard4Byte-width PadIndex, validating
// that every component fits the width class's representable range.
func NewStandardIndex(nest, pad, page, line int) (PadIndex, error) {
	return padtypes.NewStandardIndex(nest, pad, page, line)
}
