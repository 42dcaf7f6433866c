package padnetotp

import "github.com/lineality/padnetotp/padtypes"

// The error taxonomy is re-exported from padtypes as aliases for the same
// reason the PadIndex family is: every internal package depends on
// padtypes directly, and the root package only aggregates it for callers
// of the façade in api.go.
type (
	Io               = padtypes.Io
	NotFound         = padtypes.NotFound
	Scope            = padtypes.Scope
	IntegrityFailure = padtypes.IntegrityFailure
	PadExhausted     = padtypes.PadExhausted
	InvalidBounds    = padtypes.InvalidBounds
	InvalidIndex     = padtypes.InvalidIndex
	Rng              = padtypes.Rng
)

const (
	ScopePage = padtypes.ScopePage
	ScopePad  = padtypes.ScopePad
)
