package padtypes

import "fmt"

// Io is returned for any underlying filesystem failure that does not fall
// into one of the more specific categories below.
type Io struct {
	Path  string
	Cause error
}

func (e Io) Error() string {
	return fmt.Sprintf("padnetotp: io error at %q: %v", e.Path, e.Cause)
}

func (e Io) Unwrap() error {
	return e.Cause
}

// NotFound is returned when an operation targets a line that has already
// been consumed, or was never created.
type NotFound struct {
	Index PadIndex
}

func (e NotFound) Error() string {
	return fmt.Sprintf("padnetotp: line not found at index %s", e.Index)
}

// Scope identifies the granularity at which an integrity digest was
// computed.
type Scope string

const (
	// ScopePage identifies a page-level digest.
	ScopePage Scope = "page"
	// ScopePad identifies a pad-level digest.
	ScopePad Scope = "pad"
)

// IntegrityFailure is returned when a recomputed digest does not match
// the digest stored on disk for the given scope. Callers should treat
// this distinctly from NotFound/Io: it indicates tampering, not absence.
type IntegrityFailure struct {
	ScopeKind Scope
	Path      string
}

func (e IntegrityFailure) Error() string {
	return fmt.Sprintf("padnetotp: integrity failure at %s scope, path %q", e.ScopeKind, e.Path)
}

// PadExhausted is returned when writer mode runs out of pad material:
// either the bounds overflowed mid-stream, or the cursor found no
// remaining line at all.
type PadExhausted struct {
	Root string
}

func (e PadExhausted) Error() string {
	return fmt.Sprintf("padnetotp: pad exhausted under %q", e.Root)
}

// InvalidBounds is returned when a Bounds value is malformed, e.g. a
// component exceeds the width class's representable range.
type InvalidBounds struct {
	Bounds PadIndex
	Reason string
}

func (e InvalidBounds) Error() string {
	return fmt.Sprintf("padnetotp: invalid bounds %s: %s", e.Bounds, e.Reason)
}

// InvalidIndex is returned when a PadIndex's components fall outside its
// width class's range. No operation checks an index against a Bounds
// value, so an index beyond a padset's bounds does not produce it.
type InvalidIndex struct {
	Index  PadIndex
	Reason string
}

func (e InvalidIndex) Error() string {
	return fmt.Sprintf("padnetotp: invalid index %s: %s", e.Index, e.Reason)
}

// Rng is returned when the external random source yields fewer bytes
// than requested.
type Rng struct {
	Requested int
	Got       int
}

func (e Rng) Error() string {
	return fmt.Sprintf("padnetotp: rng underrun: requested %d bytes, got %d", e.Requested, e.Got)
}
