// Package padtypes defines the address and error vocabulary shared by
// every layer of a padset: PadIndex, Bounds, WidthClass, ValidationLevel,
// and the typed errors. It has no dependency on any other package in this
// module, so both the root façade and the packages it delegates to
// (padset, linestore, xorstream, integrity, pathcodec) can import it
// without forming a cycle.
package padtypes

import "fmt"

// WidthClass fixes the string field width used when rendering each
// component of a PadIndex to a path segment. Standard4Byte is the only
// width class exercised by the builder and the XOR drivers; Extended is
// reserved on the type for a wider-range layout. The builder and the XOR
// drivers never construct it; only pathcodec.ParseLinePath yields it, for
// paths with five-digit components.
type WidthClass int

const (
	// Standard4Byte renders each PadIndex component as a zero-padded
	// 3-digit decimal (0-999), with the nest component additionally
	// prefixed by a single generation digit at the path-codec layer.
	Standard4Byte WidthClass = iota
	// Extended is reserved for a wider decimal width; unused by the core
	// algorithms.
	Extended
)

// digitWidth returns the number of decimal digits used to render one
// component under this width class.
func (w WidthClass) digitWidth() int {
	switch w {
	case Extended:
		return 5
	default:
		return 3
	}
}

// Max returns the largest value representable by one component under
// this width class (e.g. 999 for Standard4Byte).
func (w WidthClass) Max() int {
	n := 1
	for i := 0; i < w.digitWidth(); i++ {
		n *= 10
	}
	return n - 1
}

func (w WidthClass) String() string {
	switch w {
	case Extended:
		return "extended"
	default:
		return "standard4byte"
	}
}

// PadIndex is a compound [nest, pad, page, line] address into a padset.
// Components are lexicographic little-endian in effect: line advances
// fastest, nest slowest. A PadIndex is only meaningful when interpreted
// against a Bounds PadIndex of the same width class.
type PadIndex struct {
	Width WidthClass
	Nest  int
	Pad   int
	Page  int
	Line  int
}

// Bounds is a PadIndex used to express the inclusive maximum of each
// component within a padset.
type Bounds = PadIndex

// NewStandardIndex constructs a Standard4Byte-width PadIndex, validating
// that every component fits the width class's representable range.
func NewStandardIndex(nest, pad, page, line int) (PadIndex, error) {
	idx := PadIndex{Width: Standard4Byte, Nest: nest, Pad: pad, Page: page, Line: line}
	if err := idx.validateComponents(); err != nil {
		return PadIndex{}, err
	}
	return idx, nil
}

func (idx PadIndex) validateComponents() error {
	max := idx.Width.Max()
	for _, c := range []struct {
		name string
		v    int
	}{{"nest", idx.Nest}, {"pad", idx.Pad}, {"page", idx.Page}, {"line", idx.Line}} {
		if c.v < 0 || c.v > max {
			return InvalidIndex{Index: idx, Reason: fmt.Sprintf("%s component %d out of range [0,%d]", c.name, c.v, max)}
		}
	}
	return nil
}

// String renders the index for logging and error messages.
func (idx PadIndex) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", idx.Nest, idx.Pad, idx.Page, idx.Line)
}

// Equal reports whether two indices address the same line.
func (idx PadIndex) Equal(other PadIndex) bool {
	return idx.Compare(other) == 0
}

// Compare returns -1, 0, or 1 according to lexicographic order over
// (nest, pad, page, line).
func (idx PadIndex) Compare(other PadIndex) int {
	for _, pair := range [][2]int{
		{idx.Nest, other.Nest},
		{idx.Pad, other.Pad},
		{idx.Page, other.Page},
		{idx.Line, other.Line},
	} {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}

// Increment advances idx to the next index under the given bounds, with
// carry: line++; if line exceeds bounds.Line, line resets to 0 and
// page++; the carry propagates through page into pad and pad into nest.
// If nest itself overflows bounds.Nest, Increment returns ok=false and
// the returned index is meaningless.
func (idx PadIndex) Increment(bounds Bounds) (next PadIndex, ok bool) {
	next = idx
	next.Line++
	if next.Line > bounds.Line {
		next.Line = 0
		next.Page++
	}
	if next.Page > bounds.Page {
		next.Page = 0
		next.Pad++
	}
	if next.Pad > bounds.Pad {
		next.Pad = 0
		next.Nest++
	}
	if next.Nest > bounds.Nest {
		return PadIndex{}, false
	}
	return next, true
}

// ValidationLevel selects the integrity-digest granularity maintained
// for a padset. It is recorded implicitly by the presence or absence of
// digest files on disk, never stored as its own artifact.
type ValidationLevel int

const (
	// NoValidation builds a padset with no digest files at all.
	NoValidation ValidationLevel = iota
	// PageLevel writes one digest per page.
	PageLevel
	// PadLevel writes one digest per pad.
	PadLevel
)

func (v ValidationLevel) String() string {
	switch v {
	case PageLevel:
		return "page"
	case PadLevel:
		return "pad"
	default:
		return "none"
	}
}
