// Package pathcodec maps a padtypes.PadIndex to and from the on-disk
// layout rooted at a padset directory, generalizing the teacher's
// pathMapper (registry/storage/paths.go): path construction and parsing
// are pure functions kept in one place so the layout can change without
// touching the components that only need an index.
package pathcodec

import (
	"fmt"
	"path"
	"regexp"
	"strconv"

	"github.com/lineality/padnetotp/padtypes"
)

// CoreGeneration is the nest-generation digit used by this module. The
// layout reserves a single decimal digit for a future nest-rotation
// scheme; the core algorithms only ever produce and consume generation
// 0.
const CoreGeneration = 0

var (
	nestRe = regexp.MustCompile(`^padnest_([0-9])_([0-9]{3,5})$`)
	padRe  = regexp.MustCompile(`^pad_([0-9]{3,5})$`)
	pageRe = regexp.MustCompile(`^page_([0-9]{3,5})$`)
	lineRe = regexp.MustCompile(`^line_([0-9]{3,5})$`)

	hashPageRe = regexp.MustCompile(`^hash_page_([0-9]{3,5})$`)
	hashPadRe  = regexp.MustCompile(`^hash_pad_([0-9]{3,5})$`)
)

func fmtComponent(width padtypes.WidthClass, v int) string {
	digits := 3
	if width == padtypes.Extended {
		digits = 5
	}
	return fmt.Sprintf("%0*d", digits, v)
}

// NestDir returns the path segment for the given nest component, e.g.
// "padnest_0_000".
func NestDir(width padtypes.WidthClass, nest int) string {
	return fmt.Sprintf("padnest_%d_%s", CoreGeneration, fmtComponent(width, nest))
}

// PadDir returns the path segment for the given pad component.
func PadDir(width padtypes.WidthClass, pad int) string {
	return fmt.Sprintf("pad_%s", fmtComponent(width, pad))
}

// PageDir returns the path segment for the given page component.
func PageDir(width padtypes.WidthClass, page int) string {
	return fmt.Sprintf("page_%s", fmtComponent(width, page))
}

// LineFile returns the path segment for the given line component.
func LineFile(width padtypes.WidthClass, line int) string {
	return fmt.Sprintf("line_%s", fmtComponent(width, line))
}

// LinePath returns the full line path for idx, rooted at root:
// padnest_<gen>_<N>/pad_<P>/page_<PG>/line_<L>.
func LinePath(root string, idx padtypes.PadIndex) string {
	return path.Join(root,
		NestDir(idx.Width, idx.Nest),
		PadDir(idx.Width, idx.Pad),
		PageDir(idx.Width, idx.Page),
		LineFile(idx.Width, idx.Line),
	)
}

// PageDigestPath returns the page digest path:
// padnest_<gen>_<N>/pad_<P>/hash_page_<PG>.
func PageDigestPath(root string, width padtypes.WidthClass, nest, pad, page int) string {
	return path.Join(root,
		NestDir(width, nest),
		PadDir(width, pad),
		fmt.Sprintf("hash_page_%s", fmtComponent(width, page)),
	)
}

// PadDigestPath returns the pad digest path:
// padnest_<gen>_<N>/hash_pad_<P>.
func PadDigestPath(root string, width padtypes.WidthClass, nest, pad int) string {
	return path.Join(root,
		NestDir(width, nest),
		fmt.Sprintf("hash_pad_%s", fmtComponent(width, pad)),
	)
}

// NestDirPath returns the nest directory path.
func NestDirPath(root string, width padtypes.WidthClass, nest int) string {
	return path.Join(root, NestDir(width, nest))
}

// PadDirPath returns the pad directory path.
func PadDirPath(root string, width padtypes.WidthClass, nest, pad int) string {
	return path.Join(root, NestDir(width, nest), PadDir(width, pad))
}

// ParseLinePath parses a line path segment sequence back into a
// PadIndex, rejecting anything that does not conform to the layout.
// segments must be exactly the four path components following root:
// ["padnest_<gen>_<N>", "pad_<P>", "page_<PG>", "line_<L>"].
func ParseLinePath(segments []string) (padtypes.PadIndex, error) {
	if len(segments) != 4 {
		return padtypes.PadIndex{}, fmt.Errorf("pathcodec: expected 4 path segments, got %d", len(segments))
	}

	nm := nestRe.FindStringSubmatch(segments[0])
	if nm == nil {
		return padtypes.PadIndex{}, fmt.Errorf("pathcodec: %q is not a nest directory", segments[0])
	}
	pm := padRe.FindStringSubmatch(segments[1])
	if pm == nil {
		return padtypes.PadIndex{}, fmt.Errorf("pathcodec: %q is not a pad directory", segments[1])
	}
	pgm := pageRe.FindStringSubmatch(segments[2])
	if pgm == nil {
		return padtypes.PadIndex{}, fmt.Errorf("pathcodec: %q is not a page directory", segments[2])
	}
	lm := lineRe.FindStringSubmatch(segments[3])
	if lm == nil {
		return padtypes.PadIndex{}, fmt.Errorf("pathcodec: %q is not a line file", segments[3])
	}

	digits := len(nm[2])
	if digits != 3 && digits != 5 {
		return padtypes.PadIndex{}, fmt.Errorf("pathcodec: %q has an unsupported component width", segments[0])
	}
	for _, c := range []string{pm[1], pgm[1], lm[1]} {
		if len(c) != digits {
			return padtypes.PadIndex{}, fmt.Errorf("pathcodec: %v mixes component widths", segments)
		}
	}

	width := padtypes.Standard4Byte
	if digits == 5 {
		width = padtypes.Extended
	}

	nest, _ := strconv.Atoi(nm[2])
	pad, _ := strconv.Atoi(pm[1])
	page, _ := strconv.Atoi(pgm[1])
	line, _ := strconv.Atoi(lm[1])

	return padtypes.PadIndex{Width: width, Nest: nest, Pad: pad, Page: page, Line: line}, nil
}

// IsLineFile reports whether name is a "line_<L>"-shaped path segment.
func IsLineFile(name string) bool {
	return lineRe.MatchString(name)
}

// IsNestDir reports whether name is a "padnest_<gen>_<N>"-shaped path
// segment.
func IsNestDir(name string) bool {
	return nestRe.MatchString(name)
}

// IsPadDir reports whether name is a "pad_<P>"-shaped path segment.
func IsPadDir(name string) bool {
	return padRe.MatchString(name)
}

// IsPageDir reports whether name is a "page_<PG>"-shaped path segment.
func IsPageDir(name string) bool {
	return pageRe.MatchString(name)
}

// IsHashPage reports whether name is a "hash_page_<PG>"-shaped segment.
func IsHashPage(name string) bool {
	return hashPageRe.MatchString(name)
}

// IsHashPad reports whether name is a "hash_pad_<P>"-shaped segment.
func IsHashPad(name string) bool {
	return hashPadRe.MatchString(name)
}
