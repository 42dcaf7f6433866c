package pathcodec

import (
	"testing"

	"github.com/lineality/padnetotp/padtypes"
)

func TestLinePathLayout(t *testing.T) {
	idx, err := padtypes.NewStandardIndex(0, 0, 0, 2)
	if err != nil {
		t.Fatalf("NewStandardIndex: %v", err)
	}
	got := LinePath("/root", idx)
	want := "/root/padnest_0_000/pad_000/page_000/line_002"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPageAndPadDigestPaths(t *testing.T) {
	if got, want := PageDigestPath("/root", padtypes.Standard4Byte, 0, 1, 2), "/root/padnest_0_000/pad_001/hash_page_002"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := PadDigestPath("/root", padtypes.Standard4Byte, 0, 1), "/root/padnest_0_000/hash_pad_001"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseLinePathRoundTrips(t *testing.T) {
	idx, _ := padtypes.NewStandardIndex(3, 4, 5, 6)
	segments := []string{
		NestDir(idx.Width, idx.Nest),
		PadDir(idx.Width, idx.Pad),
		PageDir(idx.Width, idx.Page),
		LineFile(idx.Width, idx.Line),
	}
	parsed, err := ParseLinePath(segments)
	if err != nil {
		t.Fatalf("ParseLinePath: %v", err)
	}
	if !parsed.Equal(idx) {
		t.Fatalf("got %s, want %s", parsed, idx)
	}
}

func TestParseLinePathRejectsMalformed(t *testing.T) {
	cases := [][]string{
		{"padnest_0_000", "pad_000", "page_000"},
		{"not_a_nest", "pad_000", "page_000", "line_000"},
		{"padnest_0_000", "not_a_pad", "page_000", "line_000"},
		{"padnest_0_000", "pad_000", "page_000", "line_abc"},
	}
	for _, c := range cases {
		if _, err := ParseLinePath(c); err == nil {
			t.Fatalf("expected error for %v", c)
		}
	}
}
