package padtypes

import "testing"

func TestNewStandardIndexRejectsOutOfRange(t *testing.T) {
	if _, err := NewStandardIndex(0, 0, 0, 1000); err == nil {
		t.Fatal("expected an error for a line component above 999")
	}
	if _, err := NewStandardIndex(0, 0, 0, -1); err == nil {
		t.Fatal("expected an error for a negative component")
	}
	idx, err := NewStandardIndex(1, 2, 3, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Nest != 1 || idx.Pad != 2 || idx.Page != 3 || idx.Line != 4 {
		t.Fatalf("unexpected index: %+v", idx)
	}
}

func TestPadIndexCompare(t *testing.T) {
	a, _ := NewStandardIndex(0, 0, 0, 1)
	b, _ := NewStandardIndex(0, 0, 0, 2)
	if a.Compare(b) >= 0 {
		t.Fatalf("expected a < b")
	}
	if b.Compare(a) <= 0 {
		t.Fatalf("expected b > a")
	}
	if !a.Equal(a) {
		t.Fatalf("expected a == a")
	}
}

func TestPadIndexIncrementCarries(t *testing.T) {
	bounds, _ := NewStandardIndex(0, 0, 1, 2)

	idx, _ := NewStandardIndex(0, 0, 0, 2)
	next, ok := idx.Increment(bounds)
	if !ok {
		t.Fatalf("expected increment to succeed")
	}
	if next.Page != 1 || next.Line != 0 {
		t.Fatalf("expected carry into page, got %s", next)
	}

	last, _ := NewStandardIndex(0, 0, 1, 2)
	_, ok = last.Increment(bounds)
	if ok {
		t.Fatalf("expected overflow at bounds")
	}
}

func TestPadIndexIncrementCarriesAcrossPadAndNest(t *testing.T) {
	bounds, _ := NewStandardIndex(1, 1, 0, 0)

	idx, _ := NewStandardIndex(0, 1, 0, 0)
	next, ok := idx.Increment(bounds)
	if !ok {
		t.Fatalf("expected increment to succeed")
	}
	if next.Nest != 1 || next.Pad != 0 {
		t.Fatalf("expected carry into nest, got %s", next)
	}
}
