package padnetotp

import (
	"bytes"
	"context"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"
)

// TestFacadeRoundTrip exercises the public API surface end to end: build a
// padset, encrypt with WriterXorFile, decrypt the result with
// ReaderXorFile on a byte-identical copy of the padset, and confirm the
// recovered bytes match.
func TestFacadeRoundTrip(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	bounds, err := NewStandardIndex(0, 0, 1, 3)
	if err != nil {
		t.Fatalf("NewStandardIndex: %v", err)
	}

	// Alice's and Bob's padsets are built from the same random material,
	// so Bob holds a byte-identical copy of the pad Alice consumes.
	material := make([]byte, 8*16) // 8 lines of 16 bytes
	if _, err := rand.Read(material); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	bobRoot := t.TempDir()
	for _, r := range []string{root, bobRoot} {
		if err := MakePadset(ctx, r, bounds, 16, PageLevel, bytes.NewReader(material)); err != nil {
			t.Fatalf("MakePadset: %v", err)
		}
	}

	dir := t.TempDir()
	plainPath := filepath.Join(dir, "plain.bin")
	cipherPath := filepath.Join(dir, "cipher.bin")
	recoveredPath := filepath.Join(dir, "recovered.bin")

	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	if err := os.WriteFile(plainPath, plaintext, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	start, n, err := WriterXorFile(ctx, root, bounds, 16, plainPath, cipherPath)
	if err != nil {
		t.Fatalf("WriterXorFile: %v", err)
	}
	if n != int64(len(plaintext)) {
		t.Fatalf("wrote %d bytes, want %d", n, len(plaintext))
	}

	got, err := ReaderXorFile(ctx, bobRoot, bounds, 16, cipherPath, recoveredPath, start)
	if err != nil {
		t.Fatalf("ReaderXorFile: %v", err)
	}
	if got != int64(len(plaintext)) {
		t.Fatalf("recovered %d bytes, want %d", got, len(plaintext))
	}

	recovered, err := os.ReadFile(recoveredPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(recovered) != string(plaintext) {
		t.Fatalf("recovered %q, want %q", recovered, plaintext)
	}
}

// TestFacadeLineAccessors exercises ReadOneLine, LoadAndDeleteOneLine and
// FindFirstAvailableLine without going through the XOR streaming layer.
func TestFacadeLineAccessors(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	bounds, _ := NewStandardIndex(0, 0, 0, 2)

	if err := MakePadset(ctx, root, bounds, 8, NoValidation, rand.Reader); err != nil {
		t.Fatalf("MakePadset: %v", err)
	}

	first, ok, err := FindFirstAvailableLine(ctx, root, Standard4Byte)
	if err != nil || !ok {
		t.Fatalf("expected first line, got ok=%v err=%v", ok, err)
	}

	content, err := ReadOneLine(ctx, root, first)
	if err != nil {
		t.Fatalf("ReadOneLine: %v", err)
	}
	if len(content) != 8 {
		t.Fatalf("got %d bytes, want 8", len(content))
	}

	again, err := ReadOneLine(ctx, root, first)
	if err != nil {
		t.Fatalf("ReadOneLine should be repeatable: %v", err)
	}
	if string(again) != string(content) {
		t.Fatal("ReadOneLine must not consume the line")
	}

	consumed, err := LoadAndDeleteOneLine(ctx, root, first)
	if err != nil {
		t.Fatalf("LoadAndDeleteOneLine: %v", err)
	}
	if string(consumed) != string(content) {
		t.Fatal("LoadAndDeleteOneLine returned different content than ReadOneLine")
	}

	if _, err := ReadOneLine(ctx, root, first); err == nil {
		t.Fatal("expected NotFound after LoadAndDeleteOneLine")
	}

	next, ok, err := FindFirstAvailableLine(ctx, root, Standard4Byte)
	if err != nil || !ok {
		t.Fatalf("expected a next line, got ok=%v err=%v", ok, err)
	}
	if next.Equal(first) {
		t.Fatal("cursor should have advanced past the consumed line")
	}
}
