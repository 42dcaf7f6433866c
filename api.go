package padnetotp

import (
	"context"
	"io"

	"github.com/lineality/padnetotp/linestore"
	"github.com/lineality/padnetotp/padset"
	"github.com/lineality/padnetotp/storage/driver/filesystem"
	"github.com/lineality/padnetotp/xorstream"
)

// MakePadset materializes a full padset directory tree rooted at root,
// drawing line material from rng and writing page- or pad-level integrity
// digests as level requires. It is the root-package façade over
// padset.Build, constructing the local-filesystem driver so callers never
// import storage/driver themselves.
func MakePadset(ctx context.Context, root string, bounds PadIndex, lineLength int, level ValidationLevel, rng io.Reader) error {
	d := filesystem.New(root)
	cfg := padset.BuildConfig{Bounds: bounds, LineLength: lineLength, Level: level}
	return padset.Build(ctx, d, "", cfg, rng)
}

// ReadOneLine returns the bytes stored at idx without consuming it.
func ReadOneLine(ctx context.Context, root string, idx PadIndex) ([]byte, error) {
	d := filesystem.New(root)
	return linestore.Read(ctx, d, "", idx)
}

// LoadAndDeleteOneLine returns the bytes stored at idx and destructively
// removes the line file, so it can never be read again.
func LoadAndDeleteOneLine(ctx context.Context, root string, idx PadIndex) ([]byte, error) {
	d := filesystem.New(root)
	return linestore.LoadAndDelete(ctx, d, "", idx)
}

// FindFirstAvailableLine walks root and returns the first index whose
// line file still exists, or ok=false if the padset is fully consumed.
func FindFirstAvailableLine(ctx context.Context, root string, width WidthClass) (PadIndex, bool, error) {
	d := filesystem.New(root)
	return padset.FindFirstAvailableLine(ctx, d, "", width)
}

// WriterXorFile streams plaintext through root's padset in destructive
// writer mode, writing the XOR result to ciphertext and consuming every
// line it touches. It returns the index it started from — which must be
// communicated out-of-band to the decrypting party — and the number of
// bytes written.
func WriterXorFile(ctx context.Context, root string, bounds PadIndex, lineLength int, plaintext, ciphertext string) (PadIndex, int64, error) {
	d := filesystem.New(root)
	return xorstream.WriteContinuous(ctx, d, "", bounds, lineLength, plaintext, ciphertext)
}

// ReaderXorFile streams ciphertext through root's padset in non-destructive
// reader mode starting at start, writing the recovered plaintext to
// plaintext. Lines are read, never consumed.
func ReaderXorFile(ctx context.Context, root string, bounds PadIndex, lineLength int, ciphertext, plaintext string, start PadIndex) (int64, error) {
	d := filesystem.New(root)
	return xorstream.ReadFrom(ctx, d, "", bounds, lineLength, ciphertext, plaintext, start)
}
