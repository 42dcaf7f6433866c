package integrity

import (
	"context"
	"testing"

	"github.com/lineality/padnetotp/padtypes"
	"github.com/lineality/padnetotp/pathcodec"
	"github.com/lineality/padnetotp/storage/driver/filesystem"
)

func writeLine(t *testing.T, ctx context.Context, d *filesystem.Driver, idx padtypes.PadIndex, content string) {
	t.Helper()
	if err := d.PutContent(ctx, pathcodec.LinePath("", idx), []byte(content)); err != nil {
		t.Fatalf("PutContent: %v", err)
	}
}

func TestPageDigestRoundTrips(t *testing.T) {
	ctx := context.Background()
	d := filesystem.New(t.TempDir())
	bounds, _ := padtypes.NewStandardIndex(0, 0, 0, 2)

	for l := 0; l <= bounds.Line; l++ {
		idx, _ := padtypes.NewStandardIndex(0, 0, 0, l)
		writeLine(t, ctx, d, idx, "line-content")
	}

	if err := BuildPageDigest(ctx, d, "", padtypes.Standard4Byte, 0, 0, 0, bounds); err != nil {
		t.Fatalf("BuildPageDigest: %v", err)
	}

	if err := ValidateAndConsumePage(ctx, d, "", padtypes.Standard4Byte, 0, 0, 0, bounds, true); err != nil {
		t.Fatalf("ValidateAndConsumePage: %v", err)
	}

	digestPath := pathcodec.PageDigestPath("", padtypes.Standard4Byte, 0, 0, 0)
	if _, err := d.GetContent(ctx, digestPath); err == nil {
		t.Fatal("expected digest file to be removed after successful validation")
	}
}

func TestPageDigestDetectsTamper(t *testing.T) {
	ctx := context.Background()
	d := filesystem.New(t.TempDir())
	bounds, _ := padtypes.NewStandardIndex(0, 0, 0, 1)

	for l := 0; l <= bounds.Line; l++ {
		idx, _ := padtypes.NewStandardIndex(0, 0, 0, l)
		writeLine(t, ctx, d, idx, "original")
	}
	if err := BuildPageDigest(ctx, d, "", padtypes.Standard4Byte, 0, 0, 0, bounds); err != nil {
		t.Fatalf("BuildPageDigest: %v", err)
	}

	tamperedIdx, _ := padtypes.NewStandardIndex(0, 0, 0, 1)
	writeLine(t, ctx, d, tamperedIdx, "tampered!")

	err := ValidateAndConsumePage(ctx, d, "", padtypes.Standard4Byte, 0, 0, 0, bounds, true)
	if err == nil {
		t.Fatal("expected IntegrityFailure")
	}
	if _, ok := err.(padtypes.IntegrityFailure); !ok {
		t.Fatalf("expected padtypes.IntegrityFailure, got %T: %v", err, err)
	}

	digestPath := pathcodec.PageDigestPath("", padtypes.Standard4Byte, 0, 0, 0)
	if _, err := d.GetContent(ctx, digestPath); err != nil {
		t.Fatal("expected digest file to remain after a failed validation")
	}
}

func TestValidateWithoutDigestVacuouslyPasses(t *testing.T) {
	ctx := context.Background()
	d := filesystem.New(t.TempDir())
	bounds, _ := padtypes.NewStandardIndex(0, 0, 0, 0)
	idx, _ := padtypes.NewStandardIndex(0, 0, 0, 0)
	writeLine(t, ctx, d, idx, "x")

	if err := ValidateAndConsumePage(ctx, d, "", padtypes.Standard4Byte, 0, 0, 0, bounds, true); err != nil {
		t.Fatalf("expected vacuous pass with no digest file, got %v", err)
	}
}

func TestPadDigestCoversAllPages(t *testing.T) {
	ctx := context.Background()
	d := filesystem.New(t.TempDir())
	bounds, _ := padtypes.NewStandardIndex(0, 0, 1, 1)

	for pg := 0; pg <= bounds.Page; pg++ {
		for l := 0; l <= bounds.Line; l++ {
			idx, _ := padtypes.NewStandardIndex(0, 0, pg, l)
			writeLine(t, ctx, d, idx, "pad-content")
		}
	}

	if err := BuildPadDigest(ctx, d, "", padtypes.Standard4Byte, 0, 0, bounds); err != nil {
		t.Fatalf("BuildPadDigest: %v", err)
	}
	if err := ValidateAndConsumePad(ctx, d, "", padtypes.Standard4Byte, 0, 0, bounds, false); err != nil {
		t.Fatalf("ValidateAndConsumePad: %v", err)
	}

	tamperedIdx, _ := padtypes.NewStandardIndex(0, 0, 1, 0)
	writeLine(t, ctx, d, tamperedIdx, "tampered")
	if err := ValidateAndConsumePad(ctx, d, "", padtypes.Standard4Byte, 0, 0, bounds, true); err == nil {
		t.Fatal("expected IntegrityFailure after tamper in second page")
	}
}
