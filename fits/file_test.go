package fits

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	f, err := New([]float64{1, 2, 3, 4}, 16, []int{2, 2})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	encoded := f.Encode()
	if len(encoded) != 2*BlockSize {
		t.Fatalf("encoded length = %d, want %d", len(encoded), 2*BlockSize)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Header().Bitpix() != 16 {
		t.Errorf("Bitpix = %d, want 16", decoded.Header().Bitpix())
	}
	if axes := decoded.Header().Axes(); len(axes) != 2 || axes[0] != 2 || axes[1] != 2 {
		t.Errorf("Axes = %v, want [2 2]", axes)
	}

	want := []float64{1, 2, 3, 4}
	coords := [][]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	for i, c := range coords {
		got, err := decoded.Data().At(c...)
		if err != nil {
			t.Fatalf("At(%v) failed: %v", c, err)
		}
		if got != want[i] {
			t.Errorf("At(%v) = %g, want %g", c, got, want[i])
		}
	}
}

func TestFileEncodePadding(t *testing.T) {
	f, err := New([]float64{1, 2, 3, 4}, 16, []int{2, 2})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	encoded := f.Encode()

	// Header block: cards then ASCII space fill.
	headerBlock := encoded[:BlockSize]
	cardBytes := (f.Header().Len() + 1) * CardLength
	for i, b := range headerBlock[cardBytes:] {
		if b != ' ' {
			t.Fatalf("header padding byte %d = %#x, want space", cardBytes+i, b)
		}
	}

	// Data block: 8 data bytes then zero fill.
	dataBlock := encoded[BlockSize:]
	for i, b := range dataBlock[8:] {
		if b != 0 {
			t.Fatalf("data padding byte %d = %#x, want zero", 8+i, b)
		}
	}
}

func TestFileEmptyData(t *testing.T) {
	f, err := New(nil, 8, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	encoded := f.Encode()
	if len(encoded) != BlockSize {
		t.Fatalf("encoded length = %d, want one block", len(encoded))
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Data().Len() != 0 {
		t.Errorf("data Len = %d, want 0", decoded.Data().Len())
	}
}

func TestFileWithBaseHeader(t *testing.T) {
	base := mustParseHeader(t, basicCards("OBJECT  = 'M31     '")...)

	f, err := New([]float64{1, 2, 3}, -32, []int{3}, WithBaseHeader(base))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if f.Header().Bitpix() != -32 {
		t.Errorf("Bitpix = %d, want -32", f.Header().Bitpix())
	}
	if _, ok, _ := f.Header().Value("OBJECT"); !ok {
		t.Error("OBJECT not carried from the base header")
	}
	if vs, _ := f.Header().Values("NAXIS2"); len(vs) != 0 {
		t.Error("stale NAXIS2 card survived the rebuild")
	}
}

func TestDecodeExpectedAxes(t *testing.T) {
	f, err := New([]float64{1, 2, 3, 4}, 16, []int{2, 2})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	encoded := f.Encode()

	if _, err := Decode(encoded, WithExpectedAxes(2)); err != nil {
		t.Errorf("Decode with matching axes failed: %v", err)
	}
	if _, err := Decode(encoded, WithExpectedAxes(3)); !errors.Is(err, ErrMismatchedNaxis) {
		t.Errorf("Decode error = %v, want ErrMismatchedNaxis", err)
	}
}

func TestDecodeTruncatedData(t *testing.T) {
	f, err := New([]float64{1, 2, 3, 4}, 16, []int{2, 2})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	encoded := f.Encode()

	// Header block alone: the declared 8 data bytes are missing.
	if _, err := Decode(encoded[:BlockSize]); !errors.Is(err, ErrTruncatedData) {
		t.Errorf("Decode error = %v, want ErrTruncatedData", err)
	}
	// Data region cut mid-word.
	if _, err := Decode(encoded[:BlockSize+5]); !errors.Is(err, ErrTruncatedData) {
		t.Errorf("Decode error = %v, want ErrTruncatedData", err)
	}
}

func TestDecodeDataStartsAtBlockBoundary(t *testing.T) {
	// Bytes between the END card and the block boundary are ignored; the
	// data region begins at the boundary.
	raw, err := NewData([]float64{7, 8}, 16, []int{2})
	if err != nil {
		t.Fatalf("NewData failed: %v", err)
	}
	var buf []byte
	buf = append(buf, headerBytes(
		"SIMPLE  =                    T",
		"BITPIX  =                   16",
		"NAXIS   =                    1",
		"NAXIS1  =                    2",
	)...)
	buf = append(buf, bytes.Repeat([]byte{' '}, BlockSize-len(buf))...)
	buf = append(buf, raw.Raw()...)
	buf = append(buf, make([]byte, BlockSize-4)...)

	f, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v, _ := f.Data().At(2); v != 8 {
		t.Errorf("At(2) = %g, want 8", v)
	}
}

func TestFileShapeCrossInvariant(t *testing.T) {
	// A header whose declared shape disagrees with the base header template
	// is rebuilt, so mismatches can only come from hand-assembled parts.
	h := mustParseHeader(t, basicCards()...)
	d, err := NewData([]float64{1, 2}, 16, []int{2})
	if err != nil {
		t.Fatalf("NewData failed: %v", err)
	}
	if _, err := compose(h, d); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("compose error = %v, want ErrShapeMismatch", err)
	}
}

func TestOpenWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.fits")

	f, err := New([]float64{1, 2, 3, 4, 5, 6}, -64, []int{3, 2})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := f.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	back, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !bytes.Equal(back.Encode(), f.Encode()) {
		t.Error("reopened file does not re-encode to the same bytes")
	}

	if _, err := Open(filepath.Join(dir, "missing.fits")); err == nil {
		t.Error("Open of a missing file succeeded")
	}
}
