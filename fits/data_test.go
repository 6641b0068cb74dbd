package fits

import (
	"errors"
	"testing"
)

func TestNewDataRoundTrip(t *testing.T) {
	tests := []struct {
		bitpix int
		values []float64
	}{
		{8, []float64{0, 1, -128, 127}},
		{16, []float64{0, 300, -32768, 32767}},
		{32, []float64{0, 70000, -2147483648, 2147483647}},
		{-32, []float64{0, 1.5, -2.25, 1e10}},
		{-64, []float64{0, 1.5, -2.25, 1e300}},
	}

	for _, tt := range tests {
		d, err := NewData(tt.values, tt.bitpix, []int{4})
		if err != nil {
			t.Fatalf("NewData(bitpix=%d) failed: %v", tt.bitpix, err)
		}
		for i, want := range tt.values {
			got, err := d.At(i + 1)
			if err != nil {
				t.Fatalf("At(%d) bitpix=%d failed: %v", i+1, tt.bitpix, err)
			}
			if got != want {
				t.Errorf("bitpix=%d At(%d) = %g, want %g", tt.bitpix, i+1, got, want)
			}
		}
	}
}

func TestDataTraversalOrder(t *testing.T) {
	// Axis 1 varies fastest in storage.
	d, err := NewData([]float64{1, 2, 3, 4, 5, 6}, 16, []int{3, 2})
	if err != nil {
		t.Fatalf("NewData failed: %v", err)
	}

	tests := []struct {
		coords []int
		want   float64
	}{
		{[]int{1, 1}, 1},
		{[]int{2, 1}, 2},
		{[]int{3, 1}, 3},
		{[]int{1, 2}, 4},
		{[]int{2, 2}, 5},
		{[]int{3, 2}, 6},
	}
	for _, tt := range tests {
		got, err := d.At(tt.coords...)
		if err != nil {
			t.Fatalf("At(%v) failed: %v", tt.coords, err)
		}
		if got != tt.want {
			t.Errorf("At(%v) = %g, want %g", tt.coords, got, tt.want)
		}
	}
}

func TestDataAccessors(t *testing.T) {
	d, err := NewData([]float64{1, 2, 3, 4, 5, 6}, 16, []int{3, 2})
	if err != nil {
		t.Fatalf("NewData failed: %v", err)
	}
	if d.Bitpix() != 16 {
		t.Errorf("Bitpix = %d, want 16", d.Bitpix())
	}
	if d.Naxis() != 2 {
		t.Errorf("Naxis = %d, want 2", d.Naxis())
	}
	if d.Len() != 6 {
		t.Errorf("Len = %d, want 6", d.Len())
	}
	if len(d.Raw()) != 12 {
		t.Errorf("Raw length = %d, want 12", len(d.Raw()))
	}

	// Axes and Raw hand out copies.
	d.Axes()[0] = 99
	if d.Axes()[0] != 3 {
		t.Error("Axes returned a live reference")
	}
	d.Raw()[0] = 0xFF
	if v, _ := d.At(1, 1); v != 1 {
		t.Error("Raw returned a live reference")
	}
}

func TestDataAtErrors(t *testing.T) {
	d, err := NewData([]float64{1, 2, 3, 4, 5, 6}, 16, []int{3, 2})
	if err != nil {
		t.Fatalf("NewData failed: %v", err)
	}

	if _, err := d.At(1); !errors.Is(err, ErrArityMismatch) {
		t.Errorf("At(1): error = %v, want ErrArityMismatch", err)
	}
	if _, err := d.At(1, 2, 3); !errors.Is(err, ErrArityMismatch) {
		t.Errorf("At(1,2,3): error = %v, want ErrArityMismatch", err)
	}
	for _, coords := range [][]int{{0, 1}, {4, 1}, {1, 0}, {1, 3}, {-1, 1}} {
		if _, err := d.At(coords...); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%v): error = %v, want ErrOutOfBounds", coords, err)
		}
	}
}

func TestDataEmpty(t *testing.T) {
	d, err := NewData(nil, 16, nil)
	if err != nil {
		t.Fatalf("NewData failed: %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("Len = %d, want 0", d.Len())
	}
	if _, err := d.At(); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("At() on empty data: error = %v, want ErrOutOfBounds", err)
	}

	it := d.Points()
	if it.Next() {
		t.Error("Next returned true for empty data")
	}
	if it.Err() != nil {
		t.Errorf("Err = %v, want nil", it.Err())
	}
}

func TestNewDataErrors(t *testing.T) {
	if _, err := NewData(nil, 12, nil); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("bad bitpix: error = %v, want ErrInvalidShape", err)
	}
	if _, err := NewData([]float64{1}, 64, []int{1}); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("bitpix 64: error = %v, want ErrUnsupportedBitDepth", err)
	}
	if _, err := NewData([]float64{1}, 16, []int{0}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("zero axis: error = %v, want ErrInvalidShape", err)
	}
	if _, err := NewData([]float64{1, 2, 3}, 16, []int{2, 2}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("length mismatch: error = %v, want ErrShapeMismatch", err)
	}
}

func TestPointIterator(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	d, err := NewData(values, -64, []int{3, 2})
	if err != nil {
		t.Fatalf("NewData failed: %v", err)
	}

	wantCoords := [][]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {2, 2}, {3, 2}}
	it := d.Points()
	for i := 0; it.Next(); i++ {
		if it.Value() != values[i] {
			t.Errorf("point %d value = %g, want %g", i, it.Value(), values[i])
		}
		coords := it.Coords()
		if len(coords) != 2 || coords[0] != wantCoords[i][0] || coords[1] != wantCoords[i][1] {
			t.Errorf("point %d coords = %v, want %v", i, coords, wantCoords[i])
		}
		// The reported coordinates address the same value through At.
		back, err := d.At(coords...)
		if err != nil {
			t.Fatalf("At(%v) failed: %v", coords, err)
		}
		if back != it.Value() {
			t.Errorf("At(%v) = %g, iterator reported %g", coords, back, it.Value())
		}
	}
	if it.Err() != nil {
		t.Fatalf("iterator error: %v", it.Err())
	}
	if it.Next() {
		t.Error("Next returned true after exhaustion")
	}

	// Points restarts from the first point on every call.
	it2 := d.Points()
	if !it2.Next() || it2.Value() != 1 {
		t.Error("fresh iterator did not restart at the first point")
	}
}

func TestDataUnsupportedBitDepth(t *testing.T) {
	// A 64-bit integer region is addressable as raw bytes but never decodable.
	d, err := newData(make([]byte, 16), 64, []int{2})
	if err != nil {
		t.Fatalf("newData failed: %v", err)
	}
	if _, err := d.At(1); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("At: error = %v, want ErrUnsupportedBitDepth", err)
	}

	it := d.Points()
	if it.Next() {
		t.Error("Next returned true for undecodable words")
	}
	if !errors.Is(it.Err(), ErrUnsupportedBitDepth) {
		t.Errorf("Err = %v, want ErrUnsupportedBitDepth", it.Err())
	}
}
