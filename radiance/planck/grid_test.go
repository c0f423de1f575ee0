package planck

import (
	"testing"

	"github.com/cwbudde/algo-radiance/internal/testutil"
)

func TestLinspaceEndpointsAndLength(t *testing.T) {
	grid, err := Linspace(400, 800, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if grid.Len() != 200 {
		t.Fatalf("length mismatch: got %d, want 200", grid.Len())
	}

	nm := grid.Nanometers()
	testutil.RequireNear(t, nm[0], 400, 1e-9)
	testutil.RequireNear(t, nm[len(nm)-1], 800, 1e-9)

	m := grid.Meters()
	if m[0] != 400*MetersPerNanometer {
		t.Fatalf("start mismatch: got %v", m[0])
	}
	testutil.RequireNearRel(t, m[len(m)-1], 800*MetersPerNanometer, 1e-12)
}

func TestLinspaceInvalid(t *testing.T) {
	if _, err := Linspace(400, 800, 1); err != ErrGridEmpty {
		t.Fatalf("got %v, want ErrGridEmpty", err)
	}
	if _, err := Linspace(800, 400, 10); err != ErrGridRange {
		t.Fatalf("got %v, want ErrGridRange", err)
	}
	if _, err := Linspace(0, 800, 10); err != ErrGridRange {
		t.Fatalf("got %v, want ErrGridRange", err)
	}
}

func TestNewGridValidation(t *testing.T) {
	if _, err := NewGrid([]float64{1e-9}); err != ErrGridEmpty {
		t.Fatalf("got %v, want ErrGridEmpty", err)
	}
	if _, err := NewGrid([]float64{2e-9, 1e-9}); err != ErrGridOrder {
		t.Fatalf("got %v, want ErrGridOrder", err)
	}
	if _, err := NewGrid([]float64{1e-9, 1e-9}); err != ErrGridOrder {
		t.Fatalf("got %v, want ErrGridOrder", err)
	}
	if _, err := NewGrid([]float64{-1e-9, 1e-9}); err != ErrGridOrder {
		t.Fatalf("got %v, want ErrGridOrder", err)
	}
}

func TestNewGridCopiesInput(t *testing.T) {
	src := []float64{1e-9, 2e-9, 3e-9}
	grid, err := NewGrid(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src[0] = 99
	if grid.At(0) != 1e-9 {
		t.Fatalf("grid aliases caller slice: got %v", grid.At(0))
	}

	m := grid.Meters()
	m[1] = 99
	if grid.At(1) != 2e-9 {
		t.Fatalf("accessor aliases internal storage: got %v", grid.At(1))
	}
}

func TestNewGridNanometers(t *testing.T) {
	grid, err := NewGridNanometers([]float64{400, 600, 800})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNear(t, grid.Meters(), []float64{400e-9, 600e-9, 800e-9}, 1e-24)
}

func TestNearestIndex(t *testing.T) {
	grid, err := NewGrid([]float64{1, 2, 3, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		wl   float64
		want int
	}{
		{0.5, 0},  // below range clamps to first
		{1, 0},    // exact hit
		{1.4, 0},  // nearest below
		{1.5, 0},  // tie resolves to lower index
		{1.6, 1},  // nearest above
		{3.9, 2},  // nearest of 3 vs 5
		{4.2, 3},  // nearest of 3 vs 5
		{9, 3},    // above range clamps to last
	}
	for _, tc := range cases {
		if got := grid.NearestIndex(tc.wl); got != tc.want {
			t.Fatalf("NearestIndex(%v) = %d, want %d", tc.wl, got, tc.want)
		}
	}
}
