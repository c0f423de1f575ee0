package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2.5, 2}

	diff, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff != 1 {
		t.Fatalf("got %v, want 1", diff)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestRamp(t *testing.T) {
	got := Ramp(3)
	RequireSliceNear(t, got, []float64{1, 2, 3}, 0)
}

func TestConstant(t *testing.T) {
	got := Constant(4.5, 2)
	RequireSliceNear(t, got, []float64{4.5, 4.5}, 0)
}
