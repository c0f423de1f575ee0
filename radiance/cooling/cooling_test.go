package cooling

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-radiance/internal/testutil"
)

func referenceParams() Params {
	return Params{Initial: 6000, Ambient: 300, Rate: 0.25, Duration: 15}
}

func TestAtStartsAtInitial(t *testing.T) {
	p := Params{Initial: 0.3, Ambient: 0.1, Rate: 1, Duration: 1}
	if got := p.At(0); got != 0.3 {
		t.Fatalf("At(0) = %v, want exactly 0.3", got)
	}

	p = referenceParams()
	if got := p.At(0); got != 6000 {
		t.Fatalf("At(0) = %v, want exactly 6000", got)
	}
}

func TestAtApproachesAmbient(t *testing.T) {
	p := referenceParams()
	testutil.RequireNear(t, p.At(1000), p.Ambient, 1e-9)
}

func TestReferenceScenario(t *testing.T) {
	// T0=6000 K, T_env=300 K, k=0.25/s, 15 s, 80 samples.
	p := referenceParams()

	times, err := p.Times(80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 80 || times[0] != 0 {
		t.Fatalf("time span mismatch: n=%d, first=%v", len(times), times[0])
	}
	testutil.RequireNear(t, times[79], 15, 1e-12)

	temps, err := p.Temperatures(times)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if temps[0] != 6000 {
		t.Fatalf("temps[0] = %v, want exactly 6000", temps[0])
	}
	want := 300 + 5700*math.Exp(-0.25*15)
	testutil.RequireNear(t, temps[79], want, 1e-9)
}

func TestTrajectoryStrictlyMonotonic(t *testing.T) {
	cases := []struct {
		name string
		p    Params
		sign float64
	}{
		{"cooling", Params{Initial: 6000, Ambient: 300, Rate: 0.25, Duration: 15}, -1},
		{"warming", Params{Initial: 200, Ambient: 900, Rate: 0.4, Duration: 10}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			times, err := tc.p.Times(50)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			temps, err := tc.p.Temperatures(times)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i := 1; i < len(temps); i++ {
				if (temps[i]-temps[i-1])*tc.sign <= 0 {
					t.Fatalf("index %d: %v -> %v breaks monotonicity", i, temps[i-1], temps[i])
				}
			}
		})
	}
}

func TestTrajectoryConstantWhenAtAmbient(t *testing.T) {
	p := Params{Initial: 300, Ambient: 300, Rate: 0.25, Duration: 15}
	times, _ := p.Times(10)
	temps, err := p.Temperatures(times)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNear(t, temps, testutil.Constant(300, 10), 0)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		p    Params
		want error
	}{
		{"valid", referenceParams(), nil},
		{"zero initial", Params{Initial: 0, Ambient: 300, Rate: 0.25, Duration: 15}, ErrInitialTemp},
		{"nan initial", Params{Initial: math.NaN(), Ambient: 300, Rate: 0.25, Duration: 15}, ErrInitialTemp},
		{"negative ambient", Params{Initial: 6000, Ambient: -1, Rate: 0.25, Duration: 15}, ErrAmbientTemp},
		{"zero rate", Params{Initial: 6000, Ambient: 300, Rate: 0, Duration: 15}, ErrRate},
		{"negative duration", Params{Initial: 6000, Ambient: 300, Rate: 0.25, Duration: -1}, ErrDuration},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.p.Validate(); err != tc.want {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestTimesSampleCount(t *testing.T) {
	p := referenceParams()
	if _, err := p.Times(1); err != ErrSampleCount {
		t.Fatalf("got %v, want ErrSampleCount", err)
	}
}

func TestTemperaturesRejectsBadTimes(t *testing.T) {
	p := referenceParams()
	for _, times := range [][]float64{
		{-1, 0, 1},
		{0, 2, 1},
		{0, math.NaN()},
	} {
		if _, err := p.Temperatures(times); err != ErrTimeOrder {
			t.Fatalf("times %v: got %v, want ErrTimeOrder", times, err)
		}
	}
}
