package spectrum_test

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-radiance/radiance/cooling"
	"github.com/cwbudde/algo-radiance/radiance/planck"
	"github.com/cwbudde/algo-radiance/radiance/spectrum"
)

func ExampleCompute() {
	grid, err := planck.Linspace(400, 800, 200)
	if err != nil {
		panic(err)
	}

	p := cooling.Params{Initial: 6000, Ambient: 300, Rate: 0.25, Duration: 15}
	times, err := p.Times(80)
	if err != nil {
		panic(err)
	}

	series, err := spectrum.Compute(grid, p, times)
	if err != nil {
		panic(err)
	}

	rows, cols := series.Field.Dims()
	fmt.Printf("field: %d temperatures x %d wavelengths\n", rows, cols)
	fmt.Printf("global max: %.2f\n", floats.Max(series.Field.RawMatrix().Data))

	// Output:
	// field: 80 temperatures x 200 wavelengths
	// global max: 1.00
}

func ExampleSeries_WienPeaks() {
	grid, err := planck.Linspace(400, 800, 200)
	if err != nil {
		panic(err)
	}

	p := cooling.Params{Initial: 6000, Ambient: 300, Rate: 0.25, Duration: 15}
	times, err := p.Times(80)
	if err != nil {
		panic(err)
	}

	series, err := spectrum.Compute(grid, p, times)
	if err != nil {
		panic(err)
	}

	peaks, err := series.WienPeaks()
	if err != nil {
		panic(err)
	}

	fmt.Printf("hottest sample peaks at %.0f nm\n", peaks[0].WavelengthNm)

	// Output:
	// hottest sample peaks at 483 nm
}
