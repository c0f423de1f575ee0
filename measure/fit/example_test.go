package fit_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-radiance/measure/fit"
	"github.com/cwbudde/algo-radiance/radiance/planck"
	"github.com/cwbudde/algo-radiance/radiance/synth"
)

func ExampleTemperature() {
	grid, err := planck.Linspace(400, 800, 200)
	if err != nil {
		panic(err)
	}

	// Simulated measurement of a 4500 K emitter with 5%-of-peak noise.
	observed, err := synth.NewGenerator(synth.WithSeed(42)).Observation(grid, 4500, 0.05)
	if err != nil {
		panic(err)
	}

	res, err := fit.Temperature(grid, observed, 3000)
	if err != nil {
		panic(err)
	}

	fmt.Printf("converged: %t\n", res.Converged)
	fmt.Printf("recovered within 5%%: %t\n", math.Abs(res.Temperature-4500) < 225)
	fmt.Printf("uncertainty estimated: %t\n", res.StdErrOK)

	// Output:
	// converged: true
	// recovered within 5%: true
	// uncertainty estimated: true
}
