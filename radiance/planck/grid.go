package planck

import (
	"errors"
	"sort"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by grid construction.
var (
	ErrGridEmpty = errors.New("planck: wavelength grid must contain at least two points")
	ErrGridOrder = errors.New("planck: wavelength grid must be positive, finite and strictly increasing")
	ErrGridRange = errors.New("planck: grid start must be positive and below grid end")
)

// Grid is an immutable, strictly increasing wavelength grid. Values are
// stored in meters; constructors and accessors exist for both the meter
// and nanometer conventions so callers never mix units implicitly.
type Grid struct {
	meters []float64
}

// NewGrid builds a grid from wavelengths in meters. The input is copied.
func NewGrid(meters []float64) (*Grid, error) {
	if len(meters) < 2 {
		return nil, ErrGridEmpty
	}
	prev := 0.0
	for _, wl := range meters {
		if !validPositive(wl) || wl <= prev {
			return nil, ErrGridOrder
		}
		prev = wl
	}

	g := &Grid{meters: make([]float64, len(meters))}
	copy(g.meters, meters)

	return g, nil
}

// NewGridNanometers builds a grid from wavelengths in nanometers.
func NewGridNanometers(nanometers []float64) (*Grid, error) {
	meters := make([]float64, len(nanometers))
	vecmath.ScaleBlock(meters, nanometers, MetersPerNanometer)

	return NewGrid(meters)
}

// Linspace builds a grid of n evenly spaced points spanning
// [startNm, endNm] nanometers, endpoints included.
func Linspace(startNm, endNm float64, n int) (*Grid, error) {
	if n < 2 {
		return nil, ErrGridEmpty
	}
	if !validPositive(startNm) || !validPositive(endNm) || startNm >= endNm {
		return nil, ErrGridRange
	}

	g := &Grid{meters: make([]float64, n)}
	floats.Span(g.meters, startNm*MetersPerNanometer, endNm*MetersPerNanometer)

	return g, nil
}

// Len returns the number of grid points.
func (g *Grid) Len() int {
	return len(g.meters)
}

// Meters returns a copy of the grid in meters.
func (g *Grid) Meters() []float64 {
	out := make([]float64, len(g.meters))
	copy(out, g.meters)

	return out
}

// Nanometers returns a copy of the grid in nanometers.
func (g *Grid) Nanometers() []float64 {
	out := make([]float64, len(g.meters))
	vecmath.ScaleBlock(out, g.meters, 1/MetersPerNanometer)

	return out
}

// At returns the grid point at index i, in meters.
func (g *Grid) At(i int) float64 {
	return g.meters[i]
}

// NearestIndex returns the index of the grid point closest to the given
// wavelength (meters) by absolute difference. Ties resolve to the lower
// index. Wavelengths outside the grid range map to the nearest endpoint.
func (g *Grid) NearestIndex(wavelength float64) int {
	i := sort.SearchFloat64s(g.meters, wavelength)
	if i == 0 {
		return 0
	}
	if i == len(g.meters) {
		return len(g.meters) - 1
	}
	if wavelength-g.meters[i-1] <= g.meters[i]-wavelength {
		return i - 1
	}

	return i
}
