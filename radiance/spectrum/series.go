package spectrum

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-radiance/radiance/cooling"
	"github.com/cwbudde/algo-radiance/radiance/planck"
)

// Errors returned by series construction and peak tracing.
var (
	ErrNoGrid          = errors.New("spectrum: wavelength grid must not be nil or empty")
	ErrNoSamples       = errors.New("spectrum: time series must not be empty")
	ErrDegenerateField = errors.New("spectrum: intensity field has no positive finite maximum")
	ErrShape           = errors.New("spectrum: temperature count does not match field rows")
)

// Series holds a normalized intensity field along a cooling trajectory.
//
// Temperatures and Field are aligned row-for-row and are not modified by
// this package after construction; treat them as read-only.
type Series struct {
	// Temperatures is the trajectory in Kelvin, chronological.
	Temperatures []float64
	// Field is the M×N relative intensity matrix, rows chronological,
	// columns in wavelength grid order, globally normalized to max 1.
	Field *mat.Dense

	grid *planck.Grid
}

// Compute evaluates the Planck spectrum at every trajectory temperature
// over the wavelength grid and normalizes the resulting field by its
// global maximum. Times must be non-negative and non-decreasing; they are
// passed through cooling.Params.Temperatures, so parameter validation
// errors surface here as well.
func Compute(grid *planck.Grid, p cooling.Params, times []float64) (*Series, error) {
	if grid == nil || grid.Len() == 0 {
		return nil, ErrNoGrid
	}
	if len(times) == 0 {
		return nil, ErrNoSamples
	}

	temps, err := p.Temperatures(times)
	if err != nil {
		return nil, err
	}

	wls := grid.Meters()
	field := mat.NewDense(len(temps), grid.Len(), nil)
	for i, temp := range temps {
		if err := planck.SpectralRadianceInto(field.RawRowView(i), wls, temp); err != nil {
			return nil, err
		}
	}

	if err := normalize(field); err != nil {
		return nil, err
	}

	return &Series{Temperatures: temps, Field: field, grid: grid}, nil
}

// normalize scales the whole field by its global maximum. The field holds
// radiances, so MaxAbs is the global maximum.
func normalize(field *mat.Dense) error {
	data := field.RawMatrix().Data

	peak := vecmath.MaxAbs(data)
	if peak == 0 || math.IsInf(peak, 0) || math.IsNaN(peak) {
		return ErrDegenerateField
	}

	vecmath.ScaleBlockInPlace(data, 1/peak)

	return nil
}

// Grid returns the wavelength grid the series was computed over.
func (s *Series) Grid() *planck.Grid {
	return s.grid
}

// Len returns the number of trajectory samples (field rows).
func (s *Series) Len() int {
	return len(s.Temperatures)
}

// Row returns a copy of the relative spectrum at trajectory index i.
func (s *Series) Row(i int) []float64 {
	_, c := s.Field.Dims()
	out := make([]float64, c)
	copy(out, s.Field.RawRowView(i))

	return out
}
