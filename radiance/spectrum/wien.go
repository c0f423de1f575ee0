package spectrum

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-radiance/radiance/planck"
)

// Peak is one point of the Wien displacement trace: the theoretical
// peak-emission wavelength for a trajectory temperature together with the
// field intensity sampled at the nearest grid column.
type Peak struct {
	WavelengthM  float64 // λ_max = b/T in meters
	WavelengthNm float64 // λ_max in nanometers
	Intensity    float64 // relative intensity at the nearest grid point
}

// WienPeaks traces Wien's displacement law through a normalized intensity
// field. The returned slice is aligned index-for-index with temps. The
// sampled intensity is a nearest-grid-column approximation of the analytic
// peak; a λ_max outside the grid range samples the nearest endpoint.
func WienPeaks(grid *planck.Grid, temps []float64, field *mat.Dense) ([]Peak, error) {
	if grid == nil {
		return nil, ErrNoGrid
	}

	rows, cols := field.Dims()
	if rows != len(temps) || cols != grid.Len() {
		return nil, ErrShape
	}

	peaks := make([]Peak, len(temps))
	for i, temp := range temps {
		wl, err := planck.PeakWavelength(temp)
		if err != nil {
			return nil, err
		}

		col := grid.NearestIndex(wl)
		peaks[i] = Peak{
			WavelengthM:  wl,
			WavelengthNm: wl / planck.MetersPerNanometer,
			Intensity:    field.At(i, col),
		}
	}

	return peaks, nil
}

// WienPeaks traces the displacement law through the series field.
func (s *Series) WienPeaks() ([]Peak, error) {
	return WienPeaks(s.grid, s.Temperatures, s.Field)
}
