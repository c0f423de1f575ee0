// Package spectrum evaluates Planck spectra along a cooling trajectory
// and assembles them into a normalized intensity field, the data a
// surface or animation renderer consumes.
//
// The field is an M×N matrix: one row per time (and thus temperature)
// sample, one column per wavelength grid point, in chronological and
// grid order respectively. After construction the field is divided by
// its global maximum, so values lie in [0, 1] with the maximum exactly 1.
// A field whose maximum is zero or non-finite cannot be normalized and
// construction fails with ErrDegenerateField instead of spreading NaN.
//
// # Usage
//
//	grid, _ := planck.Linspace(400, 800, 200)
//	p := cooling.Params{Initial: 6000, Ambient: 300, Rate: 0.25, Duration: 15}
//	times, _ := p.Times(80)
//	series, _ := spectrum.Compute(grid, p, times)
//	peaks, _ := series.WienPeaks()
//
// WienPeaks traces the theoretical peak wavelength λ_max = b/T through
// the field, sampling the intensity at the nearest grid column. The
// reported intensity is a grid sample, not the analytic maximum; a peak
// outside the grid range samples the nearest endpoint.
package spectrum
