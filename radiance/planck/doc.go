// Package planck evaluates the Planck (Bose–Einstein) spectral radiance
// of a black body and provides the wavelength grids the rest of the
// module computes over.
//
// The spectral radiance of a black body at absolute temperature T is
//
//	I(λ,T) = (2·h·c² / λ⁵) / (exp(h·c / (λ·k_B·T)) − 1)
//
// with λ in meters and T in Kelvin, yielding W·sr⁻¹·m⁻³. The physical
// constants are the CODATA 2018 exact values exported by this package.
//
// # Usage
//
// Evaluate a full spectrum on a visible-range grid:
//
//	grid, _ := planck.Linspace(400, 800, 200)
//	out := make([]float64, grid.Len())
//	_ = planck.SpectralRadianceInto(out, grid.Meters(), 4500)
//
// All functions reject non-positive or non-finite wavelengths and
// temperatures with an error instead of returning NaN. When the Planck
// exponent h·c/(λ·k_B·T) exceeds the float64 exp range the radiance is
// clamped to its limit value 0; when the Bose–Einstein denominator
// underflows to zero the small-argument series limit 2·c·k_B·T/λ⁴ is
// returned. No intermediate Inf or NaN ever escapes.
package planck
