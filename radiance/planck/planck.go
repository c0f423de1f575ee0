package planck

import (
	"errors"
	"math"
)

// Errors returned by the spectral model.
var (
	ErrWavelength  = errors.New("planck: wavelength must be positive and finite")
	ErrTemperature = errors.New("planck: temperature must be positive and finite")
	ErrLength      = errors.New("planck: destination length must match wavelength count")
)

// maxExpArg bounds the Planck exponent h·c/(λ·k_B·T). Beyond it exp
// overflows float64 and the radiance is indistinguishable from zero.
const maxExpArg = 700

// SpectralRadiance evaluates Planck's law at a single wavelength (meters)
// and temperature (Kelvin). It returns ErrWavelength or ErrTemperature for
// non-positive or non-finite inputs; the result is always finite and
// non-negative.
func SpectralRadiance(wavelength, temperature float64) (float64, error) {
	if !validPositive(wavelength) {
		return 0, ErrWavelength
	}
	if !validPositive(temperature) {
		return 0, ErrTemperature
	}

	return radiance(wavelength, temperature), nil
}

// SpectralRadianceInto evaluates Planck's law for a fixed temperature over
// a slice of wavelengths (meters), writing into dst. dst and wavelengths
// must have equal length. The wavelengths need not be ordered; each element
// is validated like in [SpectralRadiance].
func SpectralRadianceInto(dst, wavelengths []float64, temperature float64) error {
	if len(dst) != len(wavelengths) {
		return ErrLength
	}
	if !validPositive(temperature) {
		return ErrTemperature
	}
	for _, wl := range wavelengths {
		if !validPositive(wl) {
			return ErrWavelength
		}
	}

	for i, wl := range wavelengths {
		dst[i] = radiance(wl, temperature)
	}

	return nil
}

// PeakWavelength returns the peak-emission wavelength in meters for the
// given temperature per Wien's displacement law, λ_max = b/T.
func PeakWavelength(temperature float64) (float64, error) {
	if !validPositive(temperature) {
		return 0, ErrTemperature
	}

	return WienDisplacement / temperature, nil
}

// radiance assumes validated inputs. Overflow of the exponential clamps to
// the physical limit 0; underflow of the denominator falls back to the
// small-argument series limit 2·c·k_B·T/λ⁴.
func radiance(wl, t float64) float64 {
	arg := PlanckConstant * SpeedOfLight / (wl * BoltzmannConstant * t)
	if arg > maxExpArg {
		return 0
	}

	wl5 := wl * wl * wl * wl * wl
	num := 2 * PlanckConstant * SpeedOfLight * SpeedOfLight / wl5

	denom := math.Exp(arg) - 1
	if denom == 0 {
		// exp(arg) rounded to 1: I → 2·c·k_B·T/λ⁴.
		return 2 * SpeedOfLight * BoltzmannConstant * t / (wl5 / wl)
	}

	return num / denom
}

func validPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
