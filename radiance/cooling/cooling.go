// Package cooling models a body cooling toward an ambient temperature
// following Newton's law of cooling,
//
//	T(t) = T_env + (T0 − T_env)·exp(−k·t)
//
// The trajectory is strictly monotonic: decreasing when T0 > T_env,
// increasing when T0 < T_env, constant when they coincide, and it
// approaches T_env as t grows.
package cooling

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by trajectory functions.
var (
	ErrInitialTemp = errors.New("cooling: initial temperature must be positive")
	ErrAmbientTemp = errors.New("cooling: ambient temperature must not be negative")
	ErrRate        = errors.New("cooling: cooling rate must be positive")
	ErrDuration    = errors.New("cooling: duration must not be negative")
	ErrSampleCount = errors.New("cooling: sample count must be at least 2")
	ErrTimeOrder   = errors.New("cooling: time samples must be non-negative and non-decreasing")
)

// Params describes a Newtonian cooling trajectory.
type Params struct {
	Initial  float64 // T0 in Kelvin
	Ambient  float64 // environment temperature in Kelvin
	Rate     float64 // decay constant k in 1/s
	Duration float64 // simulated time span in seconds
}

// Validate checks that the cooling parameters are physically valid.
// An ambient temperature above the initial one is allowed; the body then
// warms toward the environment instead of cooling.
func (p *Params) Validate() error {
	if !(p.Initial > 0) || math.IsInf(p.Initial, 1) {
		return ErrInitialTemp
	}
	if !(p.Ambient >= 0) || math.IsInf(p.Ambient, 1) {
		return ErrAmbientTemp
	}
	if !(p.Rate > 0) || math.IsInf(p.Rate, 1) {
		return ErrRate
	}
	if !(p.Duration >= 0) || math.IsInf(p.Duration, 1) {
		return ErrDuration
	}

	return nil
}

// At returns the temperature after t seconds. At(0) equals Initial exactly.
func (p *Params) At(t float64) float64 {
	if t == 0 {
		// Ambient+(Initial-Ambient) can round away from Initial.
		return p.Initial
	}

	return p.Ambient + (p.Initial-p.Ambient)*math.Exp(-p.Rate*t)
}

// Times returns samples evenly spaced time points spanning [0, Duration],
// endpoints included.
func (p *Params) Times(samples int) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if samples < 2 {
		return nil, ErrSampleCount
	}

	return floats.Span(make([]float64, samples), 0, p.Duration), nil
}

// Temperatures evaluates the trajectory at the given time samples, which
// must be non-negative and non-decreasing.
func (p *Params) Temperatures(times []float64) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	prev := 0.0
	for _, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < prev {
			return nil, ErrTimeOrder
		}
		prev = t
	}

	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = p.At(t)
	}

	return out, nil
}
