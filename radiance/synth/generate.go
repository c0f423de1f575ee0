// Package synth generates deterministic synthetic observations of a
// black-body spectrum for exercising and validating the curve fitter.
// Noise amplitude follows the usual convention of being expressed as a
// fraction of the spectrum's peak intensity.
package synth

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-radiance/radiance/planck"
)

// Errors returned by the generator.
var (
	ErrNoGrid        = errors.New("synth: wavelength grid must not be nil or empty")
	ErrNoiseFraction = errors.New("synth: noise fraction must not be negative")
)

// Generator produces seeded synthetic observations. The zero seed is
// replaced by 1; two generators with equal seeds produce identical output.
type Generator struct {
	seed uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured observation generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Observation evaluates the Planck spectrum at the given temperature over
// the grid and adds Gaussian noise with standard deviation
// noiseFrac × max(intensity). A zero noiseFrac returns the noiseless
// theoretical spectrum. Noise can push tail samples below zero; that is
// intended, observations are measurements, not radiances.
func (g *Generator) Observation(grid *planck.Grid, temperature, noiseFrac float64) ([]float64, error) {
	if grid == nil || grid.Len() == 0 {
		return nil, ErrNoGrid
	}
	if noiseFrac < 0 {
		return nil, ErrNoiseFraction
	}

	out := make([]float64, grid.Len())
	if err := planck.SpectralRadianceInto(out, grid.Meters(), temperature); err != nil {
		return nil, err
	}

	sigma := noiseFrac * vecmath.MaxAbs(out)
	if sigma == 0 {
		return out, nil
	}

	normal := distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.NewSource(g.seed)}
	noise := make([]float64, len(out))
	for i := range noise {
		noise[i] = normal.Rand()
	}
	vecmath.AddBlockInPlace(out, noise)

	return out, nil
}
