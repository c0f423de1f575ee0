package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/cwbudde/algo-radiance/radiance/planck"
)

// Errors returned by the fitter.
var (
	ErrNoGrid            = errors.New("fit: wavelength grid must not be nil or empty")
	ErrInitialGuess      = errors.New("fit: initial temperature guess must be positive and finite")
	ErrObservationLength = errors.New("fit: observation length must match the wavelength grid")
	ErrNonFiniteData     = errors.New("fit: observations must be finite")
	ErrNonFiniteResidual = errors.New("fit: initial residual is not finite")
	ErrNoConvergence     = errors.New("fit: optimizer failed to converge")
)

const (
	defaultMaxIterations = 200
	defaultTolerance     = 1e-12

	// convergeIterations is how many successive non-improving iterations
	// the function converger requires before declaring convergence.
	convergeIterations = 10
)

// Result holds the outcome of a temperature fit.
type Result struct {
	// Temperature is the least-squares estimate in Kelvin.
	Temperature float64
	// StdErr is the standard error of Temperature from the Gauss–Newton
	// covariance estimate; valid only when StdErrOK is true.
	StdErr   float64
	StdErrOK bool
	// BestFit is the Planck spectrum at the fitted temperature, evaluated
	// on the input grid in physical units (W·sr⁻¹·m⁻³).
	BestFit []float64
	// Converged reports that the optimizer terminated on a convergence
	// criterion rather than a budget limit.
	Converged bool
	// Iterations is the number of major optimizer iterations.
	Iterations int
}

type config struct {
	maxIterations int
	tolerance     float64
}

// Option configures the fitter.
type Option func(*config)

// WithMaxIterations bounds the number of major optimizer iterations.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// WithTolerance sets the absolute function-convergence tolerance on the
// normalized sum of squared residuals.
func WithTolerance(tol float64) Option {
	return func(c *config) {
		if tol > 0 {
			c.tolerance = tol
		}
	}
}

// Temperature fits the Planck model's temperature parameter to an observed
// spectrum over the given wavelength grid, starting from initialGuess
// (Kelvin). The observation must be finite and have one sample per grid
// point. On success the returned result is fully populated; a fit that
// exhausts its budget or whose optimizer fails returns ErrNoConvergence.
func Temperature(grid *planck.Grid, observed []float64, initialGuess float64, opts ...Option) (*Result, error) {
	if grid == nil || grid.Len() == 0 {
		return nil, ErrNoGrid
	}
	if len(observed) != grid.Len() {
		return nil, ErrObservationLength
	}
	for _, v := range observed {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFiniteData
		}
	}
	if !(initialGuess > 0) || math.IsInf(initialGuess, 1) {
		return nil, ErrInitialGuess
	}

	cfg := config{maxIterations: defaultMaxIterations, tolerance: defaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	wls := grid.Meters()

	// Normalize to the observation peak so the objective is O(1)
	// regardless of the physical magnitudes involved.
	scale := vecmath.MaxAbs(observed)
	if scale == 0 {
		scale = 1
	}
	inv := 1 / scale

	model := make([]float64, len(wls))
	ssr := func(logTemp float64) float64 {
		if err := planck.SpectralRadianceInto(model, wls, math.Exp(logTemp)); err != nil {
			return math.Inf(1)
		}
		sum := 0.0
		for i, m := range model {
			r := (m - observed[i]) * inv
			sum += r * r
		}

		return sum
	}
	objective := func(x []float64) float64 {
		return ssr(x[0])
	}

	x0 := []float64{math.Log(initialGuess)}
	if f0 := objective(x0); math.IsInf(f0, 0) || math.IsNaN(f0) {
		return nil, ErrNonFiniteResidual
	}

	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{
		MajorIterations: cfg.maxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   cfg.tolerance,
			Iterations: convergeIterations,
		},
	}

	// Nelder-Mead terminates on the function converger; gradient-based
	// methods stall in the linesearch once the residual is at the level
	// of floating-point noise.
	sol, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConvergence, err)
	}
	if !converged(sol.Status) {
		return nil, fmt.Errorf("%w: terminated with status %v after %d iterations",
			ErrNoConvergence, sol.Status, sol.Stats.MajorIterations)
	}

	estimate := math.Exp(sol.X[0])

	best := make([]float64, len(wls))
	if err := planck.SpectralRadianceInto(best, wls, estimate); err != nil {
		return nil, fmt.Errorf("%w: best-fit evaluation: %v", ErrNoConvergence, err)
	}

	res := &Result{
		Temperature: estimate,
		BestFit:     best,
		Converged:   true,
		Iterations:  sol.Stats.MajorIterations,
	}
	res.StdErr, res.StdErrOK = standardError(wls, estimate, inv, sol.F, len(observed))

	return res, nil
}

func converged(s optimize.Status) bool {
	switch s {
	case optimize.GradientThreshold,
		optimize.FunctionConvergence,
		optimize.StepConvergence,
		optimize.FunctionThreshold,
		optimize.MethodConverge,
		optimize.Success:
		return true
	default:
		return false
	}
}

// standardError computes the one-parameter Gauss–Newton standard error
// s²/(JᵀJ) at the fitted temperature, in the peak-normalized space the
// objective was minimized in (the normalization cancels in the estimate).
func standardError(wls []float64, temp, inv, ssrMin float64, n int) (float64, bool) {
	dof := n - 1
	if dof < 1 {
		return 0, false
	}

	fdSettings := &fd.Settings{Formula: fd.Central}
	jac := make([]float64, len(wls))
	for i, wl := range wls {
		jac[i] = fd.Derivative(func(t float64) float64 {
			v, err := planck.SpectralRadiance(wl, t)
			if err != nil {
				return math.NaN()
			}
			return v * inv
		}, temp, fdSettings)
	}

	jtj := floats.Dot(jac, jac)
	if jtj <= 0 || math.IsInf(jtj, 0) || math.IsNaN(jtj) {
		return 0, false
	}

	variance := ssrMin / float64(dof) / jtj
	if variance < 0 || math.IsInf(variance, 0) || math.IsNaN(variance) {
		return 0, false
	}

	return math.Sqrt(variance), true
}
