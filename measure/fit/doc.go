// Package fit estimates the temperature of a black-body emitter from an
// observed spectrum by nonlinear least squares.
//
// The residual between the Planck model and the observation is minimized
// with a derivative-free Nelder-Mead iteration over x = ln T, which keeps
// every trial temperature positive without constraint handling. Observations
// are normalized to their peak before fitting, so convergence tolerances
// are scale-free and the recovered temperature does not depend on the
// (arbitrary) intensity units of the input.
//
// # Usage
//
//	grid, _ := planck.Linspace(400, 800, 200)
//	res, err := fit.Temperature(grid, observed, 3000)
//	if err != nil {
//	    // fit.ErrNoConvergence: retry with a different guess
//	}
//	fmt.Println(res.Temperature, res.StdErr)
//
// The standard error of the estimate comes from the Gauss–Newton
// covariance approximation s²·(JᵀJ)⁻¹ with a central-difference Jacobian;
// StdErrOK reports whether that estimate was available. Results are
// reproducible: the optimizer and the difference schemes contain no
// randomness.
package fit
