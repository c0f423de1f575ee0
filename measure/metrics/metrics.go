// Package metrics computes goodness-of-fit error metrics between an
// observed and a predicted series: root-mean-square error, mean absolute
// percentage error, and Pearson's chi-square statistic.
//
// A metric whose denominator vanishes for any element fails with an
// explicit error (ErrZeroReference for MAPE, ErrZeroPrediction for
// chi-square); no Inf or NaN is ever folded into an aggregate.
package metrics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by the metric functions.
var (
	ErrLengthMismatch = errors.New("metrics: series must have equal length")
	ErrEmptySeries    = errors.New("metrics: series must not be empty")
	ErrNonFinite      = errors.New("metrics: series must contain only finite values")
	ErrZeroReference  = errors.New("metrics: reference series contains a zero element")
	ErrZeroPrediction = errors.New("metrics: predicted series contains a zero element")
)

// Report aggregates all three metrics for one observed/predicted pair.
type Report struct {
	RMSE      float64
	MAPE      float64 // percent
	ChiSquare float64
}

// RMSE returns sqrt(mean((yTrue−yPred)²)). Defined for any finite inputs.
func RMSE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair(yTrue, yPred); err != nil {
		return 0, err
	}

	resid := make([]float64, len(yTrue))
	floats.SubTo(resid, yTrue, yPred)

	return math.Sqrt(floats.Dot(resid, resid) / float64(len(resid))), nil
}

// MAPE returns mean(|yTrue−yPred| / |yTrue|)·100. It fails with
// ErrZeroReference if any reference element is exactly zero.
func MAPE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair(yTrue, yPred); err != nil {
		return 0, err
	}

	sum := 0.0
	for i, yt := range yTrue {
		if yt == 0 {
			return 0, ErrZeroReference
		}
		sum += math.Abs(yt-yPred[i]) / math.Abs(yt)
	}

	return sum / float64(len(yTrue)) * 100, nil
}

// ChiSquare returns sum((yTrue−yPred)² / yPred). It fails with
// ErrZeroPrediction if any predicted element is exactly zero.
func ChiSquare(yTrue, yPred []float64) (float64, error) {
	if err := checkPair(yTrue, yPred); err != nil {
		return 0, err
	}

	sum := 0.0
	for i, yp := range yPred {
		if yp == 0 {
			return 0, ErrZeroPrediction
		}
		d := yTrue[i] - yp
		sum += d * d / yp
	}

	return sum, nil
}

// Evaluate computes the full report for an observed/predicted pair. It
// fails if any single metric is undefined for the data.
func Evaluate(observed, predicted []float64) (*Report, error) {
	rmse, err := RMSE(observed, predicted)
	if err != nil {
		return nil, err
	}
	mape, err := MAPE(observed, predicted)
	if err != nil {
		return nil, err
	}
	chi2, err := ChiSquare(observed, predicted)
	if err != nil {
		return nil, err
	}

	return &Report{RMSE: rmse, MAPE: mape, ChiSquare: chi2}, nil
}

func checkPair(yTrue, yPred []float64) error {
	if len(yTrue) != len(yPred) {
		return ErrLengthMismatch
	}
	if len(yTrue) == 0 {
		return ErrEmptySeries
	}
	for i := range yTrue {
		if !finite(yTrue[i]) || !finite(yPred[i]) {
			return ErrNonFinite
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
