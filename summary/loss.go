package summary

import (
	"fmt"
	"math"
)

// Loss is the cost of deciding d when the true value is v.
type Loss func(d, v float64) float64

// AbsoluteLoss is |d − v|; its expectation is minimized by the median.
func AbsoluteLoss(d, v float64) float64 { return math.Abs(d - v) }

// QuadraticLoss is (d − v)²; its expectation is minimized by the mean.
func QuadraticLoss(d, v float64) float64 { return (d - v) * (d - v) }

// ExpectedLoss averages loss(decision, v) over the draws.
func ExpectedLoss(samples []float64, decision float64, loss Loss) (float64, error) {
	if loss == nil {
		return 0, ErrNilLoss
	}
	if err := checkSamples(samples); err != nil {
		return 0, err
	}
	return expectedLoss(samples, decision, loss), nil
}

// MinimizeLoss returns the candidate decision with the smallest expected
// loss and that loss. Ties go to the earliest candidate.
// Complexity: O(len(candidates)·N).
func MinimizeLoss(samples, candidates []float64, loss Loss) (float64, float64, error) {
	if loss == nil {
		return 0, 0, ErrNilLoss
	}
	if len(candidates) == 0 {
		return 0, 0, ErrNoCandidates
	}
	if err := checkSamples(samples); err != nil {
		return 0, 0, err
	}
	best, bestLoss := candidates[0], math.Inf(1)
	for _, d := range candidates {
		if l := expectedLoss(samples, d, loss); l < bestLoss {
			best, bestLoss = d, l
		}
	}
	if math.IsInf(bestLoss, 1) {
		return 0, 0, fmt.Errorf("MinimizeLoss: %w: every candidate has infinite loss", ErrNoCandidates)
	}
	return best, bestLoss, nil
}

func expectedLoss(samples []float64, d float64, loss Loss) float64 {
	var s float64
	for _, v := range samples {
		s += loss(d, v)
	}
	return s / float64(len(samples))
}
