package sampler

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Simulator draws one simulated observation given a parameter value.
// It must use only src for randomness.
type Simulator func(param float64, src rand.Source) float64

// Predict simulates one observation per parameter draw, in draw order, so
// that parameter uncertainty propagates into the predictions. A nil src
// uses NewSource(0).
func Predict(draws []float64, src rand.Source, simulate Simulator) ([]float64, error) {
	if simulate == nil {
		return nil, fmt.Errorf("Predict: %w", ErrNilSimulator)
	}
	src = orDefault(src)
	out := make([]float64, len(draws))
	for i, p := range draws {
		out[i] = simulate(p, src)
	}
	return out, nil
}

// BinomialSimulator returns a Simulator that counts successes in trials
// Bernoulli trials with success probability param. Probabilities outside
// [0,1] are clamped.
func BinomialSimulator(trials int) (Simulator, error) {
	if trials < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	n := float64(trials)
	return func(p float64, src rand.Source) float64 {
		switch {
		case trials == 0 || !(p > 0):
			return 0
		case p >= 1:
			return n
		}
		return distuv.Binomial{N: n, P: p, Src: src}.Rand()
	}, nil
}
