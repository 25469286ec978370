package summary

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// kdePoints is the number of evaluation points of the mode's density estimate.
const kdePoints = 512

// Point returns the point estimate selected by est.
func Point(samples []float64, est Estimator) (PointEstimate, error) {
	var (
		v   float64
		err error
	)
	switch est {
	case EstimatorMean:
		v, err = Mean(samples)
	case EstimatorMedian:
		v, err = Median(samples)
	case EstimatorMode:
		v, err = Mode(samples)
	default:
		return PointEstimate{}, fmt.Errorf("%w: estimator %q", ErrUnknownMethod, est)
	}
	if err != nil {
		return PointEstimate{}, err
	}
	return PointEstimate{Value: v, Estimator: est}, nil
}

// Mean returns the arithmetic mean of samples.
func Mean(samples []float64) (float64, error) {
	if err := checkSamples(samples); err != nil {
		return 0, err
	}
	return stat.Mean(samples, nil), nil
}

// StdDev returns the sample standard deviation (N−1 denominator); 0 for a
// single draw.
func StdDev(samples []float64) (float64, error) {
	if err := checkSamples(samples); err != nil {
		return 0, err
	}
	if len(samples) == 1 {
		return 0, nil
	}
	return stat.StdDev(samples, nil), nil
}

// Median returns Quantile(samples, 0.5).
func Median(samples []float64) (float64, error) {
	return Quantile(samples, 0.5)
}

// Mode returns the most probable value of the draws.
//
// Draws from a grid repeat, so when any value occurs more than once the
// most frequent value wins (ties go to the smallest value). Otherwise the
// mode is the peak of a Gaussian kernel density estimate with Scott's
// bandwidth, evaluated on 512 evenly spaced points between the smallest and
// largest draw; the first maximum wins.
func Mode(samples []float64) (float64, error) {
	x, err := sorted(samples)
	if err != nil {
		return 0, err
	}
	if v, ok := mostFrequent(x); ok {
		return v, nil
	}
	return kdePeak(x), nil
}

// mostFrequent returns the value of the longest run in sorted x, or false
// when every value is distinct.
func mostFrequent(x []float64) (float64, bool) {
	best, bestRun := x[0], 1
	run := 1
	for i := 1; i < len(x); i++ {
		if x[i] == x[i-1] {
			run++
		} else {
			run = 1
		}
		if run > bestRun {
			best, bestRun = x[i], run
		}
	}
	return best, bestRun > 1
}

// kdePeak evaluates the kernel density of sorted, distinct x on a regular
// mesh and returns the mesh point of highest density.
func kdePeak(x []float64) float64 {
	n := len(x)
	if n == 1 {
		return x[0]
	}
	bw := scottBandwidth(x)
	lo, hi := x[0], x[n-1]
	mesh := make([]float64, kdePoints)
	floats.Span(mesh, lo, hi)

	dens := make([]float64, kdePoints)
	for j, t := range mesh {
		var s float64
		for _, v := range x {
			s += distuv.UnitNormal.Prob((t - v) / bw)
		}
		dens[j] = s
	}
	return mesh[floats.MaxIdx(dens)]
}

// scottBandwidth is 1.06·min(σ, IQR/1.349)·N^(−1/5) for sorted x.
func scottBandwidth(x []float64) float64 {
	sd := stat.StdDev(x, nil)
	iqr := quantileSorted(x, 0.75) - quantileSorted(x, 0.25)
	spread := sd
	if r := iqr / 1.349; r > 0 && r < spread {
		spread = r
	}
	return 1.06 * spread * math.Pow(float64(len(x)), -1.0/5)
}

func checkSamples(samples []float64) error {
	if len(samples) == 0 {
		return ErrInsufficientSamples
	}
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: draw %d is %v", ErrNonFiniteSample, i, v)
		}
	}
	return nil
}
