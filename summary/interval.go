package summary

import (
	"fmt"
	"math"
	"sort"
)

// hdiGuard absorbs representation error in w·N before rounding up, so that
// w = 0.89 with N = 100 keeps k = 89 rather than 90.
const hdiGuard = 1e-9

// Quantile returns the q-quantile of samples by linear interpolation
// between order statistics: with x sorted and h = q·(N−1),
// Q(q) = x[⌊h⌋] + (h−⌊h⌋)·(x[⌊h⌋+1] − x[⌊h⌋]).
//
// Complexity: O(N log N).
func Quantile(samples []float64, q float64) (float64, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidQuantile, q)
	}
	x, err := sorted(samples)
	if err != nil {
		return 0, err
	}
	return quantileSorted(x, q), nil
}

// QuantileInterval returns the equal-tailed interval holding width of the
// mass: [Quantile((1−w)/2), Quantile((1+w)/2)].
func QuantileInterval(samples []float64, width float64) (Interval, error) {
	return interval(samples, MethodQuantile, width)
}

// HDI returns the highest-density interval: the narrowest interval between
// two order statistics that holds k = ceil(w·N) draws. Ties go to the window
// with the lowest lower bound. width = 1 returns [min, max].
func HDI(samples []float64, width float64) (Interval, error) {
	return interval(samples, MethodHDI, width)
}

// Intervals computes one interval per width with the given method. Each
// width is computed independently of the others.
func Intervals(samples []float64, method Method, widths ...float64) ([]Interval, error) {
	if method != MethodQuantile && method != MethodHDI {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	x, err := sorted(samples)
	if err != nil {
		return nil, err
	}
	out := make([]Interval, 0, len(widths))
	for _, w := range widths {
		iv, err := intervalSorted(x, method, w)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}

func interval(samples []float64, method Method, width float64) (Interval, error) {
	if err := checkWidth(width); err != nil {
		return Interval{}, err
	}
	x, err := sorted(samples)
	if err != nil {
		return Interval{}, err
	}
	return intervalSorted(x, method, width)
}

func intervalSorted(x []float64, method Method, width float64) (Interval, error) {
	if err := checkWidth(width); err != nil {
		return Interval{}, err
	}
	iv := Interval{Method: method, Width: width}
	switch method {
	case MethodQuantile:
		iv.Lower = quantileSorted(x, (1-width)/2)
		iv.Upper = quantileSorted(x, (1+width)/2)
	case MethodHDI:
		iv.Lower, iv.Upper = hdiSorted(x, width)
	default:
		return Interval{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	return iv, nil
}

// hdiSorted scans every window of k consecutive order statistics and keeps
// the first one of minimal span.
func hdiSorted(x []float64, width float64) (float64, float64) {
	n := len(x)
	k := int(math.Ceil(width*float64(n) - hdiGuard))
	k = max(1, min(k, n))

	best := 0
	span := x[k-1] - x[0]
	for i := 1; i+k <= n; i++ {
		if s := x[i+k-1] - x[i]; s < span {
			best, span = i, s
		}
	}
	return x[best], x[best+k-1]
}

// quantileSorted is Quantile over already sorted, non-empty x.
func quantileSorted(x []float64, q float64) float64 {
	n := len(x)
	h := q * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return x[n-1]
	}
	return x[lo] + (h-float64(lo))*(x[lo+1]-x[lo])
}

// sorted returns a sorted copy of samples after checking it is non-empty
// and finite.
func sorted(samples []float64) ([]float64, error) {
	if len(samples) == 0 {
		return nil, ErrInsufficientSamples
	}
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: draw %d is %v", ErrNonFiniteSample, i, v)
		}
	}
	x := make([]float64, len(samples))
	copy(x, samples)
	sort.Float64s(x)
	return x, nil
}

func checkWidth(w float64) error {
	if math.IsNaN(w) || w <= 0 || w > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidWidth, w)
	}
	return nil
}
