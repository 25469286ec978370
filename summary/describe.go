package summary

import "gonum.org/v1/gonum/stat"

// DefaultWidth is the interval width used by Describe when none is given.
const DefaultWidth = 0.89

// DefaultWidths returns a new slice holding DefaultWidth.
func DefaultWidths() []float64 { return []float64{DefaultWidth} }

// Describe returns count, mean, standard deviation, median, mode and, for
// every width, a quantile interval followed by a highest-density interval.
// With no widths, DefaultWidth is used.
func Describe(samples []float64, widths ...float64) (Summary, error) {
	x, err := sorted(samples)
	if err != nil {
		return Summary{}, err
	}
	if len(widths) == 0 {
		widths = DefaultWidths()
	}

	s := Summary{
		N:         len(x),
		Mean:      stat.Mean(x, nil),
		Median:    quantileSorted(x, 0.5),
		Intervals: make([]Interval, 0, 2*len(widths)),
	}
	if s.N > 1 {
		s.StdDev = stat.StdDev(x, nil)
	}
	if v, ok := mostFrequent(x); ok {
		s.Mode = v
	} else {
		s.Mode = kdePeak(x)
	}
	for _, w := range widths {
		for _, m := range []Method{MethodQuantile, MethodHDI} {
			iv, err := intervalSorted(x, m, w)
			if err != nil {
				return Summary{}, err
			}
			s.Intervals = append(s.Intervals, iv)
		}
	}
	return s, nil
}

// Fraction returns the share of draws satisfying pred, e.g. the posterior
// probability that p < 0.5.
func Fraction(samples []float64, pred func(float64) bool) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrInsufficientSamples
	}
	if pred == nil {
		return 0, ErrNilPredicate
	}
	var hits int
	for _, v := range samples {
		if pred(v) {
			hits++
		}
	}
	return float64(hits) / float64(len(samples)), nil
}
