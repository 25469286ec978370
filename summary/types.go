package summary

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for summaries.
var (
	// ErrInsufficientSamples indicates an empty sample vector.
	ErrInsufficientSamples = errors.New("summary: no samples")

	// ErrInvalidWidth indicates an interval width outside (0, 1] or NaN.
	ErrInvalidWidth = errors.New("summary: width must be in (0, 1]")

	// ErrInvalidQuantile indicates a quantile level outside [0, 1] or NaN.
	ErrInvalidQuantile = errors.New("summary: quantile must be in [0, 1]")

	// ErrUnknownMethod indicates an unrecognized interval method or estimator.
	ErrUnknownMethod = errors.New("summary: unknown method")

	// ErrNonFiniteSample indicates a NaN or ±Inf draw.
	ErrNonFiniteSample = errors.New("summary: non-finite sample")

	// ErrNoCandidates indicates MinimizeLoss was given no decisions to compare.
	ErrNoCandidates = errors.New("summary: no candidate decisions")

	// ErrNilLoss indicates a nil loss function.
	ErrNilLoss = errors.New("summary: loss function is nil")

	// ErrNilPredicate indicates a nil predicate.
	ErrNilPredicate = errors.New("summary: predicate is nil")
)

// Method selects how a credible interval is built.
type Method string

const (
	// MethodQuantile is the equal-tailed (percentile) interval.
	MethodQuantile Method = "quantile"
	// MethodHDI is the highest-density interval.
	MethodHDI Method = "highest-density"
)

// ParseMethod resolves a method name, accepting the common short forms
// "pi", "percentile", "hdi" and "hpdi".
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(MethodQuantile), "pi", "percentile":
		return MethodQuantile, nil
	case string(MethodHDI), "hdi", "hpdi":
		return MethodHDI, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Estimator selects a point estimate.
type Estimator string

// Supported estimators.
const (
	EstimatorMean   Estimator = "mean"
	EstimatorMedian Estimator = "median"
	EstimatorMode   Estimator = "mode"
)

// Interval is a credible interval with Lower <= Upper.
type Interval struct {
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
	Method Method  `json:"method"`
	Width  float64 `json:"width"`
}

// Span returns Upper - Lower.
func (iv Interval) Span() float64 { return iv.Upper - iv.Lower }

// Contains reports whether x lies in the closed interval.
func (iv Interval) Contains(x float64) bool { return x >= iv.Lower && x <= iv.Upper }

// String formats the interval as "<width>% <method> [lower, upper]", for
// example "50% quantile [2.2500, 3.7500]".
func (iv Interval) String() string {
	return fmt.Sprintf("%.4g%% %s [%.4f, %.4f]", iv.Width*100, iv.Method, iv.Lower, iv.Upper)
}

// PointEstimate is a single-value summary of the draws.
type PointEstimate struct {
	Value     float64   `json:"value"`
	Estimator Estimator `json:"estimator"`
}

// Summary is the usual description of one parameter's draws.
type Summary struct {
	N         int        `json:"n"`
	Mean      float64    `json:"mean"`
	StdDev    float64    `json:"sd"`
	Median    float64    `json:"median"`
	Mode      float64    `json:"mode"`
	Intervals []Interval `json:"intervals"`
}

// Interval returns the first interval with the given method and width.
func (s Summary) Interval(method Method, width float64) (Interval, bool) {
	for _, iv := range s.Intervals {
		if iv.Method == method && iv.Width == width {
			return iv, true
		}
	}
	return Interval{}, false
}
