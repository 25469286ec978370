package density

import "math"

// Constant returns a Func with the same weight everywhere (a flat, improper prior).
func Constant(w float64) Func {
	return func([]float64) float64 { return w }
}

// OnAxis lifts d to a Func that reads parameter params[axis].
// It panics when a tuple shorter than axis+1 is evaluated (programmer error).
func OnAxis(axis int, d Distribution) Func {
	return func(params []float64) float64 {
		return d.Prob(params[axis])
	}
}

// LogOnAxis is OnAxis on the log scale.
func LogOnAxis(axis int, d Distribution) Func {
	return func(params []float64) float64 {
		return d.LogProb(params[axis])
	}
}

// Product multiplies weights: the joint density of independent factors.
// It short-circuits on the first zero factor.
func Product(fs ...Func) Func {
	return func(params []float64) float64 {
		w := 1.0
		for _, f := range fs {
			w *= f(params)
			if w == 0 {
				return 0
			}
		}
		return w
	}
}

// LogSum adds log-weights: the log of Product over log-scale factors.
func LogSum(fs ...Func) Func {
	return func(params []float64) float64 {
		var s float64
		for _, f := range fs {
			s += f(params)
			if math.IsInf(s, -1) {
				return negInf
			}
		}
		return s
	}
}

// Log converts a weight Func into a log-weight Func. Non-positive and
// non-finite weights map to -Inf.
func Log(f Func) Func {
	return func(params []float64) float64 {
		w := f(params)
		if !(w > 0) || math.IsInf(w, 1) {
			return negInf
		}
		return math.Log(w)
	}
}
