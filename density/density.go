package density

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// familyErrorf tags err with the family it concerns. errors.Is still matches the sentinel.
func familyErrorf(family Family, err error) error {
	return fmt.Errorf("%s: %w", family, err)
}

// New returns the Distribution of family with the given parameters.
//
// Parameters, by family:
//   - binomial(n, p): n a non-negative integer, p in [0,1]
//   - normal(mu, sigma): sigma > 0
//   - uniform(low, high): low < high
//   - cauchy(loc, scale): scale > 0
//   - beta(alpha, beta): alpha > 0, beta > 0
//
// All parameters must be finite.
//
// Errors:
//   - ErrUnsupportedDistribution for an unknown family.
//   - ErrInvalidParameter for wrong arity or out-of-domain values.
//
// Complexity: O(1).
func New(family Family, params ...float64) (Distribution, error) {
	want, err := Arity(family)
	if err != nil {
		return nil, err
	}
	if len(params) != want {
		return nil, familyErrorf(family, fmt.Errorf("%w: want %d parameters, got %d", ErrInvalidParameter, want, len(params)))
	}
	for _, v := range params {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, familyErrorf(family, fmt.Errorf("%w: non-finite parameter %v", ErrInvalidParameter, v))
		}
	}

	a, b := params[0], params[1]
	switch family {
	case FamilyBinomial:
		if a < 0 || math.Floor(a) != a {
			return nil, familyErrorf(family, fmt.Errorf("%w: trials must be a non-negative integer, got %v", ErrInvalidParameter, a))
		}
		if b < 0 || b > 1 {
			return nil, familyErrorf(family, fmt.Errorf("%w: p must be in [0,1], got %v", ErrInvalidParameter, b))
		}
		return binomial{dist: distuv.Binomial{N: a, P: b}}, nil
	case FamilyNormal:
		if b <= 0 {
			return nil, familyErrorf(family, fmt.Errorf("%w: sigma must be > 0, got %v", ErrInvalidParameter, b))
		}
		return logProber{dist: distuv.Normal{Mu: a, Sigma: b}}, nil
	case FamilyUniform:
		if a >= b {
			return nil, familyErrorf(family, fmt.Errorf("%w: need low < high, got [%v, %v]", ErrInvalidParameter, a, b))
		}
		return logProber{dist: distuv.Uniform{Min: a, Max: b}}, nil
	case FamilyCauchy:
		if b <= 0 {
			return nil, familyErrorf(family, fmt.Errorf("%w: scale must be > 0, got %v", ErrInvalidParameter, b))
		}
		// Cauchy(loc, scale) is Student's t with one degree of freedom.
		return logProber{dist: distuv.StudentsT{Mu: a, Sigma: b, Nu: 1}}, nil
	case FamilyBeta:
		if a <= 0 || b <= 0 {
			return nil, familyErrorf(family, fmt.Errorf("%w: shapes must be > 0, got (%v, %v)", ErrInvalidParameter, a, b))
		}
		return logProber{dist: distuv.Beta{Alpha: a, Beta: b}}, nil
	}

	return nil, familyErrorf(family, ErrUnsupportedDistribution)
}

// MustNew is New for parameters known to be valid at compile time.
// It panics on error and is meant for tests, examples and package-level vars.
func MustNew(family Family, params ...float64) Distribution {
	d, err := New(family, params...)
	if err != nil {
		panic(err)
	}
	return d
}

// logProber adapts a distuv distribution. Prob is derived from LogProb so
// both agree exactly, and NaN is folded into zero density.
type logProber struct {
	dist interface{ LogProb(float64) float64 }
}

func (d logProber) LogProb(x float64) float64 {
	lp := d.dist.LogProb(x)
	if math.IsNaN(lp) {
		return negInf
	}
	return lp
}

func (d logProber) Prob(x float64) float64 {
	return math.Exp(d.LogProb(x))
}

// binomial handles p ∈ {0, 1} explicitly: distuv evaluates 0·log(0) there,
// which is NaN.
type binomial struct {
	dist distuv.Binomial
}

func (b binomial) LogProb(k float64) float64 {
	n, p := b.dist.N, b.dist.P
	if k < 0 || k > n || math.Floor(k) != k {
		return negInf
	}
	switch p {
	case 0:
		if k == 0 {
			return 0
		}
		return negInf
	case 1:
		if k == n {
			return 0
		}
		return negInf
	}
	return b.dist.LogProb(k)
}

func (b binomial) Prob(k float64) float64 {
	return math.Exp(b.LogProb(k))
}

// LogLikelihood returns Σ d.LogProb(x) over observations. It stops early at
// the first impossible observation and returns -Inf. An empty observation
// vector has log-likelihood 0.
//
// Complexity: O(len(observations)).
func LogLikelihood(d Distribution, observations []float64) float64 {
	var sum float64
	for _, x := range observations {
		lp := d.LogProb(x)
		if math.IsInf(lp, -1) {
			return negInf
		}
		sum += lp
	}
	return sum
}

// prob evaluates family at x, returning 0 when the parameters are invalid.
func prob(family Family, x float64, params ...float64) float64 {
	d, err := New(family, params...)
	if err != nil {
		return 0
	}
	return d.Prob(x)
}

// Binomial returns Pr[k successes in n trials | p], 0 for invalid arguments.
// At p=0 and p=1 the result is exactly 0 or 1.
func Binomial(k, n int, p float64) float64 {
	return prob(FamilyBinomial, float64(k), float64(n), p)
}

// Normal returns the Normal(mu, sigma) density at x, 0 for sigma <= 0.
func Normal(x, mu, sigma float64) float64 {
	return prob(FamilyNormal, x, mu, sigma)
}

// Uniform returns the Uniform(low, high) density at x, 0 for low >= high.
func Uniform(x, low, high float64) float64 {
	return prob(FamilyUniform, x, low, high)
}

// Cauchy returns the Cauchy(loc, scale) density at x, 0 for scale <= 0.
func Cauchy(x, loc, scale float64) float64 {
	return prob(FamilyCauchy, x, loc, scale)
}

// Beta returns the Beta(a, b) density at x, 0 for non-positive shapes.
func Beta(x, a, b float64) float64 {
	return prob(FamilyBeta, x, a, b)
}
