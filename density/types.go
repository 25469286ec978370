package density

import (
	"errors"
	"math"
	"strings"
)

// Sentinel errors for density construction.
var (
	// ErrUnsupportedDistribution indicates a family name this package does not implement.
	ErrUnsupportedDistribution = errors.New("density: unsupported distribution")

	// ErrInvalidParameter indicates wrong parameter arity or an out-of-domain value
	// (e.g. sigma <= 0, p outside [0,1], non-integer trial count).
	ErrInvalidParameter = errors.New("density: invalid distribution parameter")
)

// Family names a supported distribution family.
type Family string

const (
	// FamilyBinomial is Binomial(n, p): mass of k successes in n trials.
	FamilyBinomial Family = "binomial"
	// FamilyNormal is Normal(mu, sigma).
	FamilyNormal Family = "normal"
	// FamilyUniform is Uniform(low, high) on the closed interval.
	FamilyUniform Family = "uniform"
	// FamilyCauchy is Cauchy(loc, scale).
	FamilyCauchy Family = "cauchy"
	// FamilyBeta is Beta(alpha, beta) on [0,1].
	FamilyBeta Family = "beta"
)

// arity is the number of parameters each family takes.
var arity = map[Family]int{
	FamilyBinomial: 2,
	FamilyNormal:   2,
	FamilyUniform:  2,
	FamilyCauchy:   2,
	FamilyBeta:     2,
}

// aliases maps accepted spellings onto canonical family names.
var aliases = map[string]Family{
	"binomial": FamilyBinomial,
	"binom":    FamilyBinomial,
	"normal":   FamilyNormal,
	"gaussian": FamilyNormal,
	"uniform":  FamilyUniform,
	"cauchy":   FamilyCauchy,
	"beta":     FamilyBeta,
}

// Families returns the canonical supported families in a stable order.
func Families() []Family {
	return []Family{FamilyBinomial, FamilyNormal, FamilyUniform, FamilyCauchy, FamilyBeta}
}

// ParseFamily resolves a case-insensitive family name (including the alias
// "gaussian" for normal). Unknown names yield ErrUnsupportedDistribution.
func ParseFamily(name string) (Family, error) {
	f, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", familyErrorf(Family(name), ErrUnsupportedDistribution)
	}
	return f, nil
}

// Arity returns the parameter count of family, or ErrUnsupportedDistribution.
func Arity(family Family) (int, error) {
	n, ok := arity[family]
	if !ok {
		return 0, familyErrorf(family, ErrUnsupportedDistribution)
	}
	return n, nil
}

// Distribution is a one-dimensional density (or mass) function with fixed parameters.
type Distribution interface {
	// Prob returns the density (mass for discrete families) at x. Never NaN.
	Prob(x float64) float64

	// LogProb returns log Prob(x); -Inf where Prob is zero.
	LogProb(x float64) float64
}

// Func maps a parameter tuple to a non-negative weight. Results that are
// negative or not finite are treated as zero weight by consumers.
type Func func(params []float64) float64

var negInf = math.Inf(-1)
