package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/bayesgrid/density"
	"github.com/katalvlaran/bayesgrid/grid"
	"gopkg.in/yaml.v3"
)

// Model is a compiled Spec: the grid plus log-scale prior and likelihood
// ready for posterior.ComputeLog.
type Model struct {
	Spec          Spec
	Grid          *grid.Grid
	LogPrior      density.Func
	LogLikelihood density.Func
}

// Parse decodes and validates a YAML model. Unknown fields are rejected.
func Parse(r io.Reader) (*Spec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Spec
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSpec)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and validates the model file at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Validate checks every field without building the grid.
func (s *Spec) Validate() error {
	if len(s.Parameters) == 0 {
		return fmt.Errorf("%w: parameters: at least one is required", ErrInvalidSpec)
	}
	counts := make([]int, len(s.Parameters))
	for i, p := range s.Parameters {
		counts[i] = p.Count
	}
	// Reject oversized grids before any axis is allocated; bad counts are
	// reported per parameter below.
	if _, err := grid.CellCount(counts...); errors.Is(err, grid.ErrTooManyCells) {
		return fmt.Errorf("%w: parameters: %w", ErrInvalidSpec, err)
	}

	names := make(map[string]bool, len(s.Parameters))
	for i, p := range s.Parameters {
		field := fmt.Sprintf("parameters[%d]", i)
		if p.Name == "" {
			return fmt.Errorf("%w: %s.name: required", ErrInvalidSpec, field)
		}
		if names[p.Name] {
			return fmt.Errorf("%w: %s.name: duplicate %q", ErrInvalidSpec, field, p.Name)
		}
		names[p.Name] = true
		if _, err := grid.BuildNamed(p.Name, p.Low, p.High, p.Count); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidSpec, field, err)
		}
		if _, err := p.Prior.distribution(); err != nil {
			return fmt.Errorf("%w: %s.prior: %w", ErrInvalidSpec, field, err)
		}
	}
	if err := s.Likelihood.validate(names); err != nil {
		return err
	}

	if s.Draws < 0 {
		return fmt.Errorf("%w: draws: must be >= 0, got %d", ErrInvalidSpec, s.Draws)
	}
	if s.Workers < 0 {
		return fmt.Errorf("%w: workers: must be >= 0, got %d", ErrInvalidSpec, s.Workers)
	}
	for i, w := range s.Widths {
		if math.IsNaN(w) || w <= 0 || w > 1 {
			return fmt.Errorf("%w: widths[%d]: must be in (0, 1], got %v", ErrInvalidSpec, i, w)
		}
	}
	return nil
}

// Compile validates s and builds the grid, the joint log prior and the log
// likelihood.
func (s *Spec) Compile() (*Model, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	axes := make([]grid.Axis, len(s.Parameters))
	var priors []density.Func
	for k, p := range s.Parameters {
		axes[k] = grid.MustBuild(p.Name, p.Low, p.High, p.Count)
		d, _ := p.Prior.distribution()
		if d != nil {
			priors = append(priors, density.LogOnAxis(k, d))
		}
	}
	g, err := grid.Product(axes...)
	if err != nil {
		return nil, fmt.Errorf("%w: parameters: %w", ErrInvalidSpec, err)
	}

	logPrior := density.Constant(0)
	if len(priors) > 0 {
		logPrior = density.LogSum(priors...)
	}
	return &Model{
		Spec:          *s,
		Grid:          g,
		LogPrior:      logPrior,
		LogLikelihood: s.Likelihood.compile(g),
	}, nil
}

// distribution returns nil for a flat prior.
func (p Prior) distribution() (density.Distribution, error) {
	if p.Family == "" {
		if len(p.Params) > 0 {
			return nil, errors.New("params given without a family")
		}
		return nil, nil
	}
	fam, err := density.ParseFamily(p.Family)
	if err != nil {
		return nil, err
	}
	return density.New(fam, p.Params...)
}

func (l Likelihood) validate(names map[string]bool) error {
	fam, err := density.ParseFamily(l.Family)
	if err != nil {
		return fmt.Errorf("%w: likelihood.family: %w", ErrInvalidSpec, err)
	}
	arity, _ := density.Arity(fam)
	if len(l.Params) != arity {
		return fmt.Errorf("%w: likelihood.params: %s takes %d parameters, got %d",
			ErrInvalidSpec, fam, arity, len(l.Params))
	}
	for i, r := range l.Params {
		if r.IsRef() && !names[r.Name] {
			return fmt.Errorf("%w: likelihood.params[%d]: %w: %q", ErrInvalidSpec, i, ErrUnknownParameter, r.Name)
		}
		if !r.IsRef() && (math.IsNaN(r.Value) || math.IsInf(r.Value, 0)) {
			return fmt.Errorf("%w: likelihood.params[%d]: not finite", ErrInvalidSpec, i)
		}
	}
	for i, y := range l.Observations {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return fmt.Errorf("%w: likelihood.observations[%d]: not finite", ErrInvalidSpec, i)
		}
	}
	return nil
}

// compile resolves parameter references to axis positions of g. Parameter
// tuples where the family rejects its parameters (e.g. sigma <= 0) get
// log likelihood -Inf.
func (l Likelihood) compile(g *grid.Grid) density.Func {
	fam, _ := density.ParseFamily(l.Family)
	obs := append([]float64(nil), l.Observations...)
	consts := make([]float64, len(l.Params))
	axisOf := make([]int, len(l.Params))
	for i, r := range l.Params {
		axisOf[i] = -1
		if r.IsRef() {
			axisOf[i], _ = g.AxisIndex(r.Name)
		} else {
			consts[i] = r.Value
		}
	}

	return func(params []float64) float64 {
		vals := make([]float64, len(consts))
		for i, k := range axisOf {
			if k < 0 {
				vals[i] = consts[i]
			} else {
				vals[i] = params[k]
			}
		}
		d, err := density.New(fam, vals...)
		if err != nil {
			return math.Inf(-1)
		}
		return density.LogLikelihood(d, obs)
	}
}
