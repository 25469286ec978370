package model

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/bayesgrid/grid"
	"github.com/katalvlaran/bayesgrid/posterior"
	"github.com/katalvlaran/bayesgrid/sampler"
	"github.com/katalvlaran/bayesgrid/summary"
)

// DefaultDraws is the number of posterior draws when neither the model
// file nor RunOptions set one.
const DefaultDraws = 10_000

// RunOptions override the run settings of the model file. Zero values keep
// the file's setting.
type RunOptions struct {
	Draws   int
	Seed    uint64
	Workers int
	Widths  []float64
}

// Result is the outcome of one model run.
type Result struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Cells         int               `json:"cells"`
	Draws         int               `json:"draws"`
	Seed          uint64            `json:"seed"`
	LogNormalizer float64           `json:"log_normalizer"`
	Parameters    []ParameterResult `json:"parameters"`

	Grid      *grid.Grid         `json:"-"`
	Posterior *posterior.Mass    `json:"-"`
	Samples   *sampler.SampleSet `json:"-"`
}

// ParameterResult holds grid-exact and sample-based summaries of one parameter.
type ParameterResult struct {
	Name    string          `json:"name"`
	Exact   Exact           `json:"exact"`
	Summary summary.Summary `json:"summary"`
}

// Exact summaries are computed from the grid mass without sampling.
type Exact struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"sd"`
	MAP    float64 `json:"map"`
}

// Parameter returns the result of the named parameter.
func (r *Result) Parameter(name string) (ParameterResult, bool) {
	for _, p := range r.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return ParameterResult{}, false
}

// Run computes the posterior of m, draws from it and summarizes each
// parameter. Draws are worker-independent: the same seed gives the same
// result for every worker count.
func Run(ctx context.Context, m *Model, opts RunOptions) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	o := m.settings(opts)

	mass, err := posterior.ComputeLogContext(ctx, m.Grid, m.LogPrior, m.LogLikelihood,
		posterior.WithWorkers(o.Workers))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", m.name(), err)
	}
	ss, err := sampler.SampleParallel(ctx, m.Grid, mass.Probs(), o.Draws, o.Seed, o.Workers)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", m.name(), err)
	}

	res := &Result{
		ID:            uuid.NewString(),
		Name:          m.name(),
		Cells:         m.Grid.Size(),
		Draws:         o.Draws,
		Seed:          o.Seed,
		LogNormalizer: mass.LogNormalizer(),
		Grid:          m.Grid,
		Posterior:     mass,
		Samples:       ss,
	}
	_, mapTuple := mass.MAP()
	for k, name := range m.Grid.Names() {
		pr := ParameterResult{Name: name}
		pr.Exact.MAP = mapTuple[k]
		if pr.Exact.Mean, err = mass.Mean(k); err != nil {
			return nil, fmt.Errorf("run %s: %w", m.name(), err)
		}
		if pr.Exact.StdDev, err = mass.StdDev(k); err != nil {
			return nil, fmt.Errorf("run %s: %w", m.name(), err)
		}
		if ss.Len() > 0 {
			draws, _ := ss.Param(k)
			if pr.Summary, err = summary.Describe(draws, o.Widths...); err != nil {
				return nil, fmt.Errorf("run %s: %s: %w", m.name(), name, err)
			}
		}
		res.Parameters = append(res.Parameters, pr)
	}
	return res, nil
}

// settings merges opts over the model file and the defaults.
func (m *Model) settings(opts RunOptions) RunOptions {
	o := RunOptions{
		Draws:   m.Spec.Draws,
		Seed:    m.Spec.Seed,
		Workers: m.Spec.Workers,
		Widths:  m.Spec.Widths,
	}
	if opts.Draws > 0 {
		o.Draws = opts.Draws
	}
	if opts.Seed != 0 {
		o.Seed = opts.Seed
	}
	if opts.Workers > 0 {
		o.Workers = opts.Workers
	}
	if len(opts.Widths) > 0 {
		o.Widths = opts.Widths
	}
	if o.Draws == 0 {
		o.Draws = DefaultDraws
	}
	if o.Workers == 0 {
		o.Workers = 1
	}
	if len(o.Widths) == 0 {
		o.Widths = summary.DefaultWidths()
	}
	return o
}

func (m *Model) name() string {
	if m.Spec.Name == "" {
		return "model"
	}
	return m.Spec.Name
}
