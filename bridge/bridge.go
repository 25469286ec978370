package bridge

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bayesgrid/sampler"
	"github.com/katalvlaran/bayesgrid/summary"
)

// sampleSetSource serves grid draws through the Source contract.
type sampleSetSource struct {
	ss *sampler.SampleSet
}

// FromSampleSet adapts grid draws to a Source.
func FromSampleSet(ss *sampler.SampleSet) Source {
	return sampleSetSource{ss: ss}
}

func (s sampleSetSource) Draws(ctx context.Context, param string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.ss == nil {
		return nil, ErrNilSource
	}
	draws, err := s.ss.ParamByName(param)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, param)
	}
	if len(draws) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoDraws, param)
	}
	return draws, nil
}

// TraceFromSampleSet copies grid draws into a single-chain Trace, e.g. to
// export them with WriteCSV.
func TraceFromSampleSet(ss *sampler.SampleSet) (*Trace, error) {
	if ss == nil {
		return nil, ErrNilSource
	}
	t := NewTrace()
	for k, name := range ss.Names() {
		draws, err := ss.Param(k)
		if err != nil {
			return nil, err
		}
		t.Add(name, 0, draws...)
	}
	return t, nil
}

// Summarize fetches the draws of param from src and describes them.
func Summarize(ctx context.Context, src Source, param string, widths ...float64) (summary.Summary, error) {
	if src == nil {
		return summary.Summary{}, ErrNilSource
	}
	draws, err := src.Draws(ctx, param)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("Summarize %q: %w", param, err)
	}
	s, err := summary.Describe(draws, widths...)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("Summarize %q: %w", param, err)
	}
	return s, nil
}
