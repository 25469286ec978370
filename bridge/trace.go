package bridge

import (
	"context"
	"fmt"
	"sort"
)

// Trace holds draws per parameter and chain. The zero value is empty and
// ready to use. Not safe for concurrent writes.
type Trace struct {
	params []string
	chains map[string]map[int][]float64
}

// NewTrace returns an empty Trace.
func NewTrace() *Trace { return &Trace{} }

// Add appends draws of param to chain.
func (t *Trace) Add(param string, chain int, draws ...float64) {
	if t.chains == nil {
		t.chains = make(map[string]map[int][]float64)
	}
	byChain, ok := t.chains[param]
	if !ok {
		byChain = make(map[int][]float64)
		t.chains[param] = byChain
		t.params = append(t.params, param)
	}
	byChain[chain] = append(byChain[chain], draws...)
}

// Params returns the parameter names in first-seen order.
func (t *Trace) Params() []string {
	out := make([]string, len(t.params))
	copy(out, t.params)
	return out
}

// Chains returns the chain ids of param in ascending order.
func (t *Trace) Chains(param string) []int {
	byChain := t.chains[param]
	ids := make([]int, 0, len(byChain))
	for id := range byChain {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Chain returns a copy of the draws of param in one chain.
func (t *Trace) Chain(param string, chain int) ([]float64, error) {
	byChain, ok := t.chains[param]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, param)
	}
	draws, ok := byChain[chain]
	if !ok || len(draws) == 0 {
		return nil, fmt.Errorf("%w: %q chain %d", ErrNoDraws, param, chain)
	}
	out := make([]float64, len(draws))
	copy(out, draws)
	return out, nil
}

// Draws returns the draws of param with chains concatenated in ascending
// chain order. It implements Source.
func (t *Trace) Draws(ctx context.Context, param string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	byChain, ok := t.chains[param]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, param)
	}
	var out []float64
	for _, id := range t.Chains(param) {
		out = append(out, byChain[id]...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoDraws, param)
	}
	return out, nil
}
