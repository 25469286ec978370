package bridge

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadCSV parses a trace: a header row of parameter names followed by one
// row per draw. A column named "chain" (any case) assigns rows to chains;
// without it every row belongs to chain 0. Lines starting with '#' are
// skipped. Unparsable or non-finite cells fail with ErrMalformedTrace and
// the offending line number.
func ReadCSV(r io.Reader) (*Trace, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedTrace)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTrace, err)
	}

	chainCol := -1
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		header[i] = name
		if strings.EqualFold(name, ChainColumn) {
			chainCol = i
			continue
		}
		if name == "" || seen[name] {
			return nil, fmt.Errorf("%w: line 1: empty or duplicate column %q", ErrMalformedTrace, name)
		}
		seen[name] = true
	}

	t := NewTrace()
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedTrace, err)
		}
		line, _ := cr.FieldPos(0)

		chain := 0
		if chainCol >= 0 {
			chain, err = strconv.Atoi(strings.TrimSpace(rec[chainCol]))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: chain %q is not an integer", ErrMalformedTrace, line, rec[chainCol])
			}
		}
		for i, cell := range rec {
			if i == chainCol {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: line %d: column %q: bad value %q", ErrMalformedTrace, line, header[i], cell)
			}
			t.Add(header[i], chain, v)
		}
	}
	return t, nil
}

// WriteCSV writes the parameters of t as a trace with a chain column, one
// row per draw index. Every parameter must have the same chain ids and the
// same number of draws per chain, otherwise ErrMalformedTrace is returned
// and nothing is written.
func WriteCSV(w io.Writer, t *Trace) error {
	params := t.Params()
	if len(params) == 0 {
		return fmt.Errorf("WriteCSV: %w", ErrNoDraws)
	}
	chains := t.Chains(params[0])
	if err := checkRectangular(t, params, chains); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{ChainColumn}, params...)); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	row := make([]string, len(params)+1)
	for _, chain := range chains {
		row[0] = strconv.Itoa(chain)
		n := len(t.chains[params[0]][chain])
		for i := 0; i < n; i++ {
			for k, p := range params {
				row[k+1] = strconv.FormatFloat(t.chains[p][chain][i], 'g', -1, 64)
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("WriteCSV: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	return nil
}

// checkRectangular verifies every parameter has exactly the chain ids in
// chains, each with as many draws as the first parameter.
func checkRectangular(t *Trace, params []string, chains []int) error {
	first := t.chains[params[0]]
	for _, p := range params[1:] {
		byChain := t.chains[p]
		if len(byChain) != len(first) {
			return fmt.Errorf("%w: %q has chains %v, %q has %v",
				ErrMalformedTrace, params[0], chains, p, t.Chains(p))
		}
		for _, chain := range chains {
			draws, ok := byChain[chain]
			if !ok {
				return fmt.Errorf("%w: %q has no chain %d", ErrMalformedTrace, p, chain)
			}
			if len(draws) != len(first[chain]) {
				return fmt.Errorf("%w: %q chain %d has %d draws, want %d",
					ErrMalformedTrace, p, chain, len(draws), len(first[chain]))
			}
		}
	}
	return nil
}
