package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/katalvlaran/bayesgrid/bridge"
	"github.com/katalvlaran/bayesgrid/internal/config"
	"github.com/katalvlaran/bayesgrid/report"
	"github.com/katalvlaran/bayesgrid/summary"
	"github.com/spf13/cobra"
)

type summarizeOptions struct {
	params  []string
	widths  []float64
	plotDir string
	json    bool
}

// paramSummary is one entry of the JSON output of summarize.
type paramSummary struct {
	Name    string          `json:"name"`
	Summary summary.Summary `json:"summary"`
}

func newSummarizeCmd(cfg config.Env) *cobra.Command {
	o := summarizeOptions{widths: cfg.Widths, plotDir: cfg.PlotDir}
	cmd := &cobra.Command{
		Use:   "summarize DRAWS.csv",
		Short: "Summarize draws from an external sampler (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return summarizeTrace(cmd, args[0], o)
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&o.params, "param", nil, "parameter to summarize, repeatable (default: all)")
	f.Float64SliceVar(&o.widths, "width", o.widths, "credible interval width, repeatable")
	f.StringVar(&o.plotDir, "plots", o.plotDir, "directory for PNG histograms")
	f.BoolVar(&o.json, "json", false, "print summaries as JSON")
	return cmd
}

func summarizeTrace(cmd *cobra.Command, path string, o summarizeOptions) error {
	ctx := cmd.Context()

	tr, err := readTrace(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	params := o.params
	if len(params) == 0 {
		params = tr.Params()
	}
	log.Printf("summarizing %d parameter(s) from %s", len(params), path)

	out := make([]paramSummary, 0, len(params))
	for _, p := range params {
		s, err := bridge.Summarize(ctx, tr, p, o.widths...)
		if err != nil {
			return err
		}
		out = append(out, paramSummary{Name: p, Summary: s})

		if o.plotDir != "" {
			if err := plotDraws(ctx, tr, p, s, o.plotDir); err != nil {
				return err
			}
		}
	}

	w := cmd.OutOrStdout()
	if o.json {
		return report.WriteJSON(w, out)
	}
	for i, ps := range out {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := report.WriteSummary(w, ps.Name, ps.Summary); err != nil {
			return err
		}
	}
	return nil
}

func readTrace(stdin io.Reader, path string) (*bridge.Trace, error) {
	if path == "-" {
		return bridge.ReadCSV(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tr, err := bridge.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tr, nil
}

func plotDraws(ctx context.Context, tr *bridge.Trace, param string, s summary.Summary, dir string) error {
	draws, err := tr.Draws(ctx, param)
	if err != nil {
		return err
	}
	p, err := report.SampleHistogram(param, draws, 40, s.Intervals...)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, param+"_draws.png")
	if err := report.Save(p, path); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}
