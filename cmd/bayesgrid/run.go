package main

import (
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/bayesgrid/bridge"
	"github.com/katalvlaran/bayesgrid/internal/config"
	"github.com/katalvlaran/bayesgrid/model"
	"github.com/katalvlaran/bayesgrid/report"
	"github.com/spf13/cobra"
)

type runOptions struct {
	draws     int
	seed      uint64
	workers   int
	widths    []float64
	plotDir   string
	drawsPath string
	json      bool
}

func newRunCmd(cfg config.Env) *cobra.Command {
	o := runOptions{
		draws:   cfg.Draws,
		seed:    cfg.Seed,
		workers: cfg.Workers,
		widths:  cfg.Widths,
		plotDir: cfg.PlotDir,
	}
	cmd := &cobra.Command{
		Use:   "run MODEL.yaml",
		Short: "Compute, sample and summarize the posterior of a model file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModel(cmd, args[0], o)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.draws, "draws", o.draws, "number of posterior draws (0 = model file setting)")
	f.Uint64Var(&o.seed, "seed", o.seed, "random seed (0 = model file setting)")
	f.IntVar(&o.workers, "workers", o.workers, "goroutines for grid evaluation and sampling")
	f.Float64SliceVar(&o.widths, "width", o.widths, "credible interval width, repeatable")
	f.StringVar(&o.plotDir, "plots", o.plotDir, "directory for PNG plots")
	f.StringVar(&o.drawsPath, "save-draws", "", "write the draws as a CSV trace to this file")
	f.BoolVar(&o.json, "json", false, "print the result as JSON")
	return cmd
}

func runModel(cmd *cobra.Command, path string, o runOptions) error {
	ctx := cmd.Context()

	log.Printf("loading %s", path)
	spec, err := model.Load(path)
	if err != nil {
		return err
	}
	m, err := spec.Compile()
	if err != nil {
		return err
	}
	log.Printf("model %s: %d grid cells", spec.Name, m.Grid.Size())

	res, err := model.Run(ctx, m, model.RunOptions{
		Draws:   o.draws,
		Seed:    o.seed,
		Workers: o.workers,
		Widths:  o.widths,
	})
	if err != nil {
		return err
	}
	log.Printf("run %s: %d draws, seed %d", res.ID, res.Draws, res.Seed)

	out := cmd.OutOrStdout()
	if o.json {
		err = report.WriteJSON(out, res)
	} else {
		err = report.WriteResult(out, res)
	}
	if err != nil {
		return err
	}

	if o.plotDir != "" {
		paths, err := report.PlotResult(o.plotDir, res)
		if err != nil {
			return err
		}
		for _, p := range paths {
			log.Printf("wrote %s", p)
		}
	}
	if o.drawsPath != "" {
		if err := saveDraws(o.drawsPath, res); err != nil {
			return err
		}
		log.Printf("wrote %s", o.drawsPath)
	}
	return nil
}

func saveDraws(path string, res *model.Result) error {
	tr, err := bridge.TraceFromSampleSet(res.Samples)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save draws: %w", err)
	}
	if err := bridge.WriteCSV(f, tr); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
