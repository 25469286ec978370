package main

import (
	"io"
	"log"

	"github.com/katalvlaran/bayesgrid/internal/config"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree with defaults from cfg.
func newRootCmd(cfg config.Env) *cobra.Command {
	root := &cobra.Command{
		Use:           "bayesgrid",
		Short:         "Grid-approximation Bayesian inference",
		Long:          "bayesgrid computes posteriors on parameter grids, draws from them and summarizes draws from any sampler.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("quiet", false, "suppress progress logging")
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			log.SetOutput(io.Discard)
		}
	}
	root.AddCommand(newRunCmd(cfg), newSummarizeCmd(cfg))
	return root
}
