// Command bayesgrid runs grid-approximation models and summarizes posterior
// draws.
//
//	bayesgrid run examples/models/globe-tossing.yaml --plots out/
//	bayesgrid summarize trace.csv --param p --width 0.5 --width 0.89
//
// Defaults can be set with BAYESGRID_SEED, BAYESGRID_DRAWS,
// BAYESGRID_WORKERS, BAYESGRID_PLOT_DIR and BAYESGRID_WIDTHS.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/bayesgrid/internal/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bayesgrid: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}
