package sampler_test

import (
	"fmt"

	"github.com/katalvlaran/bayesgrid/density"
	"github.com/katalvlaran/bayesgrid/grid"
	"github.com/katalvlaran/bayesgrid/posterior"
	"github.com/katalvlaran/bayesgrid/sampler"
	"gonum.org/v1/gonum/stat"
)

// ExampleFromPosterior draws 10,000 samples from the globe-tossing posterior
// and simulates the number of water observations in 9 new tosses.
func ExampleFromPosterior() {
	g, _ := grid.New(grid.MustBuild("p", 0, 1, 1000))
	lik := func(v []float64) float64 { return density.Binomial(6, 9, v[0]) }
	m, err := posterior.Compute(g, density.Constant(1), lik)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ss, err := sampler.FromPosterior(m, 10_000, sampler.NewSource(100))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := ss.ParamByName("p")
	mean := stat.Mean(p, nil)

	sim, _ := sampler.BinomialSimulator(9)
	w, _ := sampler.Predict(p, sampler.NewSource(101), sim)

	fmt.Println("draws:", ss.Len())
	fmt.Println("mean near 0.64:", mean > 0.62 && mean < 0.66)
	fmt.Println("predictions:", len(w))
	// Output:
	// draws: 10000
	// mean near 0.64: true
	// predictions: 10000
}
