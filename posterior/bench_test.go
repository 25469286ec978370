package posterior_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bayesgrid/density"
	"github.com/katalvlaran/bayesgrid/grid"
	"github.com/katalvlaran/bayesgrid/posterior"
)

// benchModel is a 200×200 normal model over 100 observations.
func benchModel(b *testing.B) (*grid.Grid, density.Func) {
	b.Helper()
	g, err := grid.New(
		grid.MustBuild("mu", 140, 170, 200),
		grid.MustBuild("sigma", 1, 15, 200),
	)
	if err != nil {
		b.Fatal(err)
	}
	ys := heights(100)
	logLik := func(v []float64) float64 {
		d, err := density.New(density.FamilyNormal, v[0], v[1])
		if err != nil {
			return math.Inf(-1)
		}
		return density.LogLikelihood(d, ys)
	}
	return g, logLik
}

// BenchmarkComputeLog_Sequential measures single-goroutine evaluation.
func BenchmarkComputeLog_Sequential(b *testing.B) {
	g, logLik := benchModel(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = posterior.ComputeLog(g, density.Constant(0), logLik)
	}
}

// BenchmarkComputeLog_Parallel measures chunked evaluation on 4 workers.
func BenchmarkComputeLog_Parallel(b *testing.B) {
	g, logLik := benchModel(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = posterior.ComputeLog(g, density.Constant(0), logLik, posterior.WithWorkers(4))
	}
}
