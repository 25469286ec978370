package summary_test

import (
	"testing"

	"github.com/katalvlaran/bayesgrid/summary"
)

// BenchmarkHDI measures sort plus window scan over 10,000 draws.
func BenchmarkHDI(b *testing.B) {
	x := normalDraws(10_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = summary.HDI(x, 0.89)
	}
}

// BenchmarkMode_KDE measures the density-estimate fallback on distinct draws.
func BenchmarkMode_KDE(b *testing.B) {
	x := normalDraws(2_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = summary.Mode(x)
	}
}
