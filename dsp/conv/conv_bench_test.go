package conv

import (
	"math"
	"strconv"
	"testing"
)

func benchSignal(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * float64(i) / 128)
	}
	return out
}

func BenchmarkDirect(b *testing.B) {
	signal := benchSignal(4096)
	kernel := benchSignal(64)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = Direct(signal, kernel)
	}
}

func BenchmarkFFTConvolve(b *testing.B) {
	signal := benchSignal(4096)
	kernel := benchSignal(64)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = FFTConvolve(signal, kernel)
	}
}

func BenchmarkAutoCorrelate(b *testing.B) {
	for _, size := range []int{1024, 8192} {
		signal := benchSignal(size)

		b.Run(strconv.Itoa(size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = AutoCorrelate(signal)
			}
		})
	}
}
