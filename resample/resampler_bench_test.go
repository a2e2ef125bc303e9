package resample

import (
	"math/rand/v2"
	"strconv"
	"testing"
)

func BenchmarkTransform(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, outSize := range []int{8, 32, 128} {
		r, err := NewResampler(outSize)
		if err != nil {
			b.Fatal(err)
		}

		src := NewSpectrum(4 * outSize)
		for i := range src.Values {
			src.Values[i] = rng.Float64()
			src.Weights[i] = rng.Float64()
		}
		dst := NewSpectrum(outSize)

		b.Run("out"+strconv.Itoa(outSize), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := r.Transform(dst, src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
