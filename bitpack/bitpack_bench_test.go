package bitpack

import (
	"math/rand/v2"
	"strconv"
	"testing"
)

func BenchmarkPack(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	const n = 4096

	for _, bits := range Widths() {
		symbols := randSymbols(rng, n, bits)
		dst := make([]byte, PackedLen(bits, n))

		b.Run("width"+strconv.Itoa(bits), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Pack(bits, dst, symbols); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkUnpack(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	const n = 4096

	for _, bits := range Widths() {
		symbols := randSymbols(rng, n, bits)
		packed := make([]byte, PackedLen(bits, n))
		if _, err := Pack(bits, packed, symbols); err != nil {
			b.Fatal(err)
		}
		out := make([]uint32, n)

		b.Run("width"+strconv.Itoa(bits), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := Unpack(bits, out, packed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
