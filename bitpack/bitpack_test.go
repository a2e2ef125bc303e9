package bitpack

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"testing"
)

func randSymbols(rng *rand.Rand, n, bits int) []uint32 {
	s := make([]uint32, n)
	for i := range s {
		s[i] = rng.Uint32N(1 << bits)
	}
	return s
}

func requireRoundTrip(t *testing.T, bits int, symbols []uint32) {
	t.Helper()

	packed := make([]byte, PackedLen(bits, len(symbols)))
	written, err := Pack(bits, packed, symbols)
	if err != nil {
		t.Fatalf("Pack(%d, %d symbols): %v", bits, len(symbols), err)
	}
	if written != len(packed) {
		t.Fatalf("Pack wrote %d bytes, want %d", written, len(packed))
	}

	got := make([]uint32, len(symbols))
	if err := Unpack(bits, got, packed); err != nil {
		t.Fatalf("Unpack(%d, %d symbols): %v", bits, len(symbols), err)
	}

	for i := range symbols {
		if got[i] != symbols[i] {
			t.Fatalf("bits=%d n=%d: symbol %d round-tripped to %d, want %d",
				bits, len(symbols), i, got[i], symbols[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 13))
	counts := []int{0, 1, 2, 3, 4, 5, 7, 8, 16}

	for _, bits := range Widths() {
		for _, n := range counts {
			requireRoundTrip(t, bits, randSymbols(rng, n, bits))
		}
	}
}

func TestRoundTripExtremes(t *testing.T) {
	for _, bits := range Widths() {
		maxSym := uint32(1<<bits - 1)
		for n := 1; n <= 13; n++ {
			all := make([]uint32, n)
			for i := range all {
				all[i] = maxSym
			}
			requireRoundTrip(t, bits, all)
			requireRoundTrip(t, bits, make([]uint32, n))
		}
	}
}

func TestPackedLen(t *testing.T) {
	cases := []struct {
		bits, n, want int
	}{
		{4, 0, 0}, {4, 1, 1}, {4, 2, 1}, {4, 3, 2}, {4, 5, 3},
		{6, 1, 1}, {6, 2, 2}, {6, 3, 3}, {6, 4, 3}, {6, 5, 4}, {6, 7, 6}, {6, 8, 6},
		{8, 1, 1}, {8, 16, 16},
		{12, 1, 2}, {12, 2, 3}, {12, 3, 5}, {12, 5, 8},
	}
	for _, c := range cases {
		if got := PackedLen(c.bits, c.n); got != c.want {
			t.Fatalf("PackedLen(%d, %d) = %d, want %d", c.bits, c.n, got, c.want)
		}
	}
}

func TestGoldenVectors(t *testing.T) {
	cases := []struct {
		name    string
		bits    int
		symbols []uint32
		want    []byte
	}{
		// Five nibbles: byte0 = 1|2<<4, byte1 = 3|0<<4, byte2 = 15 low nibble.
		{"width4/tail", 4, []uint32{1, 2, 3, 0, 15}, []byte{0x21, 0x03, 0x0F}},
		{"width4/pair", 4, []uint32{0x0F, 0x0A}, []byte{0xAF}},
		{"width6/group", 6, []uint32{63, 1, 2, 3}, []byte{0x7F, 0x20, 0x0C}},
		{"width6/tail1", 6, []uint32{0x2A}, []byte{0x2A}},
		{"width6/tail2", 6, []uint32{63, 63}, []byte{0xFF, 0x0F}},
		{"width6/tail3", 6, []uint32{0, 0, 63}, []byte{0x00, 0xF0, 0x03}},
		{"width8/identity", 8, []uint32{0x00, 0x7F, 0xFF}, []byte{0x00, 0x7F, 0xFF}},
		{"width12/pair", 12, []uint32{0xABC, 0x123}, []byte{0xBC, 0x3A, 0x12}},
		{"width12/tail", 12, []uint32{0xABC}, []byte{0xBC, 0x0A}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			packed := make([]byte, PackedLen(c.bits, len(c.symbols)))
			if _, err := Pack(c.bits, packed, c.symbols); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(packed, c.want) {
				t.Fatalf("packed = % 02X, want % 02X", packed, c.want)
			}

			got := make([]uint32, len(c.symbols))
			if err := Unpack(c.bits, got, packed); err != nil {
				t.Fatal(err)
			}
			for i := range got {
				if got[i] != c.symbols[i] {
					t.Fatalf("symbol %d = %d, want %d", i, got[i], c.symbols[i])
				}
			}
		})
	}
}

func TestTailTouchesOnlyPackedBytes(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for _, bits := range Widths() {
		group := map[int]int{4: 2, 6: 4, 8: 1, 12: 2}[bits]
		for n := 1; n <= 2*group+1; n++ {
			symbols := randSymbols(rng, n, bits)
			need := PackedLen(bits, n)

			// Stale destination contents must not leak into the packed
			// region and bytes past the packed length must survive.
			dst := make([]byte, need+4)
			for i := range dst {
				dst[i] = 0xAA
			}

			if _, err := Pack(bits, dst, symbols); err != nil {
				t.Fatal(err)
			}

			for i := need; i < len(dst); i++ {
				if dst[i] != 0xAA {
					t.Fatalf("bits=%d n=%d: byte %d beyond packed length modified: %#02x",
						bits, n, i, dst[i])
				}
			}

			got := make([]uint32, n)
			if err := Unpack(bits, got, dst[:need]); err != nil {
				t.Fatal(err)
			}
			for i := range got {
				if got[i] != symbols[i] {
					t.Fatalf("bits=%d n=%d: dirty-buffer round trip symbol %d = %d, want %d",
						bits, n, i, got[i], symbols[i])
				}
			}
		}
	}
}

func TestMatchesCursorReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 17))

	for _, bits := range Widths() {
		for n := 0; n <= 33; n++ {
			symbols := randSymbols(rng, n, bits)
			need := PackedLen(bits, n)

			specialized := make([]byte, need)
			if _, err := Pack(bits, specialized, symbols); err != nil {
				t.Fatal(err)
			}

			reference := make([]byte, need)
			packCursor(uint(bits), reference, symbols)

			if !bytes.Equal(specialized, reference) {
				t.Fatalf("bits=%d n=%d: specialized=% 02X cursor=% 02X",
					bits, n, specialized, reference)
			}

			got := make([]uint32, n)
			unpackCursor(uint(bits), got, specialized)
			for i := range got {
				if got[i] != symbols[i] {
					t.Fatalf("bits=%d n=%d: cursor unpack symbol %d = %d, want %d",
						bits, n, i, got[i], symbols[i])
				}
			}
		}
	}
}

func TestUnsupportedWidth(t *testing.T) {
	for _, bits := range []int{0, 1, 2, 3, 5, 7, 9, 10, 11, 13, 16, 32, -4} {
		dst := []byte{0xEE, 0xEE}
		if _, err := Pack(bits, dst, []uint32{1}); !errors.Is(err, ErrUnsupportedWidth) {
			t.Fatalf("Pack(%d) error = %v, want ErrUnsupportedWidth", bits, err)
		}
		if dst[0] != 0xEE || dst[1] != 0xEE {
			t.Fatalf("Pack(%d) modified dst on error", bits)
		}

		symbols := []uint32{7}
		if err := Unpack(bits, symbols, []byte{0xFF, 0xFF}); !errors.Is(err, ErrUnsupportedWidth) {
			t.Fatalf("Unpack(%d) error = %v, want ErrUnsupportedWidth", bits, err)
		}
		if symbols[0] != 7 {
			t.Fatalf("Unpack(%d) modified symbols on error", bits)
		}
	}
}

func TestBufferTooSmall(t *testing.T) {
	symbols := []uint32{1, 2, 3, 4, 5}

	short := make([]byte, PackedLen(4, len(symbols))-1)
	if _, err := Pack(4, short, symbols); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("Pack error = %v, want ErrBufferTooSmall", err)
	}
	for i, b := range short {
		if b != 0 {
			t.Fatalf("Pack wrote byte %d on error", i)
		}
	}

	out := make([]uint32, len(symbols))
	out[0] = 99
	if err := Unpack(4, out, short); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("Unpack error = %v, want ErrBufferTooSmall", err)
	}
	if out[0] != 99 {
		t.Fatal("Unpack wrote symbols on error")
	}
}

func TestSupported(t *testing.T) {
	for _, bits := range Widths() {
		if !Supported(bits) {
			t.Fatalf("Supported(%d) = false", bits)
		}
	}
	if Supported(5) || Supported(0) {
		t.Fatal("Supported accepted an unsupported width")
	}
}
