package bitpack

import "fmt"

// codec bundles the specialized pack/unpack pair for one bit width.
type codec struct {
	pack   func(dst []byte, symbols []uint32)
	unpack func(symbols []uint32, packed []byte)
}

// codecs is the width-keyed dispatch registry. A width missing here is
// reported as ErrUnsupportedWidth instead of being silently skipped.
var codecs = map[int]codec{
	4:  {pack4, unpack4},
	6:  {pack6, unpack6},
	8:  {pack8, unpack8},
	12: {pack12, unpack12},
}

// Widths returns the supported symbol bit widths in ascending order.
func Widths() []int {
	return []int{4, 6, 8, 12}
}

// Supported reports whether bitCount is a supported symbol width.
func Supported(bitCount int) bool {
	_, ok := codecs[bitCount]
	return ok
}

// PackedLen returns the number of bytes needed to pack symbolCount
// symbols of bitCount bits each: ceil(symbolCount*bitCount/8).
func PackedLen(bitCount, symbolCount int) int {
	if bitCount <= 0 || symbolCount <= 0 {
		return 0
	}
	return (symbolCount*bitCount + 7) / 8
}

// Pack serializes symbols into dst using bitCount bits per symbol and
// returns the number of bytes written, PackedLen(bitCount, len(symbols)).
//
// Every symbol must fit in bitCount bits; excess high bits are masked
// off. Validation happens before any write: on error dst is untouched.
// Bytes of dst beyond the packed length are never modified.
func Pack(bitCount int, dst []byte, symbols []uint32) (int, error) {
	c, ok := codecs[bitCount]
	if !ok {
		return 0, fmt.Errorf("%w: %d (supported: 4, 6, 8, 12)", ErrUnsupportedWidth, bitCount)
	}
	if err := validatePacked(bitCount, len(symbols), len(dst)); err != nil {
		return 0, err
	}

	n := PackedLen(bitCount, len(symbols))
	c.pack(dst[:n], symbols)
	return n, nil
}

// Unpack is the inverse of Pack: it decodes exactly len(symbols)
// symbols of bitCount bits each from packed. Validation happens before
// any write: on error symbols is untouched.
func Unpack(bitCount int, symbols []uint32, packed []byte) error {
	c, ok := codecs[bitCount]
	if !ok {
		return fmt.Errorf("%w: %d (supported: 4, 6, 8, 12)", ErrUnsupportedWidth, bitCount)
	}
	if err := validatePacked(bitCount, len(symbols), len(packed)); err != nil {
		return err
	}

	c.unpack(symbols, packed)
	return nil
}
