package weightenc

import (
	"errors"
	"fmt"
	"math"
)

const (
	minBits = 1
	maxBits = 16
)

var (
	// ErrInvalidBits indicates a bits-per-symbol value outside [1, 16].
	ErrInvalidBits = errors.New("weightenc: bits per symbol out of range")
	// ErrLengthMismatch indicates symbol and value slices of unequal length.
	ErrLengthMismatch = errors.New("weightenc: symbol and value length mismatch")
	// ErrInvalidValue indicates a negative or non-finite input value.
	ErrInvalidValue = errors.New("weightenc: values must be finite and non-negative")
)

// Encoder linearly quantizes non-negative weights into fixed-range
// integer symbols. It holds only immutable configuration and is safe
// for concurrent use.
type Encoder struct {
	bits   int
	levels uint32
}

// NewEncoder returns an Encoder with 1<<bitsPerSymbol quantization
// levels. bitsPerSymbol must lie in [1, 16].
func NewEncoder(bitsPerSymbol int) (*Encoder, error) {
	if bitsPerSymbol < minBits || bitsPerSymbol > maxBits {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidBits, bitsPerSymbol, minBits, maxBits)
	}
	return &Encoder{
		bits:   bitsPerSymbol,
		levels: 1 << bitsPerSymbol,
	}, nil
}

// BitsPerSymbol returns the configured symbol width in bits.
func (e *Encoder) BitsPerSymbol() int { return e.bits }

// Levels returns the number of quantization levels, 1<<BitsPerSymbol.
func (e *Encoder) Levels() int { return int(e.levels) }

// Encode quantizes values into symbols and returns the scale factor,
// the maximum input value. Each symbol is round(value/scale*(levels-1)),
// clamped to the symbol range. An all-zero input encodes to scale 0 and
// all-zero symbols.
//
// symbols and values must have equal length. Validation happens before
// any symbol is written.
func (e *Encoder) Encode(symbols []uint32, values []float64) (float64, error) {
	if len(symbols) != len(values) {
		return 0, fmt.Errorf("%w: %d symbols, %d values", ErrLengthMismatch, len(symbols), len(values))
	}

	scale := 0.0
	for i, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: value %v at index %d", ErrInvalidValue, v, i)
		}
		if v > scale {
			scale = v
		}
	}

	if scale == 0 {
		for i := range symbols {
			symbols[i] = 0
		}
		return 0, nil
	}

	top := e.levels - 1
	factor := float64(top) / scale
	for i, v := range values {
		s := uint32(math.Round(v * factor))
		if s > top {
			s = top
		}
		symbols[i] = s
	}
	return scale, nil
}

// Decode reconstructs values from symbols and the scale factor returned
// by Encode: value = symbol*scale/(levels-1). Symbols above the top
// level are an input error at pack time, not here, and decode to values
// above scale.
func (e *Encoder) Decode(values []float64, scale float64, symbols []uint32) error {
	if len(values) != len(symbols) {
		return fmt.Errorf("%w: %d symbols, %d values", ErrLengthMismatch, len(symbols), len(values))
	}

	factor := scale / float64(e.levels-1)
	for i, s := range symbols {
		values[i] = float64(s) * factor
	}
	return nil
}
