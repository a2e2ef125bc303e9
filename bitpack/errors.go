package bitpack

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedWidth indicates a bit width outside {4, 6, 8, 12}.
	ErrUnsupportedWidth = errors.New("bitpack: unsupported symbol bit width")
	// ErrBufferTooSmall indicates a destination or source buffer shorter
	// than the operation requires.
	ErrBufferTooSmall = errors.New("bitpack: buffer too small")
)

func validatePacked(bitCount, symbolCount, packedLen int) error {
	need := PackedLen(bitCount, symbolCount)
	if packedLen < need {
		return fmt.Errorf("%w: need %d bytes for %d symbols of %d bits, have %d",
			ErrBufferTooSmall, need, symbolCount, bitCount, packedLen)
	}
	return nil
}
