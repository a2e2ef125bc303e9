package weightcol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-stman/bitpack"
	"github.com/cwbudde/algo-stman/weightenc"
)

// scaleBytes is the size of the leading per-row scale word.
const scaleBytes = 4

var (
	// ErrMissingConfig indicates Prepare was called before both the
	// symbol width and the cell shape were set.
	ErrMissingConfig = errors.New("weightcol: bits per symbol and shape must be set before Prepare")
	// ErrNotPrepared indicates row access before a successful Prepare.
	ErrNotPrepared = errors.New("weightcol: column not prepared")
	// ErrShapeMismatch indicates a value slice that does not match the
	// configured cell shape.
	ErrShapeMismatch = errors.New("weightcol: value count does not match cell shape")
	// ErrInvalidShape indicates a shape with non-positive dimensions.
	ErrInvalidShape = errors.New("weightcol: shape dimensions must be > 0")
)

// RowStore is the external table storage a Column reads and writes
// fixed-size per-row byte buffers through. Implementations must treat
// buf as valid only for the duration of the call.
type RowStore interface {
	ReadRow(row uint64, buf []byte) error
	WriteRow(row uint64, buf []byte) error
}

// rowScratch holds the per-call pack and symbol buffers so concurrent
// row accesses do not share mutable state.
type rowScratch struct {
	packed  []byte
	symbols []uint32
}

// Column encodes and decodes weight rows against a RowStore.
//
// Configure with SetBitsPerSymbol and SetShape, call Prepare once, then
// use PutRow/GetRow. After Prepare a Column is safe for concurrent use
// on distinct rows.
type Column struct {
	store RowStore
	bits  int
	shape []int

	// derived by Prepare
	prepared       bool
	enc            *weightenc.Encoder
	symbolsPerCell int
	stride         int

	scratch *sync.Pool
}

// NewColumn returns an unprepared Column backed by store.
func NewColumn(store RowStore) *Column {
	return &Column{store: store}
}

// SetBitsPerSymbol sets the packed symbol width. Must be called before
// Prepare; the width is validated there.
func (c *Column) SetBitsPerSymbol(bits int) {
	c.bits = bits
	c.prepared = false
}

// SetShape sets the per-cell array shape. The number of symbols per row
// is the product of the dimensions. Must be called before Prepare.
func (c *Column) SetShape(dims ...int) {
	c.shape = append([]int(nil), dims...)
	c.prepared = false
}

// Shape returns a copy of the configured cell shape.
func (c *Column) Shape() []int {
	return append([]int(nil), c.shape...)
}

// Prepare derives the encoder, symbol count and row stride from the
// configured width and shape. It must be called before any row access
// and again after reconfiguration.
func (c *Column) Prepare() error {
	if c.bits == 0 || len(c.shape) == 0 {
		return ErrMissingConfig
	}
	if !bitpack.Supported(c.bits) {
		return fmt.Errorf("weightcol: %w: %d", bitpack.ErrUnsupportedWidth, c.bits)
	}

	symbols := 1
	for _, d := range c.shape {
		if d <= 0 {
			return fmt.Errorf("%w: %v", ErrInvalidShape, c.shape)
		}
		symbols *= d
	}

	enc, err := weightenc.NewEncoder(c.bits)
	if err != nil {
		return fmt.Errorf("weightcol: %w", err)
	}

	c.enc = enc
	c.symbolsPerCell = symbols
	c.stride = scaleBytes + bitpack.PackedLen(c.bits, symbols)
	c.scratch = &sync.Pool{
		New: func() any {
			return &rowScratch{
				packed:  make([]byte, c.stride),
				symbols: make([]uint32, c.symbolsPerCell),
			}
		},
	}
	c.prepared = true
	return nil
}

// SymbolsPerCell returns the number of symbols stored per row, or 0
// before Prepare.
func (c *Column) SymbolsPerCell() int {
	if !c.prepared {
		return 0
	}
	return c.symbolsPerCell
}

// Stride returns the fixed per-row buffer size in bytes, or 0 before
// Prepare.
func (c *Column) Stride() int {
	if !c.prepared {
		return 0
	}
	return c.stride
}

// PutRow quantizes, packs and stores one row of weights. values must
// have exactly SymbolsPerCell elements.
func (c *Column) PutRow(row uint64, values []float64) error {
	if !c.prepared {
		return ErrNotPrepared
	}
	if len(values) != c.symbolsPerCell {
		return fmt.Errorf("%w: %d values, cell holds %d", ErrShapeMismatch, len(values), c.symbolsPerCell)
	}

	s := c.scratch.Get().(*rowScratch)
	defer c.scratch.Put(s)

	scale, err := c.enc.Encode(s.symbols, values)
	if err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(s.packed[:scaleBytes], math.Float32bits(float32(scale)))
	if _, err := bitpack.Pack(c.bits, s.packed[scaleBytes:], s.symbols); err != nil {
		return err
	}

	return c.store.WriteRow(row, s.packed)
}

// GetRow loads, unpacks and dequantizes one row of weights into values,
// which must have exactly SymbolsPerCell elements.
func (c *Column) GetRow(row uint64, values []float64) error {
	if !c.prepared {
		return ErrNotPrepared
	}
	if len(values) != c.symbolsPerCell {
		return fmt.Errorf("%w: %d values, cell holds %d", ErrShapeMismatch, len(values), c.symbolsPerCell)
	}

	s := c.scratch.Get().(*rowScratch)
	defer c.scratch.Put(s)

	if err := c.store.ReadRow(row, s.packed); err != nil {
		return err
	}

	scale := float64(math.Float32frombits(binary.LittleEndian.Uint32(s.packed[:scaleBytes])))
	if err := bitpack.Unpack(c.bits, s.symbols, s.packed[scaleBytes:]); err != nil {
		return err
	}

	return c.enc.Decode(values, scale, s.symbols)
}
