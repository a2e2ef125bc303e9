// Package weightenc converts between non-negative floating-point
// weight sequences and bounded integer symbol sequences plus a scale
// factor, using linear quantization against the per-block maximum.
//
// The symbol range is fixed by the configured bits per symbol, so
// encoded blocks feed directly into the bitpack byte layouts.
package weightenc
