// Package weightcol implements a compressed per-row column codec for
// non-negative weight arrays stored in an external table. Each row is
// serialized as a 4-byte little-endian IEEE-754 scale word followed by
// fixed-width bit-packed symbols, so the row stride is constant once
// the symbol width and cell shape are configured.
//
// A Column must be configured with SetBitsPerSymbol and SetShape and
// then prepared with Prepare before any row access; the row buffer
// layout is a durable on-disk contract shared with previously written
// tables.
package weightcol
