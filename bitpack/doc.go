// Package bitpack packs arrays of small unsigned symbols into dense
// byte buffers using a fixed number of bits per symbol, and unpacks
// them again. The supported widths are 4, 6, 8 and 12 bits.
//
// Symbols are laid out little-bit-first and contiguously across byte
// boundaries, with padding only at the very end of the buffer when the
// total bit count is not a multiple of 8. The layout is a durable
// on-disk contract: buffers written by Pack must remain readable by
// Unpack across versions, byte for byte.
//
// All functions are pure transformations over caller-supplied buffers
// and are safe for concurrent use on disjoint buffers.
package bitpack
