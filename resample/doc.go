// Package resample converts an irregular, symmetric, weighted
// frequency-domain sample set into a fixed-size, weight-normalized
// spectrum of lower or higher resolution using a windowed partial
// cosine transform.
//
// Only one half of the symmetric input is integrated; a compensating
// factor of two is applied during the final normalization. The
// aggregate window-and-sample weight accumulated during a transform is
// written uniformly into every output weight entry, encoding a single
// confidence figure for the resampled block. A transform whose inputs
// carry no usable weight produces all-zero values and all-zero weights
// instead of propagating a division by zero.
package resample
