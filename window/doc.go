// Package window provides symmetric window functions for spectral
// leakage control: whole-window generation for analysis use and
// single-coefficient point evaluation for transforms that window
// irregular sample sets one sample at a time. Most types are
// cosine-sum windows; the Gaussian window is parametric, shaped by
// WithAlpha.
package window
