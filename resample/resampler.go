package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stman/window"
)

var (
	// ErrInvalidSize indicates a non-positive output size.
	ErrInvalidSize = errors.New("resample: output size must be > 0")
	// ErrLengthMismatch indicates a spectrum whose value and weight
	// slices differ in length.
	ErrLengthMismatch = errors.New("resample: values and weights length mismatch")
)

// Spectrum holds paired value/weight samples indexed by frequency bin.
// Values and Weights always have equal length.
type Spectrum struct {
	Values  []float64
	Weights []float64
}

// NewSpectrum returns a zero-filled Spectrum with n bins.
func NewSpectrum(n int) *Spectrum {
	if n < 0 {
		n = 0
	}
	return &Spectrum{
		Values:  make([]float64, n),
		Weights: make([]float64, n),
	}
}

// Len returns the number of bins.
func (s *Spectrum) Len() int {
	return len(s.Values)
}

// resize sets both slices to length n, reusing capacity when possible,
// and zero-fills the values.
func (s *Spectrum) resize(n int) {
	if cap(s.Values) < n {
		s.Values = make([]float64, n)
	} else {
		s.Values = s.Values[:n]
		for i := range s.Values {
			s.Values[i] = 0
		}
	}
	if cap(s.Weights) < n {
		s.Weights = make([]float64, n)
	} else {
		s.Weights = s.Weights[:n]
	}
}

// Option configures a Resampler.
type Option func(*Resampler)

// WithWindow selects the window function applied across the doubled
// input span. The default is Blackman-Nuttall.
func WithWindow(t window.Type) Option {
	return func(r *Resampler) {
		r.windowType = t
	}
}

// Resampler converts symmetric weighted spectra to a fixed output size.
// It holds no mutable state; a single Resampler may be shared across
// goroutines as long as each call operates on disjoint spectra.
type Resampler struct {
	outSize    int
	windowType window.Type
}

// NewResampler returns a Resampler producing spectra of outSize bins.
func NewResampler(outSize int, opts ...Option) (*Resampler, error) {
	if outSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, outSize)
	}

	r := &Resampler{
		outSize:    outSize,
		windowType: window.TypeBlackmanNuttall,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// OutSize returns the fixed output spectrum length.
func (r *Resampler) OutSize() int {
	return r.outSize
}

// Transform resamples src into dst, resizing dst to OutSize bins.
//
// Only the first min(2*OutSize, src.Len()) input samples are visited;
// the remainder of the symmetric input is redundant. Samples with zero
// value or zero weight are skipped before the window function is
// evaluated, since they cannot contribute. Every dst weight entry is
// set to the total accumulated window-and-sample weight; if that total
// is zero the dst values and weights are all zero and no error is
// returned.
func (r *Resampler) Transform(dst, src *Spectrum) error {
	if len(src.Values) != len(src.Weights) {
		return fmt.Errorf("%w: %d values, %d weights",
			ErrLengthMismatch, len(src.Values), len(src.Weights))
	}

	dst.resize(r.outSize)

	n := len(src.Values)
	used := 2 * r.outSize
	if n < used {
		used = n
	}

	// The used half-spectrum occupies the trailing half of a window
	// spanning both symmetric sides.
	span := 2*n - 1

	totalWeight := 0.0
	for i := 0; i < used; i++ {
		value, weight := src.Values[i], src.Weights[i]
		if value == 0 || weight == 0 {
			continue
		}

		win := window.Evaluate(r.windowType, span, i+n)
		accumulateSample(dst.Values, i, value*weight*win)
		totalWeight += weight * win
	}

	if totalWeight == 0 {
		for j := range dst.Weights {
			dst.Weights[j] = 0
		}
		return nil
	}

	// Factor of two compensates for integrating only one half of the
	// symmetric input.
	vecmath.ScaleBlock(dst.Values, dst.Values, 2/totalWeight)

	for j := range dst.Weights {
		dst.Weights[j] = totalWeight
	}
	return nil
}

// accumulateSample adds f*cos(-2*pi*x*u/(2*len(dst))) into every output
// bin u for one input sample at position x. Only the first half of the
// frequency axis is produced, hence the 0.5 bin step.
func accumulateSample(dst []float64, x int, f float64) {
	phase := -2 * math.Pi * float64(x)
	step := 0.5 / float64(len(dst))

	u := 0.0
	for ui := range dst {
		dst[ui] += f * math.Cos(phase*u)
		u += step
	}
}
