// Command stmaninfo inspects the storage parameters of the compressed
// weight column format: packed row sizes per symbol width and the
// measured spectral response of the window functions used by the
// resampler.
//
// Usage:
//
//	stmaninfo [flags]
//
// Examples:
//
//	stmaninfo -symbols 128
//	stmaninfo -windows -size 1024
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-stman/bitpack"
	"github.com/cwbudde/algo-stman/window"
)

var windowRegistry = []struct {
	name string
	typ  window.Type
}{
	{"rectangular", window.TypeRectangular},
	{"hann", window.TypeHann},
	{"hamming", window.TypeHamming},
	{"blackman", window.TypeBlackman},
	{"blackman-harris-4t", window.TypeBlackmanHarris4Term},
	{"blackman-nuttall", window.TypeBlackmanNuttall},
	{"gaussian", window.TypeGaussian},
}

func main() {
	symbols := flag.Int("symbols", 128, "symbols per table cell for the packing table")
	windows := flag.Bool("windows", false, "print measured window responses instead of the packing table")
	size := flag.Int("size", 1024, "window length in samples for -windows")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stmaninfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints packed row sizes per symbol width, or window responses with -windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *windows {
		if err := printWindowTable(*size); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *symbols <= 0 {
		fmt.Fprintf(os.Stderr, "error: -symbols must be > 0\n")
		os.Exit(1)
	}
	printPackingTable(*symbols)
}

func printPackingTable(symbols int) {
	// One float32 scale word leads every row.
	const scaleBytes = 4

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Width [bits]\tLevels\tPacked [bytes]\tRow stride [bytes]\tRatio vs float32\n")
	fmt.Fprintf(tw, "------------\t------\t--------------\t------------------\t----------------\n")

	raw := 4 * symbols
	for _, bits := range bitpack.Widths() {
		packed := bitpack.PackedLen(bits, symbols)
		stride := scaleBytes + packed
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.3f\n",
			bits, 1<<bits, packed, stride, float64(stride)/float64(raw))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printWindowTable(size int) error {
	if size <= 0 {
		return fmt.Errorf("-size must be > 0")
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tENBW [bins]\tSidelobe [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-----------\t-------------\n")

	for _, e := range windowRegistry {
		coeffs := window.Generate(e.typ, size)

		enbw, sidelobe, err := measureResponse(coeffs)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}

		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.2f\n", e.name, size, enbw, sidelobe)
	}
	return tw.Flush()
}

// measureResponse computes the equivalent noise bandwidth from the
// coefficients directly and the highest sidelobe level from an
// oversampled FFT of the zero-padded window.
func measureResponse(coeffs []float64) (enbw, sidelobeDB float64, err error) {
	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	if sum == 0 {
		return 0, 0, fmt.Errorf("window has zero coherent gain")
	}
	enbw = float64(len(coeffs)) * sumSq / (sum * sum)

	fftSize := nextPowerOf2(len(coeffs) * 8)
	in := make([]complex128, fftSize)
	for i, c := range coeffs {
		in[i] = complex(c, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, 0, fmt.Errorf("fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, 0, fmt.Errorf("forward fft: %w", err)
	}

	power := make([]float64, fftSize/2+1)
	for k := range power {
		re, im := real(out[k]), imag(out[k])
		power[k] = re*re + im*im
	}

	dc := power[0]
	if dc == 0 {
		return 0, 0, fmt.Errorf("window has zero DC response")
	}

	// Skip the main lobe: walk to the first local minimum, then take the
	// highest peak beyond it.
	k := 1
	for k < len(power)-1 && power[k+1] < power[k] {
		k++
	}
	peak := 0.0
	for ; k < len(power); k++ {
		if power[k] > peak {
			peak = power[k]
		}
	}
	if peak == 0 {
		return enbw, math.Inf(-1), nil
	}
	return enbw, 10 * math.Log10(peak/dc), nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
