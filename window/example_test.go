package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-stman/window"
)

func ExampleGenerate() {
	w := window.Generate(window.TypeHann, 4)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleEvaluate() {
	// Coefficient at the centre of a 9-sample Blackman-Nuttall window.
	fmt.Printf("%.4f\n", window.Evaluate(window.TypeBlackmanNuttall, 9, 4))
	// Output:
	// 1.0000
}

func ExampleInfo() {
	m := window.Info(window.TypeBlackmanNuttall)
	fmt.Printf("%s %.1f dB\n", m.Name, m.HighestSidelobe)
	// Output:
	// Blackman-Nuttall -98.1 dB
}
