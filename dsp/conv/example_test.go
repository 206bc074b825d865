package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-timeseries/dsp/conv"
)

func ExampleDirect() {
	// Simple moving average filter
	signal := []float64{1, 2, 3, 4, 5, 4, 3, 2, 1}
	kernel := []float64{0.25, 0.5, 0.25}

	result, _ := conv.Direct(signal, kernel)

	fmt.Printf("Input length: %d\n", len(signal))
	fmt.Printf("Output length: %d\n", len(result))
	fmt.Printf("First few values: %.2f, %.2f, %.2f\n", result[0], result[1], result[2])

	// Output:
	// Input length: 9
	// Output length: 11
	// First few values: 0.25, 1.00, 2.00
}

func ExampleConvolveMode() {
	a := []float64{1, 2, 3, 4}
	b := []float64{1, 1, 1}

	full, _ := conv.ConvolveMode(a, b, conv.ModeFull)
	same, _ := conv.ConvolveMode(a, b, conv.ModeSame)
	valid, _ := conv.ConvolveMode(a, b, conv.ModeValid)

	fmt.Println("full: ", full)
	fmt.Println("same: ", same)
	fmt.Println("valid:", valid)

	// Output:
	// full:  [1 3 6 9 7 4]
	// same:  [3 6 9 7]
	// valid: [6 9]
}

func ExampleAutoCorrelate() {
	a := []float64{1, 2, 3}

	result, _ := conv.AutoCorrelate(a)

	// Symmetric about zero lag at index len(a)-1.
	fmt.Println(result)

	// Output:
	// [3 8 14 8 3]
}
