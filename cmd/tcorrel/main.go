// Command tcorrel estimates the correlation time of a sampled observable
// and the error of its mean, corrected for temporal correlation.
//
// Usage:
//
//	tcorrel [flags] [file]
//
// The input is two-column data (time, value), whitespace- or
// comma-separated, read from the given file or from stdin. Lines starting
// with '#' or '@' are skipped.
//
// Examples:
//
//	tcorrel energy.dat
//	tcorrel -nstep 10 energy.dat
//	tcorrel -smooth 5 -window hanning energy.dat
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-timeseries/dsp/smooth"
	"github.com/cwbudde/algo-timeseries/dsp/window"
	"github.com/cwbudde/algo-timeseries/stats/correl"
)

func main() {
	nstep := flag.Int("nstep", 100, "analyze every nstep-th datapoint")
	resolution := flag.Float64("smooth", 0, "pre-smooth the observable with the given time resolution (0 disables)")
	winName := flag.String("window", "flat", "smoothing window: flat, hanning, hamming, bartlett, blackman")
	diagnostics := flag.Bool("acf", false, "also print the truncated ACF used for the integration")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tcorrel [flags] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Estimates the ACF decay time of two-column (time, value) data\n")
		fmt.Fprintf(os.Stderr, "and the error of the mean corrected for correlation.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tcorrel energy.dat\n")
		fmt.Fprintf(os.Stderr, "  tcorrel -nstep 10 -smooth 5 -window hanning energy.dat\n")
	}
	flag.Parse()

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	x, y, err := readColumns(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *resolution > 0 {
		y, err = presmooth(x, y, *resolution, *winName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	opts := []correl.Option{
		correl.WithStride(*nstep),
		correl.WithWarningSink(func(w correl.Warning) {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}),
	}
	if *diagnostics {
		opts = append(opts, correl.WithDiagnostics())
	}

	result, err := correl.CorrelationTime(x, y, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printResult(result, *diagnostics)
}

// readColumns parses two-column numeric data, tolerating comma or
// whitespace separators and comment lines.
func readColumns(r io.Reader) (x, y []float64, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "@") {
			continue
		}

		line = strings.ReplaceAll(line, ",", " ")
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("line %d: need two columns, got %d", lineNo, len(fields))
		}

		xv, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %v", lineNo, err)
		}

		yv, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %v", lineNo, err)
		}

		x = append(x, xv)
		y = append(y, yv)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(x) == 0 {
		return nil, nil, fmt.Errorf("no data")
	}

	return x, y, nil
}

// presmooth filters y with a window sized to the requested time resolution.
func presmooth(x, y []float64, resolution float64, winName string) ([]float64, error) {
	typ, err := window.ParseType(winName)
	if err != nil {
		return nil, err
	}

	length, err := smooth.WindowLength(resolution, x)
	if err != nil {
		return nil, err
	}

	return smooth.Smooth(y, length, typ)
}

func printResult(result correl.Result, diagnostics bool) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "tc\t%.6g\n", result.TC)
	fmt.Fprintf(tw, "t0\t%.6g\n", result.T0)
	fmt.Fprintf(tw, "sigma\t%.6g\n", result.Sigma)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	if !diagnostics {
		return
	}

	fmt.Println("# t acf")
	for i := range result.Time {
		fmt.Printf("%g %g\n", result.Time[i], result.ACF[i])
	}
}
