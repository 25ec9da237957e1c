// Command boxsum prints fixed-radius box sums of 8-bit sample sequences.
//
// Usage:
//
//	boxsum [flags] sample ...
//
// Samples are decimal values in 0..255. Without samples and without -compare
// or -list, boxsum reads whitespace-separated samples from stdin.
//
// Examples:
//
//	boxsum -radius 1 1 2 3 4 5
//	boxsum -radius 2 -mean 10 20 30 40
//	boxsum -kernel generic -radius 3 7 7 7 7
//	boxsum -list
//	boxsum -compare -size 4096 -seed 7
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-boxsum/boxsum"
)

var errBadSample = errors.New("sample must be an integer in 0..255")

func main() {
	radius := flag.Uint("radius", 1, "window radius in samples (0..255)")
	kernel := flag.String("kernel", "", "kernel name (default: best for this CPU; see -list)")
	scalar := flag.Bool("scalar", false, "use the sliding-window scalar reference")
	mean := flag.Bool("mean", false, "also print the box-blur mean of each window")
	list := flag.Bool("list", false, "list registered kernels")
	compare := flag.Bool("compare", false, "compare every kernel against the scalar reference")
	size := flag.Int("size", 4096, "input length for -compare")
	seed := flag.Int64("seed", 1, "random seed for -compare")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: boxsum [flags] [sample ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the box sum of each position for the given samples.\n")
		fmt.Fprintf(os.Stderr, "Without samples, reads them from stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  boxsum -radius 1 1 2 3 4 5\n")
		fmt.Fprintf(os.Stderr, "  boxsum -list\n")
		fmt.Fprintf(os.Stderr, "  boxsum -compare -size 4096\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *compare {
		if *size < 0 {
			fmt.Fprintf(os.Stderr, "error: -size must be >= 0: %d\n", *size)
			os.Exit(1)
		}
		if !runCompare(os.Stdout, *size, *seed) {
			os.Exit(1)
		}
		return
	}

	if *radius > 255 {
		fmt.Fprintf(os.Stderr, "error: -radius must be in 0..255: %d\n", *radius)
		os.Exit(1)
	}

	var opts []boxsum.Option
	if *kernel != "" {
		opts = append(opts, boxsum.WithKernel(*kernel))
	}
	if *scalar {
		opts = append(opts, boxsum.WithScalarReference())
	}

	f, err := boxsum.NewFilter(uint8(*radius), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", filterErrorHint(err))
		os.Exit(1)
	}

	var samples []uint8
	if flag.NArg() > 0 {
		samples, err = parseSamples(flag.Args())
	} else {
		samples, err = readSamples(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSums(os.Stdout, f, samples, *mean)
}

func printList() {
	active := boxsum.ActiveKernel()
	for _, name := range boxsum.Kernels() {
		if name == active {
			fmt.Printf("%s (active)\n", name)
			continue
		}
		fmt.Println(name)
	}
}

// filterErrorHint points at -list only when the kernel name was not found.
func filterErrorHint(err error) string {
	if errors.Is(err, boxsum.ErrUnknownKernel) {
		return err.Error() + " (use -list to see available kernels)"
	}
	return err.Error()
}

func parseSamples(fields []string) ([]uint8, error) {
	samples := make([]uint8, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadSample, field)
		}
		samples = append(samples, uint8(v))
	}
	return samples, nil
}

func readSamples(r io.Reader) ([]uint8, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var fields []string
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}
	return parseSamples(fields)
}

func printSums(w io.Writer, f *boxsum.Filter, samples []uint8, withMean bool) {
	out := f.Process(samples, nil)

	var means []float64
	if withMean {
		means = f.Means(samples, nil)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "Pos\tInput\tSum\n"
	if withMean {
		header = "Pos\tInput\tSum\tMean\n"
	}
	if _, err := fmt.Fprint(tw, header); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for pos := range out {
		var err error
		if withMean {
			_, err = fmt.Fprintf(tw, "%d\t%d\t%d\t%.4f\n", pos, samples[pos], out[pos], means[pos])
		} else {
			_, err = fmt.Fprintf(tw, "%d\t%d\t%d\n", pos, samples[pos], out[pos])
		}
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
