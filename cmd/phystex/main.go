// Package main provides the Phystex CLI.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/phystex/phystex/texture"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Phystex %s\n", version)
			return
		case "info":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: phystex info <file>")
				os.Exit(1)
			}
			if err := info(os.Args[2]); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Phystex - Physical Texture Data for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version        Show version")
	fmt.Println("  info <file>    Describe a texture CSV file")
}

// info reads a texture CSV file and prints its dimensions and sample
// statistics, both raw and normalized.
func info(path string) error {
	t, err := texture.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %dx%d, %d samples\n", path, t.Width(), t.Height(), t.NumElements())
	if t.NumElements() == 0 {
		return nil
	}

	data := t.Data()
	minVal, maxVal := data[0], data[0]
	var sum float64
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
		sum += float64(v)
	}
	mean := sum / float64(len(data))

	fmt.Printf("  min:  %10d  (%.6f)\n", minVal, float64(minVal)/math.MaxUint32)
	fmt.Printf("  max:  %10d  (%.6f)\n", maxVal, float64(maxVal)/math.MaxUint32)
	fmt.Printf("  mean: %12.1f  (%.6f)\n", mean, mean/math.MaxUint32)
	return nil
}
