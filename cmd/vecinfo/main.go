// Command vecinfo prints metric properties of vectors.
//
// Usage:
//
//	vecinfo [flags] [vector ...]
//
// A vector argument is a comma-separated list of numbers, optionally
// prefixed with a name: "a=1,2,3" or "1,2,3".
//
// Examples:
//
//	vecinfo 3,4 1,0
//	vecinfo -eps 1e-9 u=0.6,0.8 v=3,4
//	vecinfo -f vectors.yaml
//	vecinfo -features
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-vec/vector"
)

func main() {
	file := flag.String("f", "", "YAML file with named vectors")
	eps := flag.Float64("eps", vector.DefaultEpsilon, "tolerance for normalised and approx-equal checks")
	features := flag.Bool("features", false, "print the CPU features the block kernels detected")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecinfo [flags] [vector ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints magnitude, dot product, distance and angle for vectors.\n")
		fmt.Fprintf(os.Stderr, "A vector is written as name=x,y,z or x,y,z.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vecinfo 3,4 1,0\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -eps 1e-9 u=0.6,0.8 v=3,4\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -f vectors.yaml\n")
	}
	flag.Parse()

	if *features {
		printFeatures(os.Stdout)
		return
	}

	var named []namedVector
	if *file != "" {
		fromFile, err := loadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		named = append(named, fromFile...)
	}

	fromArgs, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	named = append(named, fromArgs...)

	if len(named) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts := []vector.Option{vector.WithEpsilon(*eps)}
	if err := printVectors(os.Stdout, named, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := printPairs(os.Stdout, named, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
