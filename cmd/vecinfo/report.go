package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-vec/vector"
)

func printFeatures(w io.Writer) {
	f := cpu.DetectFeatures()
	fmt.Fprintf(w, "Architecture: %s\n", f.Architecture)
	fmt.Fprintf(w, "SSE2:         %t\n", f.HasSSE2)
	fmt.Fprintf(w, "AVX2:         %t\n", f.HasAVX2)
	fmt.Fprintf(w, "Generic only: %t\n", f.ForceGeneric)
}

func printVectors(w io.Writer, named []namedVector, opts []vector.Option) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Vector\tLen\tMagnitude\tNormalised\tValues\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t---\t---------\t----------\t------\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, nv := range named {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%t\t%v\n",
			nv.name,
			nv.vec.Len(),
			vector.Magnitude(nv.vec),
			vector.IsNormalised(nv.vec, opts...),
			nv.vec,
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return tw.Flush()
}

// printPairs reports every pair of equal-length vectors. Pairs of different
// lengths are skipped.
func printPairs(w io.Writer, named []namedVector, opts []vector.Option) error {
	if len(named) < 2 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "\nPair\tDot\tDistance\tAngle [deg]\tApprox Equal\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t---\t--------\t-----------\t------------\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range named {
		for j := i + 1; j < len(named); j++ {
			a, b := named[i], named[j]
			if a.vec.Len() != b.vec.Len() {
				continue
			}

			dot, err := vector.Dot(a.vec, b.vec)
			if err != nil {
				return err
			}
			dist, err := vector.Distance(a.vec, b.vec)
			if err != nil {
				return err
			}

			angle := "n/a"
			rad, err := vector.Angle(a.vec, b.vec)
			switch {
			case err == nil:
				angle = fmt.Sprintf("%.4f", rad*180/math.Pi)
			case !errors.Is(err, vector.ErrZeroMagnitude):
				return err
			}

			if _, err := fmt.Fprintf(tw, "%s,%s\t%.6f\t%.6f\t%s\t%t\n",
				a.name, b.name, dot, dist, angle,
				vector.ApproxEqual(a.vec, b.vec, opts...),
			); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
	}
	return tw.Flush()
}
