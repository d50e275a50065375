package plot

import (
	"fmt"
	"strconv"
)

// ParsePoints converts raw CLI arguments into a flat coordinate list.
func ParsePoints(args []string) ([]float64, error) {
	vals := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", arg, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// Pair splits a flat alternating coordinate list into x and y sequences.
// An odd-length input drops its last value before pairing.
func Pair(vals []float64) (xs, ys []float64) {
	n := len(vals)
	if n%2 != 0 {
		n--
	}

	xs = make([]float64, 0, n/2)
	ys = make([]float64, 0, n/2)
	for i := 0; i < n; i += 2 {
		xs = append(xs, vals[i])
		ys = append(ys, vals[i+1])
	}
	return xs, ys
}
