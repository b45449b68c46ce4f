package complexity

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// ErrInvalidBins reports a non-positive histogram bin count.
var ErrInvalidBins = errors.New("bin count must be positive")

// ShannonEntropy computes the Shannon entropy, in bits, of the value
// distribution over equal-width histogram bins. A constant signal has zero
// entropy; a signal spread evenly across all bins approaches log2(bins).
func ShannonEntropy(values []float64, bins int) (float64, error) {
	if bins < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBins, bins)
	}
	if len(values) == 0 {
		return 0, ErrEmptySequence
	}

	lo, err := stats.Min(values)
	if err != nil {
		return 0, err
	}
	hi, err := stats.Max(values)
	if err != nil {
		return 0, err
	}

	if hi == lo {
		return 0, nil
	}

	counts := make([]int, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		// The maximum lands in the last bin
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	entropy := 0.0
	total := float64(len(values))
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}

	return entropy, nil
}
