package complexity

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
)

// ThresholdMode selects how the binarization threshold is derived from the
// sequence itself.
type ThresholdMode string

const (
	// ThresholdMedian splits the sequence at its median.
	ThresholdMedian ThresholdMode = "median"
	// ThresholdMean splits the sequence at its arithmetic mean.
	ThresholdMean ThresholdMode = "mean"
)

var (
	// ErrUnknownThreshold reports a threshold mode outside the supported set.
	ErrUnknownThreshold = errors.New("unknown threshold mode")
	// ErrEmptySequence reports an input with no samples.
	ErrEmptySequence = errors.New("empty sequence")
)

// Valid reports whether the mode is a member of the supported set.
func (m ThresholdMode) Valid() bool {
	switch m {
	case ThresholdMedian, ThresholdMean:
		return true
	}
	return false
}

// Binarize converts a real-valued sequence into a 0/1 sequence, splitting at
// the median or mean of the sequence. Values below the threshold map to 0,
// values at or above it map to 1. Returns the binary sequence and the
// resolved threshold value. The input is never mutated.
func Binarize(values []float64, mode ThresholdMode) ([]int, float64, error) {
	if !mode.Valid() {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownThreshold, mode)
	}
	if len(values) == 0 {
		return nil, 0, ErrEmptySequence
	}

	var threshold float64
	var err error
	switch mode {
	case ThresholdMedian:
		threshold, err = stats.Median(values)
	case ThresholdMean:
		threshold, err = stats.Mean(values)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("computing %s threshold: %w", mode, err)
	}

	seq := make([]int, len(values))
	for i, v := range values {
		// Ties resolve to 1
		if v >= threshold {
			seq[i] = 1
		}
	}

	return seq, threshold, nil
}
