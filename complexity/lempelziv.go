package complexity

import (
	"errors"
	"fmt"
	"math"

	"github.com/Dzjnt/NeuroKit/signal"
)

// ErrSequenceTooShort reports an input too short for the requested
// computation, such as normalizing a single-sample sequence.
var ErrSequenceTooShort = errors.New("sequence too short")

// Options configures a Lempel-Ziv complexity computation.
type Options struct {
	Threshold ThresholdMode // Binarization threshold mode
	Normalize bool          // Rescale by the asymptotic bound n/log2(n)
}

// DefaultOptions returns the default configuration: median threshold,
// length-normalized output.
func DefaultOptions() Options {
	return Options{
		Threshold: ThresholdMedian,
		Normalize: true,
	}
}

// Params records the resolved configuration of a computation.
// ThresholdValue is set for single-sequence runs; Values holds the ordered
// per-channel complexities for multichannel runs.
type Params struct {
	Threshold      ThresholdMode
	ThresholdValue float64
	Normalize      bool
	Values         []float64
}

// LempelZiv computes the Lempel-Ziv complexity (LZC) of a signal.
//
// The signal is binarized at its median or mean, then scanned for novel
// substring patterns; the complexity counts the distinct patterns found.
// Regular signals produce few distinct patterns and a low LZC, irregular
// signals a high one. With Normalize set, the raw count is divided by
// n/log2(n) so that values are comparable across sequence lengths.
//
// References:
//   - Lempel, A., & Ziv, J. (1976). On the complexity of finite sequences.
//     IEEE Transactions on Information Theory, 22(1), 75-81.
//   - Kaspar, F., & Schuster, H. G. (1987). Easily calculable measure for the
//     complexity of spatiotemporal patterns. Physical Review A, 36(2), 842.
//   - Nagarajan, R. (2002). Quantifying physiological data with Lempel-Ziv
//     complexity - certain issues. IEEE Transactions on Biomedical
//     Engineering, 49(11), 1371-1373.
//   - Zhang, Y., Hao, J., Zhou, C., & Chang, K. (2009). Normalized Lempel-Ziv
//     complexity and its application in bio-sequence analysis. Journal of
//     Mathematical Chemistry, 46(4), 1203-1212.
func LempelZiv(s *signal.Signal, opts Options) (float64, *Params, error) {
	return lempelZivValues(s.Values, opts)
}

// lempelZivValues runs the single-sequence pipeline on raw values.
func lempelZivValues(values []float64, opts Options) (float64, *Params, error) {
	seq, threshold, err := Binarize(values, opts.Threshold)
	if err != nil {
		return 0, nil, err
	}

	if opts.Normalize && len(seq) < 2 {
		return 0, nil, fmt.Errorf("%w: need at least 2 samples to normalize, got %d",
			ErrSequenceTooShort, len(seq))
	}

	count := lempelZivCount(seq)

	result := float64(count)
	if opts.Normalize {
		result = normalizeCount(count, len(seq))
	}

	params := &Params{
		Threshold:      opts.Threshold,
		ThresholdValue: threshold,
		Normalize:      opts.Normalize,
	}

	return result, params, nil
}

// lempelZivCount counts the distinct patterns in a binary sequence using the
// Kaspar-Schuster formulation of the LZ76 scan.
//
// pointer walks candidate start positions inside the known prefix, trying to
// reproduce the tail that begins at prefixLen. A matching symbol extends the
// current substring; a mismatch advances pointer and retries. Exhausting the
// whole prefix (pointer == prefixLen) means the tail is novel: the phrase
// count goes up and the prefix boundary jumps forward by the longest match
// seen. A match still in progress when the scan ends counts as one final
// phrase.
func lempelZivCount(seq []int) int {
	complexity := 1
	n := len(seq)

	pointer := 0
	prefixLen := 1
	substringLen := 1
	finalSubstringLen := 1

	for prefixLen+substringLen <= n {
		if seq[pointer+substringLen-1] == seq[prefixLen+substringLen-1] {
			substringLen++
			continue
		}

		if substringLen > finalSubstringLen {
			finalSubstringLen = substringLen
		}
		pointer++

		if pointer == prefixLen {
			complexity++
			prefixLen += finalSubstringLen
			substringLen = 1
			pointer = 0
			finalSubstringLen = 1
		} else {
			substringLen = 1
		}
	}

	if substringLen != 1 {
		complexity++
	}

	return complexity
}

// normalizeCount rescales a raw phrase count by the asymptotic upper bound
// n/log2(n) on achievable complexity. Requires n > 1.
func normalizeCount(count, n int) float64 {
	return float64(count) / (float64(n) / math.Log2(float64(n)))
}
