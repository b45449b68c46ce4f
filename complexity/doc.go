// Package complexity provides irregularity measures for physiological signals.
//
// This package includes Lempel-Ziv complexity with median or mean
// binarization, multichannel aggregation, shuffle-surrogate significance
// testing, and Shannon entropy of the amplitude distribution.
//
// # Lempel-Ziv Complexity
//
// Compute the complexity of a signal:
//
//	s, _ := signal.Simulate(signal.SimulateOptions{
//	    Duration:     2,
//	    SamplingRate: 1000,
//	    Frequency:    []float64{5},
//	    Noise:        10,
//	})
//
//	lzc, params, err := complexity.LempelZiv(s, complexity.DefaultOptions())
//	fmt.Printf("LZC: %.4f (threshold %.4f)\n", lzc, params.ThresholdValue)
//
// By default the raw phrase count is normalized by n/log2(n), so values near
// 1 indicate noise-like data and values near 0 indicate strong regularity.
// Disable normalization to obtain the raw count:
//
//	raw, _, err := complexity.LempelZiv(s, complexity.Options{
//	    Threshold: complexity.ThresholdMedian,
//	    Normalize: false,
//	})
//
// # Threshold Selection
//
// The signal is binarized before scanning. The median threshold is robust to
// outliers and splits the samples evenly; the mean threshold follows the
// amplitude distribution:
//
//	opts := complexity.Options{Threshold: complexity.ThresholdMean, Normalize: true}
//	lzc, _, err := complexity.LempelZiv(s, opts)
//
// # Multichannel Signals
//
// Average the complexity over several channels, such as an EEG montage:
//
//	channels, _ := signal.LoadCSVChannels("eeg.csv", nil, nil)
//	mean, params, err := complexity.LempelZivChannels(channels, complexity.DefaultOptions())
//	// params.Values holds the per-channel complexities in input order
//
// # Surrogate Testing
//
// Test whether the observed complexity differs from temporally shuffled
// copies of the same samples:
//
//	result, err := complexity.SurrogateTest(s, complexity.DefaultOptions(),
//	    complexity.SurrogateConfig{N: 100, Seed: 42})
//	if result.PValue < 0.05 {
//	    // Temporal structure is significant
//	}
//
// # Shannon Entropy
//
// Measure the spread of the amplitude distribution:
//
//	h, err := complexity.ShannonEntropy(s.Values, 16)
//	// 0 for a constant signal, up to log2(16) bits for a uniform spread
package complexity
