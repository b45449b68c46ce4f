// Package neurokit provides Lempel-Ziv complexity analysis for physiological signals.
//
// NeuroKit is a Go package for quantifying the irregularity of physiological
// time series such as EEG, ECG, and respiration. It implements Lempel-Ziv
// complexity with configurable binarization, multichannel aggregation, and
// surrogate-based significance testing.
//
// # Features
//
//   - Lempel-Ziv complexity (LZ76) with median or mean binarization
//   - Normalization by the asymptotic bound n/log2(n)
//   - Concurrent multichannel analysis with per-channel results
//   - Shuffle-surrogate significance testing
//   - Shannon entropy of the amplitude distribution
//   - Signal simulation, CSV loading, and basic transformations
//
// # Quick Start
//
// Compute the complexity of a simulated signal:
//
//	s, _ := signal.Simulate(signal.SimulateOptions{
//	    Duration:     2,
//	    SamplingRate: 1000,
//	    Frequency:    []float64{5},
//	    Noise:        10,
//	})
//	lzc, _, _ := complexity.LempelZiv(s, complexity.DefaultOptions())
//
// Analyze every channel of a recording:
//
//	channels, _ := signal.LoadCSVChannels("eeg.csv", nil, nil)
//	mean, params, _ := complexity.LempelZivChannels(channels, complexity.DefaultOptions())
//
// # Packages
//
// The library is organized into the following packages:
//
//   - signal: Signal data structures, simulation, and CSV utilities
//   - complexity: Lempel-Ziv complexity, surrogate testing, and entropy
//
// # References
//
//   - Lempel, A., & Ziv, J. (1976). On the complexity of finite sequences
//   - Kaspar, F., & Schuster, H. G. (1987). Easily calculable measure for the
//     complexity of spatiotemporal patterns
//   - Zhang, Y., et al. (2009). Normalized Lempel-Ziv complexity and its
//     application in bio-sequence analysis
package neurokit
