// Package signal provides physiological signal data structures and utilities.
//
// This package includes the Signal type for representing sampled physiological
// recordings, along with functions for simulation, CSV loading, and basic
// transformations.
//
// # Creating a Signal
//
// Create a signal from a slice of samples:
//
//	values := []float64{0.1, 0.4, 0.3, 0.8, 0.5}
//	s := signal.New(values)
//
//	// With a name and sampling rate
//	ecg := signal.NewNamed("ecg", values).WithRate(250)
//	fmt.Println(ecg.Duration()) // seconds
//
// # Simulation
//
// Generate synthetic signals for testing and examples:
//
//	// 2 seconds of a 5 Hz sinusoid at 1000 Hz with Gaussian noise
//	s, err := signal.Simulate(signal.SimulateOptions{
//	    Duration:     2,
//	    SamplingRate: 1000,
//	    Frequency:    []float64{5},
//	    Noise:        10,
//	    Seed:         42,
//	})
//
//	// Multiple frequency components
//	s, err := signal.Simulate(signal.SimulateOptions{
//	    Duration:     10,
//	    SamplingRate: 500,
//	    Frequency:    []float64{5, 12, 40},
//	    Amplitude:    []float64{1.0, 0.5, 0.1},
//	})
//
// # Loading from CSV
//
// Load recordings from CSV files:
//
//	// Load a specific column
//	s, err := signal.LoadCSVColumn("recording.csv", "eeg1")
//
//	// Load with filtering (long format)
//	s, err := signal.LoadCSVFiltered(
//	    "recording.csv",
//	    "channel", "ecg", // filter column and value
//	    "value",          // value column
//	)
//
//	// Load every channel of a wide-format file
//	channels, err := signal.LoadCSVChannels("eeg.csv", nil, nil)
//
// A time column, when present, determines the sampling rate automatically.
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := s.Mean()
//	std := s.Std()
//	min := s.Min()
//	max := s.Max()
//	median := s.Median()
//
// # Transformations
//
// Transform the signal:
//
//	standardized := s.Standardize() // Z-score standardization
//	detrended := s.Detrend()        // Remove linear trend
//	subset := s.Slice(100, 500)
//	copy := s.Copy()
package signal
