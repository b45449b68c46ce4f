package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// SimulateOptions holds parameters for synthetic signal generation.
type SimulateOptions struct {
	Duration     float64   // Recording length in seconds
	SamplingRate float64   // Samples per second (Hz)
	Frequency    []float64 // Sinusoid frequencies in Hz
	Amplitude    []float64 // One amplitude per frequency; a single value is broadcast
	Noise        float64   // Standard deviation of additive Gaussian noise
	Seed         int64     // Seed for reproducible noise
	Name         string
}

// DefaultSimulateOptions returns default simulation parameters:
// 10 seconds at 1000 Hz, a single 10 Hz sinusoid of amplitude 0.5, no noise.
func DefaultSimulateOptions() SimulateOptions {
	return SimulateOptions{
		Duration:     10,
		SamplingRate: 1000,
		Frequency:    []float64{10},
		Amplitude:    []float64{0.5},
	}
}

// Simulate generates a synthetic signal as a sum of sinusoids with optional
// Gaussian noise. The output is deterministic for a fixed seed.
func Simulate(opts SimulateOptions) (*Signal, error) {
	if opts.Duration <= 0 {
		return nil, errors.New("duration must be positive")
	}
	if opts.SamplingRate <= 0 {
		return nil, errors.New("sampling rate must be positive")
	}
	if len(opts.Frequency) == 0 {
		opts.Frequency = []float64{10}
	}

	amplitudes, err := broadcastAmplitudes(opts.Amplitude, len(opts.Frequency))
	if err != nil {
		return nil, err
	}

	nyquist := opts.SamplingRate / 2
	for _, f := range opts.Frequency {
		if f <= 0 {
			return nil, fmt.Errorf("frequency must be positive, got %g", f)
		}
		if f >= nyquist {
			return nil, fmt.Errorf("frequency %g Hz is not resolvable at %g Hz sampling (Nyquist %g Hz)",
				f, opts.SamplingRate, nyquist)
		}
	}

	n := int(opts.Duration * opts.SamplingRate)
	if n < 1 {
		return nil, fmt.Errorf("%w: duration %g s at %g Hz", ErrEmptySignal,
			opts.Duration, opts.SamplingRate)
	}

	values := make([]float64, n)
	for i := range values {
		t := float64(i) / opts.SamplingRate
		for j, f := range opts.Frequency {
			values[i] += amplitudes[j] * math.Sin(2*math.Pi*f*t)
		}
	}

	if opts.Noise > 0 {
		rng := rand.New(rand.NewSource(opts.Seed))
		for i := range values {
			values[i] += rng.NormFloat64() * opts.Noise
		}
	}

	return &Signal{
		Values:       values,
		SamplingRate: opts.SamplingRate,
		Name:         opts.Name,
	}, nil
}

// broadcastAmplitudes resolves the amplitude list against the frequency count.
func broadcastAmplitudes(amplitudes []float64, nFreq int) ([]float64, error) {
	switch len(amplitudes) {
	case 0:
		out := make([]float64, nFreq)
		for i := range out {
			out[i] = 0.5
		}
		return out, nil
	case 1:
		out := make([]float64, nFreq)
		for i := range out {
			out[i] = amplitudes[0]
		}
		return out, nil
	case nFreq:
		return amplitudes, nil
	default:
		return nil, fmt.Errorf("got %d amplitudes for %d frequencies", len(amplitudes), nFreq)
	}
}
