package signal

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
)

// ErrEmptySignal reports a load or simulate operation that yields no samples.
var ErrEmptySignal = errors.New("signal has no samples")

// Signal represents a sampled physiological signal.
type Signal struct {
	Values       []float64
	SamplingRate float64 // Samples per second (Hz); 0 if unknown
	Name         string
}

// New creates a new signal from values with an unknown sampling rate.
func New(values []float64) *Signal {
	return &Signal{
		Values: values,
	}
}

// NewNamed creates a new named signal from values.
func NewNamed(name string, values []float64) *Signal {
	return &Signal{
		Values: values,
		Name:   name,
	}
}

// WithRate returns the signal with its sampling rate set.
func (s *Signal) WithRate(rate float64) *Signal {
	s.SamplingRate = rate
	return s
}

// Len returns the number of samples.
func (s *Signal) Len() int {
	return len(s.Values)
}

// Duration returns the recording duration in seconds, or 0 if the
// sampling rate is unknown.
func (s *Signal) Duration() float64 {
	if s.SamplingRate <= 0 {
		return 0
	}
	return float64(len(s.Values)) / s.SamplingRate
}

// Mean calculates the arithmetic mean of the signal.
func (s *Signal) Mean() float64 {
	m, err := stats.Mean(s.Values)
	if err != nil {
		return 0
	}
	return m
}

// Variance calculates the sample variance of the signal.
func (s *Signal) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	v, err := stats.SampleVariance(s.Values)
	if err != nil {
		return 0
	}
	return v
}

// Std calculates the sample standard deviation of the signal.
func (s *Signal) Std() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	sd, err := stats.StandardDeviationSample(s.Values)
	if err != nil {
		return 0
	}
	return sd
}

// Min returns the minimum value in the signal.
func (s *Signal) Min() float64 {
	m, err := stats.Min(s.Values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Max returns the maximum value in the signal.
func (s *Signal) Max() float64 {
	m, err := stats.Max(s.Values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Median returns the median value of the signal.
func (s *Signal) Median() float64 {
	m, err := stats.Median(s.Values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Range returns the peak-to-peak amplitude (max - min).
func (s *Signal) Range() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return s.Max() - s.Min()
}

// Slice returns a slice of the signal from start to end (exclusive).
func (s *Signal) Slice(start, end int) *Signal {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Signal{SamplingRate: s.SamplingRate, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	return &Signal{
		Values:       values,
		SamplingRate: s.SamplingRate,
		Name:         s.Name,
	}
}

// Copy creates a deep copy of the signal.
func (s *Signal) Copy() *Signal {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Signal{
		Values:       values,
		SamplingRate: s.SamplingRate,
		Name:         s.Name,
	}
}

// Standardize returns the z-scored signal (zero mean, unit variance).
func (s *Signal) Standardize() *Signal {
	mean := s.Mean()
	std := s.Std()

	if std == 0 {
		return s.Copy()
	}

	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		result[i] = (v - mean) / std
	}

	return &Signal{
		Values:       result,
		SamplingRate: s.SamplingRate,
		Name:         s.Name + "_std",
	}
}

// Detrend removes the least-squares linear trend from the signal.
func (s *Signal) Detrend() *Signal {
	n := len(s.Values)
	if n < 2 {
		return s.Copy()
	}

	// Fit y = a + b*t by ordinary least squares over t = 0..n-1
	tMean := float64(n-1) / 2
	yMean := s.Mean()

	var num, den float64
	for i, v := range s.Values {
		dt := float64(i) - tMean
		num += dt * (v - yMean)
		den += dt * dt
	}

	slope := 0.0
	if den != 0 {
		slope = num / den
	}
	intercept := yMean - slope*tMean

	result := make([]float64, n)
	for i, v := range s.Values {
		result[i] = v - (intercept + slope*float64(i))
	}

	return &Signal{
		Values:       result,
		SamplingRate: s.SamplingRate,
		Name:         s.Name + "_detrend",
	}
}
