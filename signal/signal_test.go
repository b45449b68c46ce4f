package signal

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}

	for i, v := range s.Values {
		if v != values[i] {
			t.Errorf("Expected value %f at index %d, got %f", values[i], i, v)
		}
	}
}

func TestNewNamed(t *testing.T) {
	s := NewNamed("ecg", []float64{1, 2, 3})

	if s.Name != "ecg" {
		t.Errorf("Expected name 'ecg', got '%s'", s.Name)
	}
	if s.Len() != 3 {
		t.Errorf("Expected length 3, got %d", s.Len())
	}
}

func TestDuration(t *testing.T) {
	s := New(make([]float64, 2000)).WithRate(1000)

	if math.Abs(s.Duration()-2.0) > 1e-10 {
		t.Errorf("Expected duration 2.0s, got %f", s.Duration())
	}

	// Unknown rate
	s2 := New([]float64{1, 2, 3})
	if s2.Duration() != 0 {
		t.Errorf("Expected duration 0 for unknown rate, got %f", s2.Duration())
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			result := s.Mean()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := 4.571428571428571

	result := s.Variance()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected variance %f, got %f", expected, result)
	}
}

func TestStd(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := math.Sqrt(4.571428571428571)

	result := s.Std()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected std %f, got %f", expected, result)
	}
}

func TestMinMax(t *testing.T) {
	s := New([]float64{5, 2, 8, 1, 9, 3})

	if s.Min() != 1 {
		t.Errorf("Expected min 1, got %f", s.Min())
	}

	if s.Max() != 9 {
		t.Errorf("Expected max 9, got %f", s.Max())
	}

	if math.Abs(s.Range()-8) > 1e-10 {
		t.Errorf("Expected range 8, got %f", s.Range())
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"odd", []float64{1, 3, 5}, 3.0},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{5}, 5.0},
		{"unsorted", []float64{5, 1, 3}, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			result := s.Median()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected median %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestMedianDoesNotMutate(t *testing.T) {
	values := []float64{5, 1, 3}
	s := New(values)
	s.Median()

	expected := []float64{5, 1, 3}
	for i, v := range s.Values {
		if v != expected[i] {
			t.Errorf("Median mutated input at index %d: got %f", i, v)
		}
	}
}

func TestSlice(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5}).WithRate(100)
	sliced := s.Slice(1, 4)

	expected := []float64{2, 3, 4}
	if len(sliced.Values) != len(expected) {
		t.Errorf("Expected length %d, got %d", len(expected), len(sliced.Values))
	}

	for i, v := range sliced.Values {
		if math.Abs(v-expected[i]) > 1e-10 {
			t.Errorf("Expected %f at index %d, got %f", expected[i], i, v)
		}
	}

	if sliced.SamplingRate != 100 {
		t.Errorf("Expected sampling rate to carry over, got %f", sliced.SamplingRate)
	}
}

func TestStandardize(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	standardized := s.Standardize()

	// Mean should be close to 0
	if math.Abs(standardized.Mean()) > 1e-10 {
		t.Errorf("Expected mean close to 0, got %f", standardized.Mean())
	}

	// Std should be close to 1
	if math.Abs(standardized.Std()-1) > 1e-10 {
		t.Errorf("Expected std close to 1, got %f", standardized.Std())
	}
}

func TestStandardizeConstant(t *testing.T) {
	s := New([]float64{3, 3, 3, 3})
	standardized := s.Standardize()

	// Zero-variance signal comes back unchanged
	for i, v := range standardized.Values {
		if v != 3 {
			t.Errorf("Expected constant signal unchanged at index %d, got %f", i, v)
		}
	}
}

func TestDetrend(t *testing.T) {
	// Pure linear trend should detrend to near-zero
	n := 100
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 2.5 + 0.3*float64(i)
	}

	s := New(values)
	detrended := s.Detrend()

	for i, v := range detrended.Values {
		if math.Abs(v) > 1e-8 {
			t.Errorf("Expected near-zero residual at index %d, got %f", i, v)
		}
	}
}

func TestDetrendPreservesOscillation(t *testing.T) {
	// Sinusoid on a trend: detrending should keep the oscillation amplitude
	n := 200
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 0.5*float64(i) + math.Sin(2*math.Pi*float64(i)/20)
	}

	s := New(values)
	detrended := s.Detrend()

	if detrended.Range() < 1.5 {
		t.Errorf("Expected oscillation to survive detrending, range %f", detrended.Range())
	}

	if math.Abs(detrended.Mean()) > 1e-8 {
		t.Errorf("Expected near-zero mean after detrending, got %f", detrended.Mean())
	}
}

func TestCopy(t *testing.T) {
	s := NewNamed("resp", []float64{1, 2, 3}).WithRate(25)
	copied := s.Copy()

	// Modify original
	s.Values[0] = 100

	// Copy should be unchanged
	if copied.Values[0] != 1 {
		t.Errorf("Copy was modified when original changed")
	}

	if copied.Name != "resp" || copied.SamplingRate != 25 {
		t.Errorf("Copy lost metadata: name=%s rate=%f", copied.Name, copied.SamplingRate)
	}
}
