package complexity

import (
	"errors"
	"math"
	"testing"
)

func TestShannonEntropyConstant(t *testing.T) {
	got, err := ShannonEntropy([]float64{3, 3, 3, 3, 3}, 10)
	if err != nil {
		t.Fatalf("ShannonEntropy failed: %v", err)
	}
	if got != 0 {
		t.Errorf("Expected 0 entropy for constant signal, got %f", got)
	}
}

func TestShannonEntropySingleValue(t *testing.T) {
	got, err := ShannonEntropy([]float64{5}, 3)
	if err != nil {
		t.Fatalf("ShannonEntropy failed: %v", err)
	}
	if got != 0 {
		t.Errorf("Expected 0 entropy for single sample, got %f", got)
	}
}

func TestShannonEntropyUniform(t *testing.T) {
	// One value per bin: maximal entropy log2(4) = 2 bits
	got, err := ShannonEntropy([]float64{1, 2, 3, 4}, 4)
	if err != nil {
		t.Fatalf("ShannonEntropy failed: %v", err)
	}
	if math.Abs(got-2.0) > 1e-10 {
		t.Errorf("Expected entropy 2 bits, got %f", got)
	}
}

func TestShannonEntropyTwoLevel(t *testing.T) {
	got, err := ShannonEntropy([]float64{0, 0, 1, 1}, 2)
	if err != nil {
		t.Fatalf("ShannonEntropy failed: %v", err)
	}
	if math.Abs(got-1.0) > 1e-10 {
		t.Errorf("Expected entropy 1 bit for balanced two-level signal, got %f", got)
	}

	// Unbalanced split: -(0.75*log2(0.75) + 0.25*log2(0.25))
	got, err = ShannonEntropy([]float64{0, 0, 0, 1}, 2)
	if err != nil {
		t.Fatalf("ShannonEntropy failed: %v", err)
	}
	expected := -(0.75*math.Log2(0.75) + 0.25*math.Log2(0.25))
	if math.Abs(got-expected) > 1e-10 {
		t.Errorf("Expected entropy %f, got %f", expected, got)
	}
}

func TestShannonEntropyUpperBound(t *testing.T) {
	n := 500
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Sin(float64(i) / 7)
	}

	bins := 8
	got, err := ShannonEntropy(values, bins)
	if err != nil {
		t.Fatalf("ShannonEntropy failed: %v", err)
	}

	limit := math.Log2(float64(bins))
	if got <= 0 || got > limit+1e-10 {
		t.Errorf("Entropy %f outside (0, %f]", got, limit)
	}
}

func TestShannonEntropyInvalidBins(t *testing.T) {
	for _, bins := range []int{0, -1} {
		_, err := ShannonEntropy([]float64{1, 2, 3}, bins)
		if err == nil {
			t.Fatalf("Expected error for bins=%d", bins)
		}
		if !errors.Is(err, ErrInvalidBins) {
			t.Errorf("Expected ErrInvalidBins for bins=%d, got %v", bins, err)
		}
	}
}

func TestShannonEntropyEmpty(t *testing.T) {
	_, err := ShannonEntropy(nil, 10)
	if err == nil {
		t.Fatal("Expected error for empty input")
	}
	if !errors.Is(err, ErrEmptySequence) {
		t.Errorf("Expected ErrEmptySequence, got %v", err)
	}
}
