package complexity

import (
	"errors"
	"testing"

	"github.com/Dzjnt/NeuroKit/signal"
)

func TestSurrogateTestPeriodic(t *testing.T) {
	// A clean sinusoid is far more regular than its shuffled copies
	s, err := signal.Simulate(signal.SimulateOptions{
		Duration:     1,
		SamplingRate: 200,
		Frequency:    []float64{5},
	})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	result, err := SurrogateTest(s, DefaultOptions(), SurrogateConfig{N: 50, Seed: 7})
	if err != nil {
		t.Fatalf("SurrogateTest failed: %v", err)
	}

	t.Logf("Observed: %f, Surrogate mean: %f (std %f), z: %f, p: %g",
		result.Observed, result.SurrogateMean, result.SurrogateStd,
		result.ZScore, result.PValue)

	if result.SurrogateMean <= result.Observed {
		t.Errorf("Expected surrogate mean above observed: %f <= %f",
			result.SurrogateMean, result.Observed)
	}
	if result.ZScore >= 0 {
		t.Errorf("Expected negative z-score for periodic signal, got %f", result.ZScore)
	}
	if result.PValue >= 0.05 {
		t.Errorf("Expected significant p-value, got %f", result.PValue)
	}
	if result.PValue < 0 || result.PValue > 1 {
		t.Errorf("P-value %f outside [0, 1]", result.PValue)
	}
	if result.N != 50 {
		t.Errorf("Expected N=50, got %d", result.N)
	}
}

func TestSurrogateTestDeterministic(t *testing.T) {
	s, err := signal.Simulate(signal.SimulateOptions{
		Duration:     1,
		SamplingRate: 100,
		Frequency:    []float64{3},
		Noise:        0.2,
		Seed:         11,
	})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	cfg := SurrogateConfig{N: 30, Seed: 99}
	first, err := SurrogateTest(s, DefaultOptions(), cfg)
	if err != nil {
		t.Fatalf("First SurrogateTest failed: %v", err)
	}
	second, err := SurrogateTest(s, DefaultOptions(), cfg)
	if err != nil {
		t.Fatalf("Second SurrogateTest failed: %v", err)
	}

	if first.Observed != second.Observed {
		t.Errorf("Observed differs across runs: %f != %f", first.Observed, second.Observed)
	}
	if first.SurrogateMean != second.SurrogateMean {
		t.Errorf("Surrogate mean differs across runs: %f != %f",
			first.SurrogateMean, second.SurrogateMean)
	}
	if first.ZScore != second.ZScore {
		t.Errorf("Z-score differs across runs: %f != %f", first.ZScore, second.ZScore)
	}
	if first.PValue != second.PValue {
		t.Errorf("P-value differs across runs: %f != %f", first.PValue, second.PValue)
	}
}

func TestSurrogateTestConstant(t *testing.T) {
	// Shuffling a constant signal changes nothing, so the surrogate
	// distribution collapses
	s := signal.New([]float64{2, 2, 2, 2, 2})

	_, err := SurrogateTest(s, DefaultOptions(), SurrogateConfig{N: 20, Seed: 1})
	if err == nil {
		t.Fatal("Expected error for constant signal")
	}
	if !errors.Is(err, ErrDegenerateSurrogates) {
		t.Errorf("Expected ErrDegenerateSurrogates, got %v", err)
	}
}

func TestSurrogateTestTooFewSurrogates(t *testing.T) {
	s := signal.New([]float64{1, 2, 1, 2, 1, 2})

	_, err := SurrogateTest(s, DefaultOptions(), SurrogateConfig{N: 1})
	if err == nil {
		t.Fatal("Expected error for N=1")
	}
	if !errors.Is(err, ErrTooFewSurrogates) {
		t.Errorf("Expected ErrTooFewSurrogates, got %v", err)
	}
}

func TestSurrogateTestShortSignal(t *testing.T) {
	s := signal.New([]float64{1, 2})

	_, err := SurrogateTest(s, DefaultOptions(), DefaultSurrogateConfig())
	if err == nil {
		t.Fatal("Expected error for short signal")
	}
	if !errors.Is(err, ErrSequenceTooShort) {
		t.Errorf("Expected ErrSequenceTooShort, got %v", err)
	}
}

func TestSurrogateTestDefaultN(t *testing.T) {
	s, err := signal.Simulate(signal.SimulateOptions{
		Duration:     0.5,
		SamplingRate: 100,
		Frequency:    []float64{4},
		Noise:        0.3,
		Seed:         5,
	})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	result, err := SurrogateTest(s, DefaultOptions(), SurrogateConfig{Seed: 3})
	if err != nil {
		t.Fatalf("SurrogateTest failed: %v", err)
	}
	if result.N != 100 {
		t.Errorf("Expected default N=100, got %d", result.N)
	}
}
