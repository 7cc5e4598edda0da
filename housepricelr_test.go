package housepricelr

import (
	"math"
	"testing"
)

func TestFitAndPredict(t *testing.T) {
	result, err := Fit([]Observation{
		{X: 50, Y: 100_000},
		{X: 100, Y: 200_000},
		{X: 150, Y: 300_000},
	})
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if result.Formula != "y = 2000.0000x + 0.00" {
		t.Errorf("unexpected formula: %q", result.Formula)
	}

	got := Predict(75, result.Line)
	if math.Abs(got-150_000) > 1e-6 {
		t.Errorf("Predict(75) = %v, want 150000", got)
	}
}

func TestFitInsufficientData(t *testing.T) {
	_, err := Fit([]Observation{{X: 1, Y: 2}})
	if err != ErrInsufficientData {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}
