package calculator

import (
	"math"
	"testing"
)

func TestPredictNext_LinearScenario(t *testing.T) {
	closes := []float64{100, 101, 102, 103, 104, 105, 106, 107, 108, 109}
	got := PredictNext(closes, 1, nil)
	if math.Abs(got-111) > 1e-9 {
		t.Errorf("expected 111 for a unit-slope line, got %v", got)
	}

	slope, intercept, ok := FitTrend(closes)
	if !ok {
		t.Fatal("expected a defined fit")
	}
	if math.Abs(slope-1) > 1e-9 || math.Abs(intercept-100) > 1e-9 {
		t.Errorf("expected slope 1 intercept 100, got %v %v", slope, intercept)
	}
}

func TestPredictNext_Deterministic(t *testing.T) {
	closes := []float64{99.13, 100.7, 98.4, 101.22, 103.05, 102.9, 104.11}
	first := PredictNext(closes, 1, nil)
	for i := 0; i < 10; i++ {
		if got := PredictNext(closes, 1, nil); got != first {
			t.Fatalf("non-deterministic prediction: %v vs %v", got, first)
		}
	}
}

func TestPredictNext_Degenerate(t *testing.T) {
	if got := PredictNext([]float64{42.5}, 1, nil); got != 42.5 {
		t.Errorf("single point should return the last close, got %v", got)
	}
	if got := PredictNext(nil, 1, nil); !math.IsNaN(got) {
		t.Errorf("empty input should return NaN, got %v", got)
	}
	if _, _, ok := FitTrend([]float64{42.5}); ok {
		t.Error("single-point fit should report ok=false")
	}
}

func TestPredictNext_WindowBounded(t *testing.T) {
	// 30 closes, only the last 15 matter: a flat tail after a steep head.
	closes := make([]float64, 30)
	for i := 0; i < 15; i++ {
		closes[i] = float64(i) * 10
	}
	for i := 15; i < 30; i++ {
		closes[i] = 200
	}
	got := PredictNext(closes, 1, nil)
	if math.Abs(got-200) > 1e-9 {
		t.Errorf("expected flat-window prediction 200, got %v", got)
	}
}

func TestPredictNext_Clamp(t *testing.T) {
	closes := []float64{100, 110, 120, 130, 140} // steep slope
	last := closes[len(closes)-1]
	clamp := BandClamp(last, 0.05)

	got := PredictNext(closes, 1, clamp)
	if got < last*0.95-1e-9 || got > last*1.05+1e-9 {
		t.Errorf("clamped prediction %v outside [%v, %v]", got, last*0.95, last*1.05)
	}
	// The raw extrapolation exceeds the band, so the clamp must bind.
	if math.Abs(got-last*1.05) > 1e-9 {
		t.Errorf("expected prediction pinned to the upper band %v, got %v", last*1.05, got)
	}

	raw := PredictNext(closes, 1, nil)
	if raw <= last*1.05 {
		t.Fatalf("test premise broken: raw prediction %v should exceed the band", raw)
	}
}

func TestPredictNext_ClampInclusiveBounds(t *testing.T) {
	closes := []float64{100, 100, 100, 100}
	clamp := BandClamp(100, 0.05)
	got := PredictNext(closes, 1, clamp)
	if got < clamp.Min || got > clamp.Max {
		t.Errorf("prediction %v outside inclusive clamp [%v, %v]", got, clamp.Min, clamp.Max)
	}
}
