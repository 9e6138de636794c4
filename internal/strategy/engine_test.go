package strategy

import (
	"math"
	"testing"

	"StockPulse/internal/model"
)

func snap(rsi, volSMA, lower, upper float64) model.IndicatorSnapshot {
	return model.IndicatorSnapshot{
		RSI:            rsi,
		VolumeSMA:      volSMA,
		BollingerLower: lower,
		BollingerUpper: upper,
	}
}

func TestClassify_Kinds(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		name string
		bar  model.Bar
		snap model.IndicatorSnapshot
		want model.SignalKind
	}{
		{"oversold touch buys", model.Bar{Close: 95, Volume: 1000}, snap(40, 800, 96, 104), model.SignalBuy},
		{"overbought touch sells", model.Bar{Close: 105, Volume: 1000}, snap(60, 800, 96, 104), model.SignalSell},
		{"mid-band is neutral", model.Bar{Close: 100, Volume: 1000}, snap(50, 800, 96, 104), model.SignalNeutral},
		{"band touch without RSI confirmation", model.Bar{Close: 95, Volume: 1000}, snap(50, 800, 96, 104), model.SignalNeutral},
		{"low RSI without band touch", model.Bar{Close: 100, Volume: 1000}, snap(30, 800, 96, 104), model.SignalNeutral},
	}
	for _, tt := range tests {
		got := Classify(tt.bar, tt.snap, th)
		if got.Kind != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got.Kind)
		}
	}
}

func TestClassify_RSIBoundaryExclusive(t *testing.T) {
	th := DefaultThresholds()
	bar := model.Bar{Close: 96, Volume: 1000}

	// close == lower band exactly, RSI one below the threshold: BUY.
	got := Classify(bar, snap(44, 800, 96, 104), th)
	if got.Kind != model.SignalBuy {
		t.Errorf("RSI 44 at the lower band should BUY, got %s", got.Kind)
	}
	// RSI exactly at the threshold is not strictly below: NEUTRAL.
	got = Classify(bar, snap(45, 800, 96, 104), th)
	if got.Kind != model.SignalNeutral {
		t.Errorf("RSI 45 at the lower band should stay NEUTRAL, got %s", got.Kind)
	}

	sellBar := model.Bar{Close: 104, Volume: 1000}
	got = Classify(sellBar, snap(55, 800, 96, 104), th)
	if got.Kind != model.SignalNeutral {
		t.Errorf("RSI 55 at the upper band should stay NEUTRAL, got %s", got.Kind)
	}
	got = Classify(sellBar, snap(56, 800, 96, 104), th)
	if got.Kind != model.SignalSell {
		t.Errorf("RSI 56 at the upper band should SELL, got %s", got.Kind)
	}
}

func TestClassify_UndefinedBandsNeutral(t *testing.T) {
	nan := math.NaN()
	bar := model.Bar{Close: 10, Volume: 1000}
	got := Classify(bar, snap(20, nan, nan, nan), DefaultThresholds())
	if got.Kind != model.SignalNeutral {
		t.Errorf("undefined bands must classify NEUTRAL, got %s", got.Kind)
	}
	got = Classify(bar, snap(nan, 800, 9, 11), DefaultThresholds())
	if got.Kind != model.SignalNeutral {
		t.Errorf("undefined RSI must classify NEUTRAL, got %s", got.Kind)
	}
}

func TestClassify_ConfidenceTiers(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		volume float64
		volSMA float64
		want   model.Confidence
	}{
		{2000, 1000, model.ConfidenceHigh},
		{1000, 1000, model.ConfidenceHigh}, // at the average counts as HIGH
		{600, 1000, model.ConfidenceAverage},
		{500, 1000, model.ConfidenceAverage}, // half the average still AVERAGE
		{499, 1000, model.ConfidenceLow},
		{0, 1000, model.ConfidenceLow},
		{2000, math.NaN(), model.ConfidenceLow}, // unconfirmed volume strength
	}
	for _, tt := range tests {
		bar := model.Bar{Close: 100, Volume: tt.volume}
		got := Classify(bar, snap(50, tt.volSMA, 96, 104), th)
		if got.Confidence != tt.want {
			t.Errorf("volume %v vs SMA %v: expected %s, got %s",
				tt.volume, tt.volSMA, tt.want, got.Confidence)
		}
	}
}
