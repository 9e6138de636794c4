package strategy

import (
	"math"

	"StockPulse/internal/model"
)

// Thresholds are the RSI cut-offs for the band-touch conditions.
type Thresholds struct {
	BuyRSI  float64
	SellRSI float64
}

// DefaultThresholds returns the standard cut-offs: buy below 45, sell above 55.
func DefaultThresholds() Thresholds {
	return Thresholds{BuyRSI: 45, SellRSI: 55}
}

// Classify evaluates the most recent bar against its indicator snapshot.
// BUY: close at or below the lower Bollinger band while RSI is strictly
// below the buy threshold. SELL is the mirror on the upper band. Any NaN
// in a condition makes it false, so a short series degrades to NEUTRAL
// instead of raising.
func Classify(bar model.Bar, snap model.IndicatorSnapshot, th Thresholds) model.Signal {
	kind := model.SignalNeutral
	switch {
	case defined(snap.BollingerLower, snap.RSI) &&
		bar.Close <= snap.BollingerLower && snap.RSI < th.BuyRSI:
		kind = model.SignalBuy
	case defined(snap.BollingerUpper, snap.RSI) &&
		bar.Close >= snap.BollingerUpper && snap.RSI > th.SellRSI:
		kind = model.SignalSell
	}

	return model.Signal{
		Kind:       kind,
		Confidence: confidence(bar.Volume, snap.VolumeSMA),
	}
}

// confidence buckets the bar's volume against its moving average. An
// undefined average cannot confirm strength, which is the LOW bucket.
func confidence(volume, volumeSMA float64) model.Confidence {
	switch {
	case math.IsNaN(volumeSMA):
		return model.ConfidenceLow
	case volume >= volumeSMA:
		return model.ConfidenceHigh
	case volume >= volumeSMA/2:
		return model.ConfidenceAverage
	default:
		return model.ConfidenceLow
	}
}

func defined(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return false
		}
	}
	return true
}
