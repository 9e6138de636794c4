package calculator

import "math"

// TrendWindow is the maximum number of recent closes the trend is fitted on.
const TrendWindow = 15

// Clamp bounds a prediction to an absolute price interval.
type Clamp struct {
	Min float64
	Max float64
}

// BandClamp builds a clamp of lastClose*(1±pct), modeling an exchange
// price band (e.g. a 5% circuit limit).
func BandClamp(lastClose, pct float64) *Clamp {
	return &Clamp{
		Min: lastClose * (1 - pct),
		Max: lastClose * (1 + pct),
	}
}

// FitTrend fits an ordinary least-squares line over the most recent
// min(len, TrendWindow) closes with x = 0..n-1. ok is false when fewer
// than 2 points are available and the slope is undefined.
func FitTrend(closes []float64) (slope, intercept float64, ok bool) {
	window := closes
	if len(window) > TrendWindow {
		window = window[len(window)-TrendWindow:]
	}
	n := len(window)
	if n < 2 {
		return 0, 0, false
	}

	meanX := float64(n-1) / 2
	var meanY float64
	for _, y := range window {
		meanY += y
	}
	meanY /= float64(n)

	var num, den float64
	for i, y := range window {
		dx := float64(i) - meanX
		num += dx * (y - meanY)
		den += dx * dx
	}
	slope = num / den
	intercept = meanY - slope*meanX
	return slope, intercept, true
}

// PredictNext extrapolates the fitted trend stepsAhead steps past the
// window, optionally clamped. With fewer than 2 closes the last close is
// returned unchanged. Deterministic: the same window always yields a
// bit-identical result.
func PredictNext(closes []float64, stepsAhead int, clamp *Clamp) float64 {
	if len(closes) == 0 {
		return math.NaN()
	}
	last := closes[len(closes)-1]

	slope, intercept, ok := FitTrend(closes)
	if !ok {
		return last
	}

	n := len(closes)
	if n > TrendWindow {
		n = TrendWindow
	}
	prediction := slope*float64(n+stepsAhead) + intercept

	if clamp != nil {
		prediction = math.Max(clamp.Min, math.Min(clamp.Max, prediction))
	}
	return prediction
}
