package calculator

import (
	"math"

	"github.com/markcheno/go-talib"

	"StockPulse/internal/model"
)

// IndicatorConfig holds the lookback windows for the derived series.
type IndicatorConfig struct {
	RSIPeriod       int
	VolumeSMAPeriod int
	BollingerPeriod int
	BollingerStd    float64
}

// DefaultIndicatorConfig returns the standard windows: RSI 14, volume SMA 20,
// Bollinger 20 bars at 1.5 standard deviations.
func DefaultIndicatorConfig() IndicatorConfig {
	return IndicatorConfig{
		RSIPeriod:       14,
		VolumeSMAPeriod: 20,
		BollingerPeriod: 20,
		BollingerStd:    1.5,
	}
}

// Indicators computes the derived series for a bar series. Every output
// slice is aligned index-for-index with series.Bars; entries inside an
// indicator's warm-up prefix are NaN. A series too short for a window
// yields an all-NaN column rather than an error, so each indicator
// degrades independently.
func Indicators(series model.TimeSeries, cfg IndicatorConfig) model.IndicatorSet {
	closes := series.Closes()
	volumes := series.Volumes()
	n := len(closes)

	set := model.IndicatorSet{
		RSI:            nanSlice(n),
		VolumeSMA:      nanSlice(n),
		BollingerLower: nanSlice(n),
		BollingerUpper: nanSlice(n),
	}

	// RSI with a reduced lookback on short series, so even a thin session
	// still gets a momentum reading instead of an all-NaN column.
	rsiPeriod := cfg.RSIPeriod
	if n-1 < rsiPeriod {
		rsiPeriod = n - 1
	}
	if rsiPeriod >= 2 {
		rsi := talib.Rsi(closes, rsiPeriod)
		copyDefined(set.RSI, rsi, rsiPeriod)
	}

	if n >= cfg.VolumeSMAPeriod && cfg.VolumeSMAPeriod >= 1 {
		sma := talib.Sma(volumes, cfg.VolumeSMAPeriod)
		copyDefined(set.VolumeSMA, sma, cfg.VolumeSMAPeriod-1)
	}

	if n >= cfg.BollingerPeriod && cfg.BollingerPeriod >= 2 {
		upper, _, lower := talib.BBands(closes, cfg.BollingerPeriod, cfg.BollingerStd, cfg.BollingerStd, talib.SMA)
		copyDefined(set.BollingerUpper, upper, cfg.BollingerPeriod-1)
		copyDefined(set.BollingerLower, lower, cfg.BollingerPeriod-1)
	}

	return set
}

func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

// copyDefined copies src into dst from index warmup on. talib zero-fills
// its warm-up prefix, and zero is a valid price, so the prefix stays NaN.
func copyDefined(dst, src []float64, warmup int) {
	for i := warmup; i < len(dst) && i < len(src); i++ {
		dst[i] = src[i]
	}
}
