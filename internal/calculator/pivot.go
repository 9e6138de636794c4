package calculator

import "StockPulse/internal/model"

// Pivot computes classical pivot-point support and resistance from a
// reference high/low/close triple. The caller chooses the reference bar;
// the analyzer consistently uses the last bar of the fetched series.
// Non-finite inputs propagate as NaN.
func Pivot(high, low, close float64) model.PivotLevels {
	pivot := (high + low + close) / 3
	return model.PivotLevels{
		Pivot:      pivot,
		Resistance: 2*pivot - low,
		Support:    2*pivot - high,
	}
}
