package calculator

import "StockPulse/internal/model"

// rangeEpsilon guards the partition against a zero-range (flat) bar.
const rangeEpsilon = 1e-5

// SplitVolume partitions a bar's traded volume into buy and sell pressure
// from its intra-bar price action: a close near the high attributes the
// volume to buying, near the low to selling. Buy + Sell equals the bar
// volume by construction.
func SplitVolume(bar model.Bar) model.VolumeSplit {
	r := (bar.High - bar.Low) + rangeEpsilon
	return model.VolumeSplit{
		Buy:  bar.Volume * (bar.Close - bar.Low) / r,
		Sell: bar.Volume * (bar.High - bar.Close) / r,
	}
}

// SplitSeries partitions every bar independently.
func SplitSeries(bars []model.Bar) []model.VolumeSplit {
	splits := make([]model.VolumeSplit, len(bars))
	for i, b := range bars {
		splits[i] = SplitVolume(b)
	}
	return splits
}

// AggregateSplit sums the per-bar partitions over the period.
func AggregateSplit(splits []model.VolumeSplit) model.VolumeSplit {
	var total model.VolumeSplit
	for _, s := range splits {
		total.Buy += s.Buy
		total.Sell += s.Sell
	}
	return total
}
