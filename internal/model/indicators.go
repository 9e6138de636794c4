package model

import "math"

// IndicatorSet holds derived series aligned index-for-index with the bars
// they were computed from. Warm-up entries shorter than an indicator's
// lookback are NaN.
type IndicatorSet struct {
	RSI            []float64
	VolumeSMA      []float64
	BollingerLower []float64
	BollingerUpper []float64
}

// IndicatorSnapshot is the per-bar view the classifier consumes.
type IndicatorSnapshot struct {
	RSI            float64
	VolumeSMA      float64
	BollingerLower float64
	BollingerUpper float64
}

// Last returns the snapshot for the most recent bar. An empty set yields
// an all-NaN snapshot.
func (s IndicatorSet) Last() IndicatorSnapshot {
	return s.At(len(s.RSI) - 1)
}

// At returns the snapshot at index i, all-NaN when out of range.
func (s IndicatorSet) At(i int) IndicatorSnapshot {
	snap := IndicatorSnapshot{
		RSI:            math.NaN(),
		VolumeSMA:      math.NaN(),
		BollingerLower: math.NaN(),
		BollingerUpper: math.NaN(),
	}
	if i >= 0 && i < len(s.RSI) {
		snap.RSI = s.RSI[i]
	}
	if i >= 0 && i < len(s.VolumeSMA) {
		snap.VolumeSMA = s.VolumeSMA[i]
	}
	if i >= 0 && i < len(s.BollingerLower) {
		snap.BollingerLower = s.BollingerLower[i]
	}
	if i >= 0 && i < len(s.BollingerUpper) {
		snap.BollingerUpper = s.BollingerUpper[i]
	}
	return snap
}

// PivotLevels holds the classical pivot-point estimates derived from a
// single reference bar.
type PivotLevels struct {
	Pivot      float64
	Resistance float64
	Support    float64
}

// Prediction is a single extrapolated price target.
type Prediction struct {
	Value float64
	// HorizonLabel names what the target refers to, e.g. "next bar".
	HorizonLabel string
}

// VolumeSplit partitions a bar's traded volume into inferred buy and sell
// pressure. Buy + Sell equals the bar volume within floating-point tolerance.
type VolumeSplit struct {
	Buy  float64
	Sell float64
}
