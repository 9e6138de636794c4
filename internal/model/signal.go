package model

import "time"

// SignalKind is the trading signal emitted for the most recent bar.
type SignalKind string

const (
	SignalBuy     SignalKind = "BUY"
	SignalSell    SignalKind = "SELL"
	SignalNeutral SignalKind = "NEUTRAL"
)

// Confidence is a coarse three-tier bucket describing volume strength
// relative to its moving average.
type Confidence string

const (
	ConfidenceHigh    Confidence = "HIGH"
	ConfidenceAverage Confidence = "AVERAGE"
	// ConfidenceLow marks a move on weak volume ("faking").
	ConfidenceLow Confidence = "LOW"
)

// Signal is the classifier output for the current bar.
type Signal struct {
	Kind       SignalKind
	Confidence Confidence
}

// TrendDirection labels the sign of the fitted trend slope.
type TrendDirection string

const (
	TrendUp   TrendDirection = "UP"
	TrendDown TrendDirection = "DOWN"
	TrendFlat TrendDirection = "FLAT"
)

// Report is the full analysis output for one run: everything a renderer,
// notifier or exporter needs, all value types, no behavior.
type Report struct {
	Ticker      string
	Horizon     Horizon
	Series      TimeSeries
	Indicators  IndicatorSet
	Levels      PivotLevels
	Prediction  Prediction
	Trend       TrendDirection
	Splits      []VolumeSplit
	LastSplit   VolumeSplit
	PeriodSplit VolumeSplit
	Signal      Signal
	GeneratedAt time.Time
}
