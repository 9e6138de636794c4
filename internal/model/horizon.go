package model

import "fmt"

// Horizon is the requested lookback span for a chart request.
type Horizon string

const (
	Horizon1D  Horizon = "1d"
	Horizon5D  Horizon = "5d"
	Horizon1Mo Horizon = "1mo"
	Horizon1Y  Horizon = "1y"
	Horizon5Y  Horizon = "5y"
)

// ParseHorizon validates a horizon string from config or user input.
func ParseHorizon(s string) (Horizon, error) {
	switch Horizon(s) {
	case Horizon1D, Horizon5D, Horizon1Mo, Horizon1Y, Horizon5Y:
		return Horizon(s), nil
	}
	return "", fmt.Errorf("unknown horizon %q (want 1d, 5d, 1mo, 1y or 5y)", s)
}

// PredictionMode selects which close series the trend target is fitted on.
type PredictionMode string

const (
	// PredictNextBar fits the trend on the chart series itself.
	PredictNextBar PredictionMode = "NEXT_BAR"
	// PredictNextDay fits the trend on an independent daily series,
	// regardless of the chart horizon.
	PredictNextDay PredictionMode = "NEXT_DAY"
)

// ParsePredictionMode validates a prediction mode string.
func ParsePredictionMode(s string) (PredictionMode, error) {
	switch PredictionMode(s) {
	case PredictNextBar, PredictNextDay:
		return PredictionMode(s), nil
	}
	return "", fmt.Errorf("unknown prediction mode %q (want NEXT_BAR or NEXT_DAY)", s)
}
