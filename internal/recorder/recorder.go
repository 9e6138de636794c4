package recorder

import (
	"math"

	"StockPulse/internal/model"
)

// Snapshot is the flattened per-run analysis record.
type Snapshot struct {
	Ticker          string
	Horizon         string
	Bars            int
	Price           float64
	RSI             float64
	VolumeSMA       float64
	BollingerLower  float64
	BollingerUpper  float64
	Pivot           float64
	Resistance      float64
	Support         float64
	Predicted       float64
	Trend           string
	BuyVolume       float64
	SellVolume      float64
	SignalKind      string
	Confidence      string
	FallbackSession string
}

// Failure records a run that produced no data.
type Failure struct {
	Ticker  string
	Horizon string
	Kind    string
	Message string
}

// Recorder persists analysis history for later inspection.
type Recorder interface {
	RecordSnapshot(snap *Snapshot) error
	RecordFailure(f *Failure) error
	Close() error
}

// SnapshotFromReport flattens a Report into a Snapshot row.
func SnapshotFromReport(r *model.Report) *Snapshot {
	snap := r.Indicators.Last()
	last := r.Series.Last()
	return &Snapshot{
		Ticker:          r.Ticker,
		Horizon:         string(r.Horizon),
		Bars:            len(r.Series.Bars),
		Price:           last.Close,
		RSI:             nanToZero(snap.RSI),
		VolumeSMA:       nanToZero(snap.VolumeSMA),
		BollingerLower:  nanToZero(snap.BollingerLower),
		BollingerUpper:  nanToZero(snap.BollingerUpper),
		Pivot:           nanToZero(r.Levels.Pivot),
		Resistance:      nanToZero(r.Levels.Resistance),
		Support:         nanToZero(r.Levels.Support),
		Predicted:       nanToZero(r.Prediction.Value),
		Trend:           string(r.Trend),
		BuyVolume:       r.PeriodSplit.Buy,
		SellVolume:      r.PeriodSplit.Sell,
		SignalKind:      string(r.Signal.Kind),
		Confidence:      string(r.Signal.Confidence),
		FallbackSession: r.Series.FallbackSession,
	}
}

// nanToZero maps undefined indicator values to 0 for storage; the sqlite
// driver rejects NaN.
func nanToZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
