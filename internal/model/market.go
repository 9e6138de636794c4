package model

import "time"

// Bar represents a single OHLCV candlestick.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// TimeSeries holds the fetched bars for one (ticker, horizon) request.
// Bars are in strictly increasing time order. The series is treated as
// immutable once returned by the collector.
type TimeSeries struct {
	Ticker    string
	Horizon   Horizon
	Bars      []Bar
	FetchedAt time.Time

	// FallbackSession is set to the recovered session date (YYYY-MM-DD)
	// when the short-horizon fallback kicked in, empty otherwise.
	FallbackSession string
}

// Last returns the most recent bar. The collector never returns an empty
// series, but callers that build a TimeSeries by hand get a zero Bar.
func (s TimeSeries) Last() Bar {
	if len(s.Bars) == 0 {
		return Bar{}
	}
	return s.Bars[len(s.Bars)-1]
}

// Closes extracts the close column.
func (s TimeSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Volumes extracts the volume column.
func (s TimeSeries) Volumes() []float64 {
	volumes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		volumes[i] = b.Volume
	}
	return volumes
}
