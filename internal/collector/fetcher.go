package collector

import "StockPulse/internal/model"

// Provider is the upstream market-data contract: raw bars for a ticker over
// a lookback range at a sampling interval, possibly empty, possibly failing
// on transport or symbol errors.
type Provider interface {
	Bars(ticker, rng, interval string) ([]model.Bar, error)
	Name() string
}
