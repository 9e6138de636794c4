package collector

import (
	"log"
	"time"

	"StockPulse/internal/model"
)

// horizonQuery maps a horizon to the upstream (range, interval) pair.
type horizonQuery struct {
	Range    string
	Interval string
}

// horizonTable is fixed: each horizon resolves to exactly one upstream query.
var horizonTable = map[model.Horizon]horizonQuery{
	model.Horizon1D:  {"1d", "1m"},
	model.Horizon5D:  {"5d", "5m"},
	model.Horizon1Mo: {"1mo", "1d"},
	model.Horizon1Y:  {"1y", "1d"},
	model.Horizon5Y:  {"5y", "1d"},
}

const (
	// fallbackMinBars is the bar count below which the shortest horizon
	// re-queries a wider lookback to recover the last trading session.
	fallbackMinBars = 5
	// fallbackRange is the widened lookback. Yahoo only accepts discrete
	// ranges, so the few-calendar-days widening is requested as 5d.
	fallbackRange    = "5d"
	fallbackInterval = "1m"
)

// Collector fetches a TimeSeries for a (ticker, horizon) pair, applying the
// closed-market fallback on the shortest horizon. Idempotent and safely
// retryable: the only side effect is the upstream call.
type Collector struct {
	Provider Provider
	Cache    *Cache // optional
}

// NewCollector creates a Collector. cache may be nil to disable memoization.
func NewCollector(provider Provider, cache *Cache) *Collector {
	return &Collector{Provider: provider, Cache: cache}
}

// Fetch retrieves the bar series for the given horizon. It fails with a
// *FetchError when the provider raises (FetchUpstream) or when no bars
// remain after the fallback (FetchEmpty).
func (c *Collector) Fetch(ticker string, horizon model.Horizon) (model.TimeSeries, error) {
	q, ok := horizonTable[horizon]
	if !ok {
		// ParseHorizon guards config input; a miss here is a programming error.
		return model.TimeSeries{}, &FetchError{Kind: FetchEmpty, Ticker: ticker}
	}

	key := cacheKey(ticker, q.Range, q.Interval)
	if c.Cache != nil {
		if series, ok := c.Cache.get(key); ok {
			return series, nil
		}
	}

	bars, err := c.Provider.Bars(ticker, q.Range, q.Interval)
	if err != nil {
		return model.TimeSeries{}, &FetchError{Kind: FetchUpstream, Ticker: ticker, Err: err}
	}

	fallbackSession := ""
	if horizon == model.Horizon1D && len(bars) < fallbackMinBars {
		// Market likely closed (weekend, holiday, pre-open): widen the
		// lookback and keep only the most recent session present.
		wide, err := c.Provider.Bars(ticker, fallbackRange, fallbackInterval)
		if err != nil {
			return model.TimeSeries{}, &FetchError{Kind: FetchUpstream, Ticker: ticker, Err: err}
		}
		if len(wide) == 0 {
			// The widened query found nothing either; a 1-4 bar remnant
			// is not a usable session.
			return model.TimeSeries{}, &FetchError{Kind: FetchEmpty, Ticker: ticker}
		}
		bars = lastSessionBars(wide)
		fallbackSession = sessionDate(bars[len(bars)-1].Time)
		log.Printf("[INFO] market closed for %s, showing last session %s (%d bars)",
			ticker, fallbackSession, len(bars))
	}

	if len(bars) == 0 {
		return model.TimeSeries{}, &FetchError{Kind: FetchEmpty, Ticker: ticker}
	}

	series := model.TimeSeries{
		Ticker:          ticker,
		Horizon:         horizon,
		Bars:            bars,
		FetchedAt:       time.Now(),
		FallbackSession: fallbackSession,
	}
	if c.Cache != nil {
		c.Cache.add(key, series)
	}
	return series, nil
}

// lastSessionBars filters a chronological series down to the bars of the
// most recent calendar date it contains.
func lastSessionBars(bars []model.Bar) []model.Bar {
	last := sessionDate(bars[len(bars)-1].Time)
	session := make([]model.Bar, 0, len(bars))
	for _, b := range bars {
		if sessionDate(b.Time) == last {
			session = append(session, b)
		}
	}
	return session
}

func sessionDate(t time.Time) string {
	return t.Format("2006-01-02")
}
