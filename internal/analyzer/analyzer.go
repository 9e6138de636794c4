package analyzer

import (
	"fmt"
	"log"
	"time"

	"StockPulse/internal/calculator"
	"StockPulse/internal/collector"
	"StockPulse/internal/model"
	"StockPulse/internal/strategy"
)

// Analyzer runs the full pipeline for one request: fetch, derive, classify.
// Everything downstream of the fetch is pure, so a run either fails at the
// fetch boundary or produces a complete Report with per-indicator
// degradation baked in as NaN.
type Analyzer struct {
	Collector    *collector.Collector
	IndicatorCfg calculator.IndicatorConfig
	Thresholds   strategy.Thresholds
	Mode         model.PredictionMode
	// PriceBandPct clamps the prediction to last*(1±pct) when positive,
	// for instruments trading under an exchange price band.
	PriceBandPct float64
}

// New creates an Analyzer with default indicator windows and thresholds.
func New(col *collector.Collector, mode model.PredictionMode) *Analyzer {
	return &Analyzer{
		Collector:    col,
		IndicatorCfg: calculator.DefaultIndicatorConfig(),
		Thresholds:   strategy.DefaultThresholds(),
		Mode:         mode,
	}
}

// Analyze fetches the series for (ticker, horizon) and computes the full
// Report. A fetch failure aborts the run; no partial report is produced
// without price data.
func (a *Analyzer) Analyze(ticker string, horizon model.Horizon) (*model.Report, error) {
	series, err := a.Collector.Fetch(ticker, horizon)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", ticker, err)
	}

	indicators := calculator.Indicators(series, a.IndicatorCfg)
	last := series.Last()
	levels := calculator.Pivot(last.High, last.Low, last.Close)

	prediction, trend := a.predict(ticker, series)

	splits := calculator.SplitSeries(series.Bars)

	return &model.Report{
		Ticker:      ticker,
		Horizon:     horizon,
		Series:      series,
		Indicators:  indicators,
		Levels:      levels,
		Prediction:  prediction,
		Trend:       trend,
		Splits:      splits,
		LastSplit:   splits[len(splits)-1],
		PeriodSplit: calculator.AggregateSplit(splits),
		Signal:      strategy.Classify(last, indicators.Last(), a.Thresholds),
		GeneratedAt: time.Now(),
	}, nil
}

// predict picks the close series for the trend fit. NEXT_DAY always
// regresses over an independent daily series; if that fetch fails the
// prediction degrades to the chart series rather than failing the run.
func (a *Analyzer) predict(ticker string, series model.TimeSeries) (model.Prediction, model.TrendDirection) {
	closes := series.Closes()
	label := "next bar"

	if a.Mode == model.PredictNextDay {
		daily, err := a.Collector.Fetch(ticker, model.Horizon1Y)
		if err != nil {
			log.Printf("[WARN] daily series for %s unavailable, predicting next bar instead: %v", ticker, err)
		} else {
			closes = daily.Closes()
			label = "next day"
		}
	}

	var clamp *calculator.Clamp
	if a.PriceBandPct > 0 && len(closes) > 0 {
		clamp = calculator.BandClamp(closes[len(closes)-1], a.PriceBandPct)
	}

	prediction := model.Prediction{
		Value:        calculator.PredictNext(closes, 1, clamp),
		HorizonLabel: label,
	}

	trend := model.TrendFlat
	if slope, _, ok := calculator.FitTrend(closes); ok {
		if slope > 0 {
			trend = model.TrendUp
		} else if slope < 0 {
			trend = model.TrendDown
		}
	}
	return prediction, trend
}
