package analyzer

import (
	"errors"
	"math"
	"testing"
	"time"

	"StockPulse/internal/collector"
	"StockPulse/internal/model"
)

func trendingBars(count int) []model.Bar {
	bars := make([]model.Bar, count)
	start := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		c := 100 + float64(i)*0.5
		bars[i] = model.Bar{
			Time:   start.Add(time.Duration(i) * time.Minute),
			Open:   c - 0.2,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func TestAnalyze_FullReport(t *testing.T) {
	provider := &collector.MockProvider{Data: trendingBars(60)}
	a := New(collector.NewCollector(provider, nil), model.PredictNextBar)

	report, err := a.Analyze("TEST.BO", model.Horizon1D)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Series.Bars) != 60 {
		t.Fatalf("expected 60 bars, got %d", len(report.Series.Bars))
	}
	if report.Trend != model.TrendUp {
		t.Errorf("expected an UP trend on a rising series, got %s", report.Trend)
	}
	lastClose := report.Series.Last().Close
	if report.Prediction.Value <= lastClose {
		t.Errorf("rising series should predict above the last close %v, got %v",
			lastClose, report.Prediction.Value)
	}
	if report.Prediction.HorizonLabel != "next bar" {
		t.Errorf("expected next-bar label, got %q", report.Prediction.HorizonLabel)
	}

	// Levels from the last bar of the series.
	last := report.Series.Last()
	wantPivot := (last.High + last.Low + last.Close) / 3
	if math.Abs(report.Levels.Pivot-wantPivot) > 1e-9 {
		t.Errorf("expected pivot %v, got %v", wantPivot, report.Levels.Pivot)
	}

	if len(report.Splits) != 60 {
		t.Fatalf("expected a split per bar, got %d", len(report.Splits))
	}
	var volume float64
	for _, b := range report.Series.Bars {
		volume += b.Volume
	}
	got := report.PeriodSplit.Buy + report.PeriodSplit.Sell
	if math.Abs(got-volume)/volume > 1e-5 {
		t.Errorf("period split %v does not conserve total volume %v", got, volume)
	}

	if report.Signal.Kind == "" || report.Signal.Confidence == "" {
		t.Errorf("incomplete signal: %+v", report.Signal)
	}
}

func TestAnalyze_FetchFailureAborts(t *testing.T) {
	provider := &collector.MockProvider{Err: errors.New("rate limited")}
	a := New(collector.NewCollector(provider, nil), model.PredictNextBar)

	report, err := a.Analyze("TEST.BO", model.Horizon1D)
	if report != nil {
		t.Fatal("no report should be produced without price data")
	}
	var fe *collector.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected a *FetchError, got %v", err)
	}
	if fe.Kind != collector.FetchUpstream {
		t.Errorf("expected FetchUpstream, got %s", fe.Kind)
	}
}

func TestAnalyze_ShortSeriesDegrades(t *testing.T) {
	// 6 bars: Bollinger and volume SMA undefined, signal must still come
	// back NEUTRAL with the volume split intact.
	provider := &collector.MockProvider{Data: trendingBars(6)}
	a := New(collector.NewCollector(provider, nil), model.PredictNextBar)

	report, err := a.Analyze("TEST.BO", model.Horizon1D)
	if err != nil {
		t.Fatalf("short series should degrade, not fail: %v", err)
	}
	if report.Signal.Kind != model.SignalNeutral {
		t.Errorf("undefined bands should classify NEUTRAL, got %s", report.Signal.Kind)
	}
	if report.Signal.Confidence != model.ConfidenceLow {
		t.Errorf("undefined volume SMA should report LOW confidence, got %s", report.Signal.Confidence)
	}
	if len(report.Splits) != 6 {
		t.Errorf("volume split should still run, got %d splits", len(report.Splits))
	}
}

func TestAnalyze_PriceBandClamp(t *testing.T) {
	provider := &collector.MockProvider{Data: trendingBars(30)}
	a := New(collector.NewCollector(provider, nil), model.PredictNextBar)
	a.PriceBandPct = 0.05

	report, err := a.Analyze("TEST.BO", model.Horizon1D)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := report.Series.Last().Close
	if report.Prediction.Value < last*0.95-1e-9 || report.Prediction.Value > last*1.05+1e-9 {
		t.Errorf("prediction %v outside the 5%% band around %v", report.Prediction.Value, last)
	}
}

func TestAnalyze_NextDayModeUsesDailySeries(t *testing.T) {
	provider := &collector.MockProvider{Price: 200}
	a := New(collector.NewCollector(provider, nil), model.PredictNextDay)

	report, err := a.Analyze("TEST.BO", model.Horizon1D)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Prediction.HorizonLabel != "next day" {
		t.Errorf("expected next-day label, got %q", report.Prediction.HorizonLabel)
	}
}
