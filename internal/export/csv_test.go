package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"StockPulse/internal/calculator"
	"StockPulse/internal/model"
)

func testReport(t *testing.T, barCount int) *model.Report {
	t.Helper()
	bars := make([]model.Bar, barCount)
	start := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	for i := range bars {
		c := 100 + float64(i)
		bars[i] = model.Bar{
			Time: start.Add(time.Duration(i) * time.Minute),
			Open: c, High: c + 2, Low: c - 2, Close: c, Volume: 1000,
		}
	}
	series := model.TimeSeries{Ticker: "TEST.BO", Horizon: model.Horizon1D, Bars: bars}
	splits := calculator.SplitSeries(bars)
	return &model.Report{
		Ticker:     "TEST.BO",
		Series:     series,
		Indicators: calculator.Indicators(series, calculator.DefaultIndicatorConfig()),
		Splits:     splits,
		Signal:     model.Signal{Kind: model.SignalNeutral, Confidence: model.ConfidenceLow},
	}
}

func TestWriteCSV(t *testing.T) {
	report := testReport(t, 25)

	var buf strings.Builder
	if err := WriteCSV(&buf, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not parse: %v", err)
	}
	if len(rows) != 26 {
		t.Fatalf("expected header + 25 rows, got %d", len(rows))
	}

	// Warm-up RSI cells are empty, defined ones are not.
	rsiCol := 6
	if rows[1][rsiCol] != "" {
		t.Errorf("expected empty RSI cell in warm-up, got %q", rows[1][rsiCol])
	}
	if rows[25][rsiCol] == "" {
		t.Error("expected a defined RSI cell on the last row")
	}

	// Signal only on the last row.
	sigCol := len(rows[0]) - 2
	if rows[24][sigCol] != "" {
		t.Errorf("signal leaked into a non-final row: %q", rows[24][sigCol])
	}
	if rows[25][sigCol] != "NEUTRAL" {
		t.Errorf("expected NEUTRAL on the last row, got %q", rows[25][sigCol])
	}
}
