package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"StockPulse/internal/model"
)

// WriteCSV writes the joined bar/indicator/volume-split table, one row per
// bar. The signal is evaluated on the last bar only, so only the final row
// carries it. NaN indicator entries become empty cells.
func WriteCSV(w io.Writer, r *model.Report) error {
	cw := csv.NewWriter(w)

	header := []string{
		"time", "open", "high", "low", "close", "volume",
		"rsi", "volume_sma", "bb_lower", "bb_upper",
		"buy_volume", "sell_volume", "signal", "confidence",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	lastIdx := len(r.Series.Bars) - 1
	for i, b := range r.Series.Bars {
		snap := r.Indicators.At(i)
		row := []string{
			b.Time.Format("2006-01-02 15:04:05"),
			cell(b.Open), cell(b.High), cell(b.Low), cell(b.Close), cell(b.Volume),
			cell(snap.RSI), cell(snap.VolumeSMA),
			cell(snap.BollingerLower), cell(snap.BollingerUpper),
			cell(r.Splits[i].Buy), cell(r.Splits[i].Sell),
			"", "",
		}
		if i == lastIdx {
			row[len(row)-2] = string(r.Signal.Kind)
			row[len(row)-1] = string(r.Signal.Confidence)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the table to a file, replacing any previous export.
func SaveCSV(path string, r *model.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer f.Close()
	if err := WriteCSV(f, r); err != nil {
		return err
	}
	return f.Close()
}

func cell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
