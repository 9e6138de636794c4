package collector

import (
	"time"

	"StockPulse/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	Price float64
	Data  []model.Bar
	Err   error
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Bars(_, rng, interval string) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Data != nil {
		return m.Data, nil
	}
	count := 50
	if rng == "1d" {
		count = 30
	}
	return GenerateMockBars(m.Price, count, mockStep(interval)), nil
}

func mockStep(interval string) time.Duration {
	switch interval {
	case "1m":
		return time.Minute
	case "5m":
		return 5 * time.Minute
	default:
		return 24 * time.Hour
	}
}

// GenerateMockBars builds a gently trending synthetic series ending now.
func GenerateMockBars(basePrice float64, count int, step time.Duration) []model.Bar {
	bars := make([]model.Bar, count)
	start := time.Now().Add(-time.Duration(count) * step)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   start.Add(time.Duration(i) * step),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
