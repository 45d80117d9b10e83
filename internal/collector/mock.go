package collector

import (
	"context"
	"time"

	"HexOracle/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars  []model.Bar
	Err   error
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, _ string, start, end time.Time) ([]model.Bar, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateBars(100, start, end), nil
}

// GenerateBars produces one synthetic bar per weekday in [start, end] with
// a mild drift, for development without a data source.
func GenerateBars(basePrice float64, start, end time.Time) []model.Bar {
	var bars []model.Bar
	i := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		p := basePrice * (1 + float64(i%7-3)*0.002)
		bars = append(bars, model.Bar{Date: d, Open: p * 0.999, Close: p})
		i++
	}
	return bars
}
