package collector

import (
	"context"
	"errors"
	"time"

	"HexOracle/internal/model"
)

// ErrDataSource marks any failure of the market-data collaborator, so the
// action boundary can surface it as a data-source problem rather than a
// derivation bug.
var ErrDataSource = errors.New("data source failure")

// Fetcher retrieves daily bars for a symbol over a date range. Bars must be
// returned date-ascending with flat open/close fields; any richer schema is
// normalized away at this boundary.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, symbol string, start, end time.Time) ([]model.Bar, error)
	Name() string
}
