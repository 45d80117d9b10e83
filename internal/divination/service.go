package divination

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"HexOracle/internal/collector"
	"HexOracle/internal/config"
	"HexOracle/internal/hexagram"
	"HexOracle/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	// ErrEmptyQuestion rejects a chance-mode cast with a blank question,
	// before any randomness is consumed.
	ErrEmptyQuestion = errors.New("question must not be empty")

	// ErrUnknownSymbol rejects a market reading for a symbol outside the
	// configured set.
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// Service runs the two divination pipelines. It holds only immutable
// collaborators, so one instance serves all requests.
type Service struct {
	book     *hexagram.Book
	fetcher  collector.Fetcher
	coins    hexagram.CoinSource
	symbols  []config.SymbolSpec
	labels   map[string]string
	lookback int
	log      zerolog.Logger
}

// NewService wires the pipelines together. lookbackDays is the calendar
// width of the market-mode sample window.
func NewService(book *hexagram.Book, fetcher collector.Fetcher, coins hexagram.CoinSource,
	symbols []config.SymbolSpec, lookbackDays int, log zerolog.Logger) *Service {
	labels := make(map[string]string, len(symbols))
	for _, s := range symbols {
		labels[s.Code] = s.Label
	}
	return &Service{
		book:     book,
		fetcher:  fetcher,
		coins:    coins,
		symbols:  symbols,
		labels:   labels,
		lookback: lookbackDays,
		log:      log.With().Str("component", "divination").Logger(),
	}
}

// Symbols returns the selectable symbol set.
func (s *Service) Symbols() []config.SymbolSpec { return s.symbols }

// MarketReading fetches the lookback window ending at ref and derives the
// hexagrams from its last six sessions.
func (s *Service) MarketReading(ctx context.Context, symbol string, ref time.Time) (*model.DivinationResult, error) {
	label, ok := s.labels[symbol]
	if !ok {
		return nil, fmt.Errorf("%q: %w", symbol, ErrUnknownSymbol)
	}

	start := ref.AddDate(0, 0, -s.lookback)
	bars, err := s.fetcher.FetchDailyBars(ctx, symbol, start, ref)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}

	res, err := s.book.BuildFromSeries(bars)
	if err != nil {
		return nil, err
	}
	res.ID = uuid.NewString()
	res.Mode = model.ModeMarket
	res.Symbol = symbol
	res.SymbolLabel = label
	res.GeneratedAt = time.Now()

	s.log.Info().
		Str("symbol", symbol).
		Str("present", res.PresentKey.String()).
		Str("projected", res.ProjectedKey.String()).
		Bool("changed", res.Changed).
		Int("bars", len(bars)).
		Msg("market reading")
	return res, nil
}

// CastReading derives the hexagrams from simulated coin tosses for a
// free-text question. The question must be non-empty; validation happens
// before the first toss.
func (s *Service) CastReading(question string) (*model.DivinationResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	res, err := s.book.BuildFromChance(s.coins)
	if err != nil {
		return nil, err
	}
	res.ID = uuid.NewString()
	res.Mode = model.ModeChance
	res.Question = question
	res.GeneratedAt = time.Now()

	s.log.Info().
		Str("present", res.PresentKey.String()).
		Str("projected", res.ProjectedKey.String()).
		Bool("changed", res.Changed).
		Msg("chance reading")
	return res, nil
}
