package hexagram

import (
	"fmt"
	"math/rand"
	"time"

	"HexOracle/internal/model"
)

// windowSize is the number of bars encoded in a hexagram, one per line.
const windowSize = 6

// tossesPerLine is the number of coin draws summed into one chance line.
const tossesPerLine = 3

// BuildFromSeries derives present and projected hexagrams from a series of
// daily bars ordered oldest to newest. The volatility threshold covers the
// whole sample; the figure itself encodes only the last 6 bars, reordered
// newest-first so that the most recent session anchors the bottom line
// (position 0).
func (b *Book) BuildFromSeries(bars []model.Bar) (*model.DivinationResult, error) {
	if len(bars) < windowSize {
		return nil, fmt.Errorf("need at least %d bars, got %d: %w",
			windowSize, len(bars), ErrInsufficientData)
	}

	threshold, err := ComputeThreshold(bars)
	if err != nil {
		return nil, err
	}

	var present, projected model.Key
	details := make([]model.LineDetail, 0, windowSize)

	tail := bars[len(bars)-windowSize:]
	for pos := 0; pos < windowSize; pos++ {
		bar := tail[windowSize-1-pos] // position 0 = newest bar

		line, err := ClassifyLine(bar, threshold)
		if err != nil {
			return nil, err
		}
		present[pos] = line.PresentDigit()
		projected[pos] = line.ProjectedDigit()

		details = append(details, model.LineDetail{
			Date:      bar.Date,
			Close:     bar.Close,
			ChangePct: (bar.Close - bar.Open) / bar.Open,
			Line:      line,
			Position:  pos,
		})
	}

	return b.assemble(present, projected, details, threshold)
}

// CoinSource yields one coin draw worth 2 or 3 points. Three draws sum to a
// line value in 6..9, so old lines (6, 9) come up with probability 1/8 each
// and young lines (7, 8) with 3/8 each.
type CoinSource interface {
	Toss() int
}

// BuildFromChance derives present and projected hexagrams from 18 coin
// draws, three per line, bottom line first. It consumes no market data and
// is deterministic for a deterministic source.
func (b *Book) BuildFromChance(src CoinSource) (*model.DivinationResult, error) {
	var present, projected model.Key
	for pos := 0; pos < windowSize; pos++ {
		sum := 0
		for i := 0; i < tossesPerLine; i++ {
			sum += src.Toss()
		}
		line := model.Line(sum)
		if !line.Valid() {
			return nil, fmt.Errorf("coin toss sum %d at position %d out of range", sum, pos)
		}
		present[pos] = line.PresentDigit()
		projected[pos] = line.ProjectedDigit()
	}
	return b.assemble(present, projected, nil, 0)
}

func (b *Book) assemble(present, projected model.Key, details []model.LineDetail, threshold float64) (*model.DivinationResult, error) {
	presentRec, err := b.Lookup(present)
	if err != nil {
		return nil, err
	}
	projectedRec, err := b.Lookup(projected)
	if err != nil {
		return nil, err
	}
	return &model.DivinationResult{
		PresentKey:   present,
		ProjectedKey: projected,
		Present:      presentRec,
		Projected:    projectedRec,
		Changed:      present != projected,
		Lines:        details,
		Threshold:    threshold,
	}, nil
}

type randCoins struct {
	r *rand.Rand
}

func (c randCoins) Toss() int {
	if c.r.Intn(2) == 0 {
		return 2
	}
	return 3
}

// NewSeededCoins returns a deterministic coin source for a given seed.
func NewSeededCoins(seed int64) CoinSource {
	return randCoins{r: rand.New(rand.NewSource(seed))}
}

// NewTimeCoins returns a time-seeded coin source for production casts.
func NewTimeCoins() CoinSource {
	return NewSeededCoins(time.Now().UnixNano())
}
