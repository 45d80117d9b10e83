package hexagram

import (
	"fmt"
	"math"

	"HexOracle/internal/model"
)

// thresholdFactor scales the sample's mean absolute move into the
// old-line threshold.
const thresholdFactor = 1.5

// ClassifyLine maps one daily bar to a line value against the volatility
// threshold. An up bar (close >= open, ties count as up) is yang; a bar
// whose absolute move strictly exceeds the threshold is an old line.
func ClassifyLine(bar model.Bar, threshold float64) (model.Line, error) {
	if err := checkBar(bar); err != nil {
		return 0, err
	}

	changePct := math.Abs(bar.Close-bar.Open) / bar.Open
	isUp := bar.Close >= bar.Open
	isMoving := changePct > threshold

	switch {
	case isUp && isMoving:
		return model.OldYang, nil
	case isUp:
		return model.YoungYang, nil
	case isMoving:
		return model.OldYin, nil
	default:
		return model.YoungYin, nil
	}
}

// ComputeThreshold derives the volatility threshold from the entire
// retrieved sample: 1.5x the mean of |close-open|/open. The sample is
// expected to be wider than the 6-bar hexagram window so the mean has a
// stable baseline.
func ComputeThreshold(bars []model.Bar) (float64, error) {
	if len(bars) == 0 {
		return 0, fmt.Errorf("empty sample: %w", ErrInsufficientData)
	}
	sum := 0.0
	for i, b := range bars {
		if b.Open == 0 {
			return 0, fmt.Errorf("bar %d has zero open: %w", i, ErrInsufficientData)
		}
		sum += math.Abs(b.Close-b.Open) / b.Open
	}
	return sum / float64(len(bars)) * thresholdFactor, nil
}

func checkBar(bar model.Bar) error {
	for _, p := range [2]float64{bar.Open, bar.Close} {
		if p <= 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("bar %s open=%v close=%v: %w",
				bar.Date.Format("2006-01-02"), bar.Open, bar.Close, ErrInvalidBar)
		}
	}
	return nil
}
