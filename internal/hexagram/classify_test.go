package hexagram

import (
	"errors"
	"math"
	"testing"
	"time"

	"HexOracle/internal/model"
)

func bar(open, close float64) model.Bar {
	return model.Bar{Date: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), Open: open, Close: close}
}

func TestClassifyLine_Quadrants(t *testing.T) {
	const threshold = 0.02
	tests := []struct {
		name string
		bar  model.Bar
		want model.Line
	}{
		{"up and moving", bar(100, 105), model.OldYang},
		{"up and calm", bar(100, 101), model.YoungYang},
		{"down and moving", bar(100, 95), model.OldYin},
		{"down and calm", bar(100, 99.5), model.YoungYin},
		{"tie counts as up", bar(100, 100), model.YoungYang},
		{"exactly at threshold is not moving", bar(100, 102), model.YoungYang},
		{"just above threshold is moving", bar(100, 102.001), model.OldYang},
	}
	for _, tt := range tests {
		got, err := ClassifyLine(tt.bar, threshold)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClassifyLine_Pure(t *testing.T) {
	b := bar(100, 103)
	first, err := ClassifyLine(b, 0.02)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		got, err := ClassifyLine(b, 0.02)
		if err != nil || got != first {
			t.Fatalf("call %d: got %v (%v), want %v", i, got, err, first)
		}
	}
}

func TestClassifyLine_InvalidBars(t *testing.T) {
	bad := []model.Bar{
		bar(0, 100),
		bar(100, 0),
		bar(-5, 100),
		bar(100, -5),
		bar(math.NaN(), 100),
		bar(100, math.Inf(1)),
	}
	for _, b := range bad {
		if _, err := ClassifyLine(b, 0.02); !errors.Is(err, ErrInvalidBar) {
			t.Errorf("bar open=%v close=%v: expected ErrInvalidBar, got %v", b.Open, b.Close, err)
		}
	}
}

func TestComputeThreshold(t *testing.T) {
	// moves of 1% and 3% average to 2%; threshold is 1.5x that.
	bars := []model.Bar{bar(100, 101), bar(100, 97)}
	got, err := ComputeThreshold(bars)
	if err != nil {
		t.Fatal(err)
	}
	want := 0.03
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestComputeThreshold_Errors(t *testing.T) {
	if _, err := ComputeThreshold(nil); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("empty sample: expected ErrInsufficientData, got %v", err)
	}
	bars := []model.Bar{bar(100, 101), bar(0, 101)}
	if _, err := ComputeThreshold(bars); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("zero open: expected ErrInsufficientData, got %v", err)
	}
}
