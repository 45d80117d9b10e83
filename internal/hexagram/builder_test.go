package hexagram

import (
	"errors"
	"testing"
	"time"

	"HexOracle/internal/model"
)

// series builds daily bars oldest to newest from (open, close) pairs.
func series(pairs ...[2]float64) []model.Bar {
	bars := make([]model.Bar, len(pairs))
	day := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	for i, p := range pairs {
		bars[i] = model.Bar{Date: day.AddDate(0, 0, i), Open: p[0], Close: p[1]}
	}
	return bars
}

func TestBuildFromSeries_TooFewBars(t *testing.T) {
	book := NewBook()
	for n := 0; n < 6; n++ {
		bars := series()[:0]
		for i := 0; i < n; i++ {
			bars = append(bars, model.Bar{Open: 100, Close: 101})
		}
		if _, err := book.BuildFromSeries(bars); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("%d bars: expected ErrInsufficientData, got %v", n, err)
		}
	}
}

// Six flat bars: every tie is an up bar and zero change never exceeds the
// threshold, so all lines are young yang and the figure is 乾 with no
// transformation.
func TestBuildFromSeries_AllTies(t *testing.T) {
	book := NewBook()
	bars := series(
		[2]float64{100, 100}, [2]float64{100, 100}, [2]float64{100, 100},
		[2]float64{100, 100}, [2]float64{100, 100}, [2]float64{100, 100},
	)
	res, err := book.BuildFromSeries(bars)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.PresentKey.String(); got != "1,1,1,1,1,1" {
		t.Errorf("present key: got %s", got)
	}
	if res.Present.Name != "乾" {
		t.Errorf("present name: got %s, want 乾", res.Present.Name)
	}
	if res.Changed {
		t.Error("no line changed; result must not be marked changed")
	}
	if res.PresentKey != res.ProjectedKey {
		t.Errorf("projected key %s differs from present %s", res.ProjectedKey, res.PresentKey)
	}
	for _, d := range res.Lines {
		if d.Line != model.YoungYang {
			t.Errorf("position %d: got %v, want young yang", d.Position, d.Line)
		}
	}
}

// The newest bar anchors the bottom of the figure: a large down move on the
// final session becomes an old yin at position 0, whose projected digit
// flips to yang.
func TestBuildFromSeries_NewestBarIsBottomLine(t *testing.T) {
	book := NewBook()
	bars := series(
		[2]float64{100, 101}, [2]float64{100, 99.5}, [2]float64{100, 100.8},
		[2]float64{100, 99.2}, [2]float64{100, 100.5}, [2]float64{100, 88},
	)
	res, err := book.BuildFromSeries(bars)
	if err != nil {
		t.Fatal(err)
	}
	if res.Lines[0].Line != model.OldYin {
		t.Fatalf("position 0: got %v, want old yin", res.Lines[0].Line)
	}
	if res.PresentKey[0] != 0 {
		t.Errorf("present digit at position 0: got %d, want 0", res.PresentKey[0])
	}
	if res.ProjectedKey[0] != 1 {
		t.Errorf("projected digit at position 0: got %d, want 1", res.ProjectedKey[0])
	}
	if !res.Changed {
		t.Error("an old line occurred; result must be marked changed")
	}
	// detail rows run newest-first
	if !res.Lines[0].Date.After(res.Lines[5].Date) {
		t.Errorf("line detail not newest-first: %v vs %v", res.Lines[0].Date, res.Lines[5].Date)
	}
}

// Present and projected keys coincide exactly when no old line occurs.
func TestBuildFromSeries_ChangedIffOldLine(t *testing.T) {
	book := NewBook()
	cases := []struct {
		bars    []model.Bar
		changed bool
	}{
		{series(
			[2]float64{100, 101}, [2]float64{100, 99}, [2]float64{100, 101},
			[2]float64{100, 99}, [2]float64{100, 101}, [2]float64{100, 99},
		), false},
		{series(
			[2]float64{100, 101}, [2]float64{100, 99}, [2]float64{100, 101},
			[2]float64{100, 99}, [2]float64{100, 101}, [2]float64{100, 120},
		), true},
	}
	for i, tt := range cases {
		res, err := book.BuildFromSeries(tt.bars)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		hasOld := false
		for _, d := range res.Lines {
			if d.Line.Changing() {
				hasOld = true
			}
		}
		if hasOld != tt.changed {
			t.Fatalf("case %d: old-line presence %v does not match expectation %v", i, hasOld, tt.changed)
		}
		if res.Changed != (res.PresentKey != res.ProjectedKey) {
			t.Errorf("case %d: Changed flag inconsistent with keys", i)
		}
		if res.Changed != tt.changed {
			t.Errorf("case %d: got changed=%v, want %v", i, res.Changed, tt.changed)
		}
	}
}

// fixedCoins replays a scripted draw sequence.
type fixedCoins struct {
	draws []int
	next  int
}

func (c *fixedCoins) Toss() int {
	v := c.draws[c.next]
	c.next++
	return v
}

func TestBuildFromChance_Deterministic(t *testing.T) {
	book := NewBook()
	draws := []int{3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 3, 2, 3, 2, 3, 2}

	// sums per line: 9, 9, 6, 6, 8, 7
	wantPresent := "1,1,0,0,0,1"
	wantProjected := "0,0,1,1,0,1"

	for run := 0; run < 3; run++ {
		res, err := book.BuildFromChance(&fixedCoins{draws: draws})
		if err != nil {
			t.Fatal(err)
		}
		if got := res.PresentKey.String(); got != wantPresent {
			t.Errorf("run %d: present key %s, want %s", run, got, wantPresent)
		}
		if got := res.ProjectedKey.String(); got != wantProjected {
			t.Errorf("run %d: projected key %s, want %s", run, got, wantProjected)
		}
		if !res.Changed {
			t.Error("old lines occurred; result must be marked changed")
		}
	}
}

func TestBuildFromChance_SeededSource(t *testing.T) {
	book := NewBook()
	a, err := book.BuildFromChance(NewSeededCoins(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := book.BuildFromChance(NewSeededCoins(42))
	if err != nil {
		t.Fatal(err)
	}
	if a.PresentKey != b.PresentKey || a.ProjectedKey != b.ProjectedKey {
		t.Errorf("same seed produced different keys: %s/%s vs %s/%s",
			a.PresentKey, a.ProjectedKey, b.PresentKey, b.ProjectedKey)
	}
}

func TestBuildFromChance_BadDraw(t *testing.T) {
	book := NewBook()
	draws := []int{3, 3, 3, 3, 3, 3, 5, 5, 5, 2, 2, 2, 3, 2, 3, 2, 3, 2}
	if _, err := book.BuildFromChance(&fixedCoins{draws: draws}); err == nil {
		t.Fatal("expected out-of-range toss sum to fail")
	}
}
