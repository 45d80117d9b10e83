package notifier

import (
	"strings"
	"testing"
	"time"

	"HexOracle/internal/hexagram"
	"HexOracle/internal/model"
)

func TestFormatReading_Market(t *testing.T) {
	book := hexagram.NewBook()
	key := model.MustKey("1,1,1,1,1,1")
	rec, err := book.Lookup(key)
	if err != nil {
		t.Fatal(err)
	}
	res := &model.DivinationResult{
		Mode:         model.ModeMarket,
		Symbol:       "BZ=F",
		SymbolLabel:  "Brent Crude",
		PresentKey:   key,
		ProjectedKey: key,
		Present:      rec,
		Projected:    rec,
		Changed:      false,
		Lines: []model.LineDetail{
			{Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), Close: 66.8, ChangePct: 0.004, Line: model.YoungYang, Position: 0},
		},
		GeneratedAt: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
	}

	out := FormatReading(res)
	for _, want := range []string{"Brent Crude", "乾", "无变动", "初爻", "▅▅▅▅▅▅▅"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "变爻启示") {
		t.Error("unchanged reading must not mention changing lines")
	}
}

func TestFormatReading_ChanceChanged(t *testing.T) {
	book := hexagram.NewBook()
	present := model.MustKey("1,1,0,0,0,1")
	projected := model.MustKey("0,0,1,1,0,1")
	presentRec, _ := book.Lookup(present)
	projectedRec, _ := book.Lookup(projected)

	res := &model.DivinationResult{
		Mode:         model.ModeChance,
		Question:     "出行吉否?",
		PresentKey:   present,
		ProjectedKey: projected,
		Present:      presentRec,
		Projected:    projectedRec,
		Changed:      true,
		GeneratedAt:  time.Now(),
	}

	out := FormatReading(res)
	for _, want := range []string{"出行吉否?", presentRec.Name, projectedRec.Name, "变爻启示", "▅▅▅ ▅▅▅"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
