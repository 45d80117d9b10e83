package hexagram

import (
	"testing"

	"HexOracle/internal/model"
)

func TestGlyphs_TopFirst(t *testing.T) {
	// 复: single yang at the bottom
	k := model.MustKey("1,0,0,0,0,0")
	glyphs := Glyphs(k)
	if len(glyphs) != 6 {
		t.Fatalf("expected 6 glyphs, got %d", len(glyphs))
	}
	if glyphs[0].Position != 5 || glyphs[0].Solid {
		t.Errorf("first glyph must be the broken top line, got %+v", glyphs[0])
	}
	if glyphs[5].Position != 0 || !glyphs[5].Solid {
		t.Errorf("last glyph must be the solid bottom line, got %+v", glyphs[5])
	}
}

func TestNewCard(t *testing.T) {
	book := NewBook()
	k := model.MustKey("1,1,1,1,1,1")
	rec, err := book.Lookup(k)
	if err != nil {
		t.Fatal(err)
	}

	card := NewCard("本卦", rec, k, false)
	if !card.Muted {
		t.Error("card must be muted when no line changed")
	}
	if card.Name != rec.Name || card.Judgment != rec.Judgment {
		t.Error("card must carry the record's name and judgment")
	}
	if len(card.Glyphs) != 6 {
		t.Fatalf("expected 6 glyphs, got %d", len(card.Glyphs))
	}
	for _, g := range card.Glyphs {
		if !g.Solid {
			t.Errorf("乾 glyph at position %d must be solid", g.Position)
		}
	}

	if NewCard("之卦", rec, k, true).Muted {
		t.Error("card must not be muted when a line changed")
	}
}
