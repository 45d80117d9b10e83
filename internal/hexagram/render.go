package hexagram

import "HexOracle/internal/model"

// Glyph describes one drawn line of a hexagram figure: a solid bar for a
// yang digit, a broken two-segment bar for a yin digit.
type Glyph struct {
	Position int  `json:"position"` // storage position, 0 = bottom line
	Solid    bool `json:"solid"`
}

// Glyphs returns the key's six glyphs in display order, top line first,
// the reverse of the key's bottom-to-top storage order.
func Glyphs(k model.Key) []Glyph {
	glyphs := make([]Glyph, 0, len(k))
	for pos := len(k) - 1; pos >= 0; pos-- {
		glyphs = append(glyphs, Glyph{Position: pos, Solid: k[pos] == 1})
	}
	return glyphs
}

// Card is the renderable payload for one hexagram figure. Muted is set on a
// projection card when no line changed, so the UI can de-emphasize it.
type Card struct {
	Title          string               `json:"title"`
	Name           string               `json:"name"`
	Judgment       string               `json:"judgment"`
	Interpretation model.Interpretation `json:"interpretation"`
	Outlook        model.Outlook        `json:"outlook"`
	Key            model.Key            `json:"key"`
	Glyphs         []Glyph              `json:"glyphs"`
	Muted          bool                 `json:"muted"`
}

// NewCard assembles the display payload for one figure of a divination.
func NewCard(title string, rec *model.HexagramRecord, key model.Key, changed bool) Card {
	return Card{
		Title:          title,
		Name:           rec.Name,
		Judgment:       rec.Judgment,
		Interpretation: rec.Interpretation,
		Outlook:        rec.Outlook,
		Key:            key,
		Glyphs:         Glyphs(key),
		Muted:          !changed,
	}
}
