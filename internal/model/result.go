package model

import "time"

// Mode distinguishes the two divination pipelines.
type Mode string

const (
	ModeMarket Mode = "market"
	ModeChance Mode = "chance"
)

// LineDetail records how one window bar was classified, for display.
// Position 0 is the newest bar and the bottom line of the figure.
type LineDetail struct {
	Date      time.Time `json:"date"`
	Close     float64   `json:"close"`
	ChangePct float64   `json:"change_pct"` // signed (close-open)/open
	Line      Line      `json:"line"`
	Position  int       `json:"position"`
}

// DivinationResult is the outcome of one user action. It is created fresh
// per request, never mutated after construction, and never persisted.
type DivinationResult struct {
	ID          string `json:"id"`
	Mode        Mode   `json:"mode"`
	Symbol      string `json:"symbol,omitempty"`
	SymbolLabel string `json:"symbol_label,omitempty"`
	Question    string `json:"question,omitempty"`

	PresentKey   Key             `json:"present_key"`
	ProjectedKey Key             `json:"projected_key"`
	Present      *HexagramRecord `json:"present"`
	Projected    *HexagramRecord `json:"projected"`
	Changed      bool            `json:"changed"` // false when no old line occurred

	Lines     []LineDetail `json:"lines,omitempty"` // market mode only
	Threshold float64      `json:"threshold,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}
