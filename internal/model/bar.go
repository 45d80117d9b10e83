package model

import "time"

// Bar represents one trading day of a symbol, reduced to the fields the
// divination pipeline consumes. Collaborators may return richer schemas
// (high/low/volume); those are dropped at the collector boundary.
type Bar struct {
	Date  time.Time `json:"date"`
	Open  float64   `json:"open"`
	Close float64   `json:"close"`
}
