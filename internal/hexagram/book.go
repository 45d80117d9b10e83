package hexagram

import (
	"fmt"

	"HexOracle/internal/model"
)

// Book is the knowledge base: a total mapping from every 6-digit binary key
// to its hexagram record. It is built once at startup and is read-only
// afterwards, so it is safe to share across requests without locking.
type Book struct {
	records map[model.Key]*model.HexagramRecord
}

// NewBook builds the knowledge base from the static table. It panics on a
// malformed or duplicate key, which can only mean the table itself was
// edited incorrectly.
func NewBook() *Book {
	records := make(map[model.Key]*model.HexagramRecord, len(entries))
	for i := range entries {
		k := model.MustKey(entries[i].key)
		if _, dup := records[k]; dup {
			panic(fmt.Sprintf("hexagram table: duplicate key %s", k))
		}
		records[k] = &entries[i].rec
	}
	if len(records) != 64 {
		panic(fmt.Sprintf("hexagram table: %d distinct keys, want 64", len(records)))
	}
	return &Book{records: records}
}

// Lookup resolves a key to its record. A miss indicates a data-integrity
// bug, not a user error; the table is checked to be total at construction.
func (b *Book) Lookup(k model.Key) (*model.HexagramRecord, error) {
	rec, ok := b.records[k]
	if !ok {
		return nil, fmt.Errorf("key %s: %w", k, ErrUnknownHexagram)
	}
	return rec, nil
}

// Len returns the number of records in the book.
func (b *Book) Len() int { return len(b.records) }
