// Package ident provides the unique-ID sources used to stamp reqt records.
package ident

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Scheme names accepted by New.
const (
	SchemeUUID7 = "uuid7"
	SchemeUUID4 = "uuid4"
)

// ErrExhausted is returned by FixedGenerator once every ID has been handed out.
var ErrExhausted = errors.New("ident: all fixed IDs consumed")

// Generator returns an ID unique across a project's record corpus.
type Generator interface {
	Generate() (string, error)
}

// New returns the generator for the given scheme.
func New(scheme string) (Generator, error) {
	switch scheme {
	case "", SchemeUUID7:
		return UUIDv7Generator{}, nil
	case SchemeUUID4:
		return UUIDv4Generator{}, nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q; available: %s, %s", scheme, SchemeUUID7, SchemeUUID4)
	}
}

// UUIDv7Generator generates time-sortable UUIDv7 identifiers.
//
// Records created later sort after earlier ones, which keeps SOT files
// readable when entries are appended over time.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
func (UUIDv7Generator) Generate() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating uuid v7: %w", err)
	}
	return id.String(), nil
}

// UUIDv4Generator generates random UUIDv4 identifiers.
type UUIDv4Generator struct{}

// Generate creates a new random UUID.
func (UUIDv4Generator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generating uuid v4: %w", err)
	}
	return id.String(), nil
}

// FixedGenerator returns predetermined IDs in order.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined ID, or ErrExhausted.
func (g *FixedGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		return "", ErrExhausted
	}
	id := g.ids[g.idx]
	g.idx++
	return id, nil
}

// Calls reports how many IDs have been handed out.
func (g *FixedGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.idx
}
