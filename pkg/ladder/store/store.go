package store

import (
	"context"
	"time"
)

// Store persists analysis runs so profiles can be listed and re-rendered
// without re-paying per-sentence classification calls.
type Store interface {
	Close() error

	// SaveRun persists a run and its sentences. Saving an existing ID
	// replaces the previous contents.
	SaveRun(ctx context.Context, r Run) error

	// GetRun loads one run with its sentences in document order.
	// Returns internalerr.ErrNotFound when the ID is unknown.
	GetRun(ctx context.Context, id string) (Run, error)

	// ListRuns returns run headers newest first, without sentences.
	// limit <= 0 means no limit.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// Run is one persisted analysis of one document.
type Run struct {
	ID        string // ULID, sortable by creation time
	Source    string // caller-supplied label, usually the input file name
	Model     string // classifier model that produced the levels
	CreatedAt time.Time
	Sentences []Sentence
}

// Sentence is one classified sentence within a run.
type Sentence struct {
	Position  int // 1-based document order
	Text      string
	Level     int // abstraction level, 1..5
	Paragraph int // 1-based paragraph index
}
