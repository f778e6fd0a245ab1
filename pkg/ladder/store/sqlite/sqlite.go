package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/ladder/pkg/ladder/internalerr"
	"github.com/cognicore/ladder/pkg/ladder/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled, creating the schema
// if needed.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	source TEXT,
	model TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_sentences (
	run_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	text TEXT NOT NULL,
	level INTEGER NOT NULL,
	paragraph INTEGER NOT NULL,
	PRIMARY KEY(run_id, position),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts or replaces a run and its sentences
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO runs (id, source, model, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	source=excluded.source,
	model=excluded.model,
	created_at=excluded.created_at;
`
	if _, err := tx.ExecContext(ctx, stmt, r.ID, r.Source, r.Model, r.CreatedAt.UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM run_sentences WHERE run_id=?`, r.ID); err != nil {
		return err
	}
	if len(r.Sentences) > 0 {
		ins, err := tx.PrepareContext(ctx, `INSERT INTO run_sentences (run_id, position, text, level, paragraph) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer ins.Close()
		for _, sent := range r.Sentences {
			if _, err := ins.ExecContext(ctx, r.ID, sent.Position, sent.Text, sent.Level, sent.Paragraph); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// GetRun loads one run with its sentences in position order
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	var r store.Run
	var created string
	err := s.db.QueryRowContext(ctx, `SELECT id, source, model, created_at FROM runs WHERE id=?`, id).
		Scan(&r.ID, &r.Source, &r.Model, &created)
	if err == sql.ErrNoRows {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Run{}, err
	}
	r.CreatedAt, err = time.Parse(time.RFC3339, created)
	if err != nil {
		return store.Run{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT position, text, level, paragraph FROM run_sentences WHERE run_id=? ORDER BY position`, id)
	if err != nil {
		return store.Run{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var sent store.Sentence
		if err := rows.Scan(&sent.Position, &sent.Text, &sent.Level, &sent.Paragraph); err != nil {
			return store.Run{}, err
		}
		r.Sentences = append(r.Sentences, sent)
	}
	if err := rows.Err(); err != nil {
		return store.Run{}, err
	}

	return r, nil
}

// ListRuns returns run headers newest first, sentences not loaded
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	query := `SELECT id, source, model, created_at FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var r store.Run
		var created string
		if err := rows.Scan(&r.ID, &r.Source, &r.Model, &created); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
