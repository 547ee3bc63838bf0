// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index maintains an opt-in SQLite FTS5 index over the collection
// for ranked full-text queries. The index is derived data: it is rebuilt
// wholesale from the store's contents and never consulted by the store's
// own substring search.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paper-reader/pkg/types"
)

// Index wraps the SQLite database holding the full-text index.
type Index struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the index database at cfg.Path, creating the
// schema if it does not exist.
func Open(cfg types.IndexConfig) (*Index, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("index: database path not configured")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening index database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	idx := &Index{db: db, maxResults: maxResults}
	if err := idx.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating index schema: %w", err)
	}
	return idx, nil
}

// Close releases the database connection.
func (x *Index) Close() error {
	return x.db.Close()
}

func (x *Index) createSchema() error {
	_, err := x.db.Exec(
		`CREATE VIRTUAL TABLE IF NOT EXISTS papers_fts USING fts5(
			id UNINDEXED, title, problem, method, key_results, notes)`)
	if err != nil {
		return fmt.Errorf("creating FTS table: %w", err)
	}
	return nil
}

// Reindex replaces the index contents with the given papers.
func (x *Index) Reindex(ctx context.Context, papers []*types.Paper) error {
	tx, err := x.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting reindex transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM papers_fts`); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers_fts (id, title, problem, method, key_results, notes)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range papers {
		_, err := stmt.ExecContext(ctx, p.ID, p.Title,
			p.Insights.Problem, p.Insights.Method, p.Insights.KeyResults, p.Notes)
		if err != nil {
			return fmt.Errorf("indexing paper %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reindex: %w", err)
	}
	return nil
}

// Hit is one full-text query result with a contextual snippet.
type Hit struct {
	PaperID string `json:"paper_id" yaml:"paper_id"`
	Title   string `json:"title" yaml:"title"`
	Snippet string `json:"snippet" yaml:"snippet"`
}

// Query runs an FTS5 match over the index and returns hits ranked by
// relevance. A limit of zero uses the configured default.
func (x *Index) Query(ctx context.Context, query string, limit int) ([]Hit, error) {
	if query == "" {
		return nil, fmt.Errorf("index: empty query")
	}
	if limit <= 0 {
		limit = x.maxResults
	}

	rows, err := x.db.QueryContext(ctx,
		`SELECT id, title, snippet(papers_fts, -1, '[', ']', '...', 12)
		 FROM papers_fts WHERE papers_fts MATCH ?
		 ORDER BY rank LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.PaperID, &h.Title, &h.Snippet); err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading hits: %w", err)
	}
	return hits, nil
}
