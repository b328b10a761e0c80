// Package history keeps a DuckDB log of generated tests so an instructor can
// see which versions exist and when they were produced.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
)

//go:embed schema.sql
var schemaDDL string

// Entry describes one completed generation pass.
type Entry struct {
	TestNumber    int
	QuestionCount int
	SetCount      int
}

// Row is one recorded generation.
type Row struct {
	GenerationID  string
	TestNumber    int
	QuestionCount int
	SetCount      int
	CreatedAt     time.Time
}

// Open opens (creating if needed) the history database and applies the
// schema.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return db, nil
}

// Record inserts one generation row.
func Record(ctx context.Context, db *sql.DB, entry Entry) error {
	if db == nil {
		return fmt.Errorf("history: db is nil")
	}
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO generations (generation_id, test_number, question_count, set_count, created_at)
		 VALUES (?, ?, ?, ?, now())`,
		uuid.NewString(),
		entry.TestNumber,
		entry.QuestionCount,
		entry.SetCount,
	); err != nil {
		return fmt.Errorf("record generation: %w", err)
	}
	return nil
}

// List returns the most recent generations, newest first.
func List(ctx context.Context, db *sql.DB, limit int) ([]Row, error) {
	if db == nil {
		return nil, fmt.Errorf("history: db is nil")
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.QueryContext(
		ctx,
		`SELECT generation_id, test_number, question_count, set_count, created_at
		 FROM generations
		 ORDER BY created_at DESC, test_number DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.GenerationID, &row.TestNumber, &row.QuestionCount, &row.SetCount, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan generation row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generations: %w", err)
	}
	return out, nil
}
