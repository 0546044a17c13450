package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository archives completed candidate records in Postgres. It is a
// write-through sink behind the in-memory candidate store.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) execTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// EnsureSchema creates the archive tables when they do not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS candidate_records (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	email            TEXT NOT NULL,
	phone            TEXT NOT NULL,
	resume_file_name TEXT NOT NULL DEFAULT '',
	interview_date   TIMESTAMPTZ NOT NULL,
	status           TEXT NOT NULL,
	total_score      INT NOT NULL,
	summary          TEXT NOT NULL,
	total_time       INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS candidate_answers (
	record_id   TEXT NOT NULL REFERENCES candidate_records (id),
	position    INT NOT NULL,
	question_id INT NOT NULL,
	answer      TEXT NOT NULL,
	score       INT NOT NULL,
	time_spent  INT NOT NULL,
	PRIMARY KEY (record_id, position)
);
`
	if _, err := r.db.Exec(ctx, q); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
