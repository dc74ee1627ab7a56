package drafts

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres. Whole-record overwrites only; no
// transaction semantics are needed.
type PGRepo struct {
	DB *sql.DB
}

// Get returns the raw persisted bytes for a draft.
func (r *PGRepo) Get(ctx context.Context, draftID string) ([]byte, error) {
	const query = `
SELECT record
FROM drafts
WHERE draft_id = $1`

	var raw []byte
	err := r.DB.QueryRowContext(ctx, query, draftID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Put overwrites the whole record for a draft.
func (r *PGRepo) Put(ctx context.Context, draftID, draftName string, raw []byte) error {
	const query = `
INSERT INTO drafts (draft_id, draft_name, record, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (draft_id)
DO UPDATE SET draft_name = EXCLUDED.draft_name,
              record = EXCLUDED.record,
              updated_at = EXCLUDED.updated_at`

	_, err := r.DB.ExecContext(ctx, query, draftID, draftName, raw, time.Now().UTC())
	return err
}

// Delete removes a draft.
func (r *PGRepo) Delete(ctx context.Context, draftID string) error {
	const query = `DELETE FROM drafts WHERE draft_id = $1`
	_, err := r.DB.ExecContext(ctx, query, draftID)
	return err
}

// List returns draft summaries, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Summary, error) {
	const query = `
SELECT draft_id, draft_name, updated_at
FROM drafts
ORDER BY updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var s Summary
		var updatedAt time.Time
		if err := rows.Scan(&s.DraftID, &s.DraftName, &updatedAt); err != nil {
			return nil, err
		}
		s.UpdatedAt = updatedAt.UTC().Format(time.RFC3339)
		out = append(out, s)
	}
	return out, rows.Err()
}
