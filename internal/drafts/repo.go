package drafts

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a draft id is unknown.
var ErrNotFound = errors.New("draft not found")

// Repo defines persistence for draft records. The record payload is stored
// as opaque bytes: only the schema migrator interprets persisted content,
// so the repository never needs a schema-version bump.
type Repo interface {
	// Get returns the raw persisted bytes for a draft.
	Get(ctx context.Context, draftID string) ([]byte, error)
	// Put overwrites the whole record for a draft.
	Put(ctx context.Context, draftID, draftName string, raw []byte) error
	// Delete removes a draft.
	Delete(ctx context.Context, draftID string) error
	// List returns draft summaries, newest first.
	List(ctx context.Context) ([]Summary, error)
}

// Summary is the lightweight listing shape for the draft picker.
type Summary struct {
	DraftID   string `json:"draftId"`
	DraftName string `json:"draftName"`
	UpdatedAt string `json:"updatedAt"`
}
