package drafts

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo, used in tests and when
// no database is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
}

type memoryEntry struct {
	name      string
	raw       []byte
	updatedAt time.Time
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]memoryEntry)}
}

// Get returns the raw persisted bytes for a draft.
func (r *MemoryRepo) Get(ctx context.Context, draftID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.data[draftID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(entry.raw))
	copy(out, entry.raw)
	return out, nil
}

// Put overwrites the whole record for a draft.
func (r *MemoryRepo) Put(ctx context.Context, draftID, draftName string, raw []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := make([]byte, len(raw))
	copy(stored, raw)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[draftID] = memoryEntry{name: draftName, raw: stored, updatedAt: time.Now().UTC()}
	return nil
}

// Delete removes a draft. Deleting an unknown id is not an error.
func (r *MemoryRepo) Delete(ctx context.Context, draftID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, draftID)
	return nil
}

// List returns draft summaries, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	type row struct {
		summary Summary
		at      time.Time
	}
	rows := make([]row, 0, len(r.data))
	for id, entry := range r.data {
		rows = append(rows, row{
			summary: Summary{DraftID: id, DraftName: entry.name, UpdatedAt: entry.updatedAt.Format(time.RFC3339)},
			at:      entry.updatedAt,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].at.After(rows[j].at) })

	out := make([]Summary, len(rows))
	for i, rw := range rows {
		out[i] = rw.summary
	}
	return out, nil
}
