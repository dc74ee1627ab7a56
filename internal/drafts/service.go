package drafts

import (
	"context"
	"errors"
	"time"

	"resume-studio/internal/editor"
	"resume-studio/internal/schema"
	"resume-studio/internal/shared/metrics"
	"resume-studio/internal/shared/telemetry"
)

// Service loads drafts through the schema migrator and writes whole-record
// overwrites. It is the only reader of persisted bytes.
type Service struct {
	Repo Repo
}

// Load fetches raw bytes and migrates them to the current shape. Shape
// drift is logged, never fatal: a persisted-but-odd draft must not block
// the user from re-entering the editor.
func (s *Service) Load(ctx context.Context, draftID string) (schema.Migrated, error) {
	raw, err := s.Repo.Get(ctx, draftID)
	if errors.Is(err, ErrNotFound) {
		return schema.Migrated{}, editor.ErrDraftNotFound
	}
	if err != nil {
		return schema.Migrated{}, err
	}

	if findings := schema.ValidateRaw(raw); len(findings) > 0 {
		telemetry.Info("draft.schema_drift", map[string]any{
			"draft_id": draftID,
			"findings": findings,
		})
	}

	return schema.Migrate(raw), nil
}

// Save overwrites the persisted record and returns the save timestamp.
func (s *Service) Save(ctx context.Context, record schema.Record) (time.Time, error) {
	raw, err := record.Encode()
	if err != nil {
		return time.Time{}, err
	}
	if err := s.Repo.Put(ctx, record.DraftID, record.DraftName, raw); err != nil {
		return time.Time{}, err
	}
	metrics.IncDraftSaved()
	return time.Now().UTC(), nil
}

// Delete removes a persisted draft.
func (s *Service) Delete(ctx context.Context, draftID string) error {
	return s.Repo.Delete(ctx, draftID)
}

// List returns draft summaries for the picker.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.Repo.List(ctx)
}
