package store

import (
	"context"

	"github.com/leonardcser/offstore/internal/record"
)

// SaveDraft persists in-progress form data under the draft namespace so
// it survives an app restart. Drafts do not expire; they live until
// deleted or swept by ClearUserData.
func (s *Store) SaveDraft(ctx context.Context, formID string, data any) error {
	return s.write(ctx, record.KindDraft, formID, data, 0)
}

// GetDraft loads the draft for formID into out, reporting ok=false when
// none is stored or the stored record is unusable.
func (s *Store) GetDraft(ctx context.Context, formID string, out any) bool {
	return s.read(ctx, record.KindDraft, formID, out, false)
}

// DeleteDraft removes the draft for formID. Absent is a no-op.
func (s *Store) DeleteDraft(ctx context.Context, formID string) error {
	return s.kv.Delete(ctx, record.KindDraft.Key(formID))
}
