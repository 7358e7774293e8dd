package store

import (
	"context"

	"github.com/leonardcser/offstore/internal/record"
)

// ClearUserData purges the session and draft namespaces, typically on
// logout. Settings are deliberately left in place. The sweep is a
// sequence of independent single-key deletes: a failure partway is
// logged and reported but does not abort the rest, and the returned
// error joins whatever could not be cleared. Calling it again on an
// already-clean store is a no-op.
func (s *Store) ClearUserData(ctx context.Context) error {
	return s.purge(ctx, record.KindSession, record.KindDraft)
}
