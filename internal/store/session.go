package store

import (
	"context"

	"github.com/leonardcser/offstore/internal/record"
)

// currentSessionID is the identifier of the single active session
// record. The facade instance holds the session context; there is no
// process-wide mutable current-user state.
const currentSessionID = "current"

// Session is the persisted authentication state for the signed-in user.
type Session struct {
	UserID       string `json:"user_id"`
	AuthToken    string `json:"auth_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	// ExpiresAt is the token expiry as Unix seconds; zero means the
	// token carries no expiry.
	ExpiresAt int64 `json:"expires_at,omitempty"`
}

// SaveSession persists sess, replacing any prior session. A backing
// store failure propagates so the caller can retry or warn the user.
func (s *Store) SaveSession(ctx context.Context, sess Session) error {
	return s.write(ctx, record.KindSession, currentSessionID, sess, 0)
}

// GetSession returns the stored session, or ok=false when none is
// stored or the stored record is unusable.
func (s *Store) GetSession(ctx context.Context) (Session, bool) {
	var sess Session
	ok := s.read(ctx, record.KindSession, currentSessionID, &sess, false)
	return sess, ok
}

// DeleteSession removes the stored session. Absent is a no-op.
func (s *Store) DeleteSession(ctx context.Context) error {
	return s.kv.Delete(ctx, record.KindSession.Key(currentSessionID))
}
