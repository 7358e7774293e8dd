package store

import (
	"context"

	"github.com/leonardcser/offstore/internal/record"
)

// SetSetting persists an app setting. Settings never expire and survive
// ClearUserData.
func (s *Store) SetSetting(ctx context.Context, name string, value any) error {
	return s.write(ctx, record.KindSetting, name, value, 0)
}

// GetSetting loads the setting for name into out. When no usable value
// is stored, out is left untouched, so callers pre-fill out with their
// default and use it regardless of the return value.
func (s *Store) GetSetting(ctx context.Context, name string, out any) bool {
	return s.read(ctx, record.KindSetting, name, out, false)
}
