package kv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestBolt_SetGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.bbolt")
	s, err := OpenBolt(path, BoltOptions{})
	if err != nil {
		t.Fatalf("OpenBolt() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Set(ctx, "cache:doctors", []byte("v1")); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got, err := s.Get(ctx, "cache:doctors")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("Get() = %q, want %q", got, "v1")
	}
}

func TestBolt_GetMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.bbolt")
	s, err := OpenBolt(path, BoltOptions{})
	if err != nil {
		t.Fatalf("OpenBolt() failed: %v", err)
	}
	defer s.Close()

	_, err = s.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestBolt_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.bbolt")
	ctx := context.Background()

	s1, err := OpenBolt(path, BoltOptions{})
	if err != nil {
		t.Fatalf("first OpenBolt() failed: %v", err)
	}
	if err := s1.Set(ctx, "setting:theme", []byte("dark")); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	s2, err := OpenBolt(path, BoltOptions{})
	if err != nil {
		t.Fatalf("second OpenBolt() failed: %v", err)
	}
	defer s2.Close()

	got, err := s2.Get(ctx, "setting:theme")
	if err != nil {
		t.Fatalf("Get() after reopen failed: %v", err)
	}
	if string(got) != "dark" {
		t.Errorf("Get() after reopen = %q, want %q", got, "dark")
	}
}

func TestBolt_SetReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.bbolt")
	s, err := OpenBolt(path, BoltOptions{})
	if err != nil {
		t.Fatalf("OpenBolt() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Set(ctx, "k", []byte("old")); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := s.Set(ctx, "k", []byte("new")); err != nil {
		t.Fatalf("second Set() failed: %v", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("Get() = %q, want %q", got, "new")
	}
}

func TestBolt_DeleteAbsentIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.bbolt")
	s, err := OpenBolt(path, BoltOptions{})
	if err != nil {
		t.Fatalf("OpenBolt() failed: %v", err)
	}
	defer s.Close()

	if err := s.Delete(context.Background(), "never-written"); err != nil {
		t.Errorf("Delete() of absent key failed: %v", err)
	}
}

func TestBolt_KeysPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.bbolt")
	s, err := OpenBolt(path, BoltOptions{})
	if err != nil {
		t.Fatalf("OpenBolt() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	for _, k := range []string{"draft:a", "draft:b", "cache:x", "session:current"} {
		if err := s.Set(ctx, k, []byte("v")); err != nil {
			t.Fatalf("Set(%q) failed: %v", k, err)
		}
	}

	keys, err := s.Keys(ctx, "draft:")
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "draft:a" || keys[1] != "draft:b" {
		t.Errorf("Keys(draft:) = %v, want [draft:a draft:b]", keys)
	}

	all, err := s.Keys(ctx, "")
	if err != nil {
		t.Fatalf("Keys(\"\") failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Keys(\"\") returned %d keys, want 4", len(all))
	}
}
