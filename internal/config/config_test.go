package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears a variable for the test while restoring it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("OFFSTORE_SOCK", "/tmp/custom.sock")
	t.Setenv("OFFSTORE_DB", "/tmp/custom.bbolt")
	t.Setenv("OFFSTORE_BUCKET", "testing")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.sock", cfg.SocketPath)
	assert.Equal(t, "/tmp/custom.bbolt", cfg.DBPath)
	assert.Equal(t, "testing", cfg.Bucket)
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "OFFSTORE_SOCK")
	unsetenv(t, "OFFSTORE_DB")
	unsetenv(t, "OFFSTORE_BUCKET")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.SocketPath)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, "records", cfg.Bucket)
}
