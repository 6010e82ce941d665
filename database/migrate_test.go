package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for _, e := range entries {
		data, err := fs.ReadFile(migrations, "migrations/"+e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(data), "-- +goose Up", e.Name())
		assert.Contains(t, string(data), "-- +goose Down", e.Name())
		assert.True(t, strings.HasSuffix(e.Name(), ".sql"))
	}
}

func TestMigrationsVersionColumn(t *testing.T) {
	data, err := fs.ReadFile(migrations, "migrations/00003_add_group_version.sql")
	require.NoError(t, err)
	assert.Contains(t, string(data), "ADD COLUMN IF NOT EXISTS version BIGINT NOT NULL DEFAULT 1")
}
