package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/aibandlist/submission-server/internal/errors"
)

func TestCatalogList(t *testing.T) {
	env := setupTestEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "ai-bands.json"), []byte(`[
  {"name": "A", "dateAdded": "2024-01-01", "dateUpdated": null, "comments": null, "tags": ["ai-generated"], "youtube": "https://youtu.be/a", "urls": []},
  {"name": "B", "dateAdded": "2024-02-01", "dateUpdated": "2024-03-01", "comments": "hand added", "tags": [], "youtube": "", "urls": []}
]`), 0o644))

	records, err := NewCatalogService(env.catalogs.Open, env.logger).List(context.Background())
	require.NoError(t, err)
	entries := decodeEntries(t, records)
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].Name)
	require.NotNil(t, entries[1].Comments)
	assert.Equal(t, "hand added", *entries[1].Comments)
	require.NotNil(t, entries[1].DateUpdated)
	assert.Equal(t, "2024-03-01", entries[1].DateUpdated.String())
}

func TestCatalogList_KeepsRecordsAsStored(t *testing.T) {
	env := setupTestEnv(t)
	legacy := `{"name":"Legacy","dateAdded":"2024-1-5","youtube":"https://youtube.com/@l"}`
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "ai-bands.json"), []byte("["+legacy+"]"), 0o644))

	records, err := NewCatalogService(env.catalogs.Open, env.logger).List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.JSONEq(t, legacy, string(records[0]))
}

func TestCatalogList_MissingFile(t *testing.T) {
	env := setupTestEnv(t)
	require.NoError(t, os.Remove(filepath.Join(env.dir, "ai-bands.json")))

	_, err := NewCatalogService(env.catalogs.Open, env.logger).List(context.Background())
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domainerrors.CodeStorage, domainErr.Code)
	assert.Equal(t, MsgLoadCatalog, domainErr.Message)
}
