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

func TestPluginConfigGet(t *testing.T) {
	env := setupTestEnv(t)
	path := filepath.Join(env.dir, "YoutubeConfig.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  // bumped on every plugin release
  "version": "1.4.0",
  "minVersion": "1.2.0", /* older builds miss the badge */
  "features": ["badge", "filter",],
}`), 0o644))

	doc, err := NewPluginConfigService(path, env.logger).Get(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.4.0","minVersion":"1.2.0","features":["badge","filter"]}`, string(doc))
	assert.NotContains(t, string(doc), "\n")
}

func TestPluginConfigGet_ReadsOnEveryCall(t *testing.T) {
	env := setupTestEnv(t)
	path := filepath.Join(env.dir, "YoutubeConfig.json")
	svc := NewPluginConfigService(path, env.logger)

	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1"}`), 0o644))
	first, err := svc.Get(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"version":"2"}`), 0o644))
	second, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.JSONEq(t, `{"version":"1"}`, string(first))
	assert.JSONEq(t, `{"version":"2"}`, string(second))
}

func TestPluginConfigGet_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content *string
	}{
		{"missing file", nil},
		{"malformed", ptr(`{"version": `)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			path := filepath.Join(env.dir, "YoutubeConfig.json")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}

			_, err := NewPluginConfigService(path, env.logger).Get(context.Background())
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, domainerrors.CodeStorage, domainErr.Code)
			assert.Equal(t, MsgLoadPluginConfig, domainErr.Message)
		})
	}
}

func ptr(s string) *string { return &s }
