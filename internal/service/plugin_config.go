package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/tidwall/jsonc"

	domainerrors "github.com/aibandlist/submission-server/internal/errors"
)

// MsgLoadPluginConfig is returned when the plugin config cannot be served.
const MsgLoadPluginConfig = "Failed to load plugin config"

// PluginConfigService serves the static browser-plugin configuration
// document used for version checks. The file may contain comments and
// trailing commas; it is served as compact JSON.
type PluginConfigService struct {
	path   string
	logger *slog.Logger
}

// NewPluginConfigService creates a service reading the document at path.
func NewPluginConfigService(path string, logger *slog.Logger) *PluginConfigService {
	return &PluginConfigService{
		path:   path,
		logger: logger,
	}
}

// Get reads and returns the config document. The file is read on every call.
func (s *PluginConfigService) Get(ctx context.Context) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Error("failed to read plugin config", "path", s.path, "error", err)
		return nil, domainerrors.Storage(err, MsgLoadPluginConfig)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, jsonc.ToJSON(data)); err != nil {
		s.logger.Error("failed to parse plugin config", "path", s.path, "error", err)
		return nil, domainerrors.Storage(err, MsgLoadPluginConfig)
	}

	return json.RawMessage(buf.Bytes()), nil
}
