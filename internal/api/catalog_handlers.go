package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aibandlist/submission-server/internal/domain"
)

func (s *Server) registerCatalogRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getCatalog",
		Method:      http.MethodGet,
		Path:        "/ai-bands.json",
		Summary:     "Get catalog",
		Description: "Returns every confirmed AI-generated artist",
		Tags:        []string{"Catalog"},
	}, s.handleGetCatalog)

	huma.Register(s.api, huma.Operation{
		OperationID: "getPluginConfig",
		Method:      http.MethodGet,
		Path:        "/YoutubeConfig.json",
		Summary:     "Get plugin config",
		Description: "Returns the browser plugin configuration document used for version checks",
		Tags:        []string{"Catalog"},
	}, s.handleGetPluginConfig)
}

// CatalogOutput wraps the catalog array for Huma. Records pass through as stored.
type CatalogOutput struct {
	Body []domain.CatalogRecord
}

// PluginConfigOutput carries the config document as-is.
type PluginConfigOutput struct {
	ContentType  string `header:"Content-Type"`
	CacheControl string `header:"Cache-Control"`
	Body         []byte
}

func (s *Server) handleGetCatalog(ctx context.Context, _ *struct{}) (*CatalogOutput, error) {
	records, err := s.services.Catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	return &CatalogOutput{Body: records}, nil
}

func (s *Server) handleGetPluginConfig(ctx context.Context, _ *struct{}) (*PluginConfigOutput, error) {
	doc, err := s.services.PluginConfig.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &PluginConfigOutput{
		ContentType:  "application/json",
		CacheControl: "no-cache",
		Body:         doc,
	}, nil
}
