package service

import (
	"context"
	"log/slog"

	"github.com/aibandlist/submission-server/internal/domain"
	domainerrors "github.com/aibandlist/submission-server/internal/errors"
	"github.com/aibandlist/submission-server/internal/store"
)

// MsgLoadCatalog is returned when the catalog file cannot be served.
const MsgLoadCatalog = "Failed to load AI bands database"

// CatalogService serves the published catalog.
type CatalogService struct {
	catalogs store.CatalogOpener
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogs store.CatalogOpener, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		catalogs: catalogs,
		logger:   logger,
	}
}

// List returns every record of the default catalog as stored.
func (s *CatalogService) List(ctx context.Context) ([]domain.CatalogRecord, error) {
	catalog, err := s.catalogs("")
	if err != nil {
		return nil, domainerrors.Storage(err, MsgLoadCatalog)
	}

	records, err := catalog.LoadAll(ctx)
	if err != nil {
		s.logger.Error("failed to load catalog", "error", err)
		return nil, asStorageError(err, MsgLoadCatalog)
	}
	return records, nil
}
