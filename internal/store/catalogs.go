package store

import (
	"log/slog"
	"path/filepath"

	"github.com/aibandlist/submission-server/internal/domain"
)

// Catalogs opens catalog files: the configured default, or an alternate
// location given relative to a base directory.
type Catalogs struct {
	baseDir     string
	defaultPath string
	logger      *slog.Logger
}

// NewCatalogs creates a catalog resolver.
func NewCatalogs(baseDir, defaultPath string, logger *slog.Logger) *Catalogs {
	return &Catalogs{
		baseDir:     baseDir,
		defaultPath: defaultPath,
		logger:      logger,
	}
}

// Resolve maps location to a file path. Empty selects the default file;
// anything else is joined onto the base directory, absolute or not.
func (c *Catalogs) Resolve(location string) string {
	if location == "" {
		return c.defaultPath
	}
	return filepath.Join(c.baseDir, location)
}

// Open returns the catalog collection for location.
func (c *Catalogs) Open(location string) (CatalogStore, error) {
	return NewJSONFile[domain.CatalogRecord](c.Resolve(location), c.logger)
}

// Default returns the default catalog collection.
func (c *Catalogs) Default() (CatalogStore, error) {
	return c.Open("")
}
