package providers

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"

	"github.com/aibandlist/submission-server/internal/config"
	"github.com/aibandlist/submission-server/internal/domain"
	"github.com/aibandlist/submission-server/internal/logger"
	"github.com/aibandlist/submission-server/internal/store"
)

// Stores groups the file-backed collections.
type Stores struct {
	Submissions *store.JSONFile[domain.Submission]
	Catalogs    *store.Catalogs
}

// ProvideStores opens the submissions file, creating it when missing, and
// the catalog resolver.
func ProvideStores(i do.Injector) (*Stores, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	submissions, err := store.NewJSONFile[domain.Submission](cfg.Storage.SubmissionsPath, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("submissions store: %w", err)
	}
	if err := submissions.Ensure(context.Background()); err != nil {
		return nil, fmt.Errorf("submissions store: %w", err)
	}

	catalogs := store.NewCatalogs(cfg.Storage.CatalogBaseDir, cfg.Storage.CatalogPath, log.Logger)

	log.Info("Stores initialized",
		"submissions", submissions.Path(),
		"catalog", catalogs.Resolve(""),
	)

	return &Stores{
		Submissions: submissions,
		Catalogs:    catalogs,
	}, nil
}
