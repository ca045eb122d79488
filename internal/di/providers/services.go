package providers

import (
	"github.com/samber/do/v2"

	"github.com/aibandlist/submission-server/internal/config"
	"github.com/aibandlist/submission-server/internal/logger"
	"github.com/aibandlist/submission-server/internal/service"
	"github.com/aibandlist/submission-server/internal/validation"
)

// ProvideSubmissionService provides the intake service.
func ProvideSubmissionService(i do.Injector) (*service.SubmissionService, error) {
	stores := do.MustInvoke[*Stores](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSubmissionService(stores.Submissions, v, log.Logger), nil
}

// ProvideReviewService provides the approve/reject workflow.
func ProvideReviewService(i do.Injector) (*service.ReviewService, error) {
	stores := do.MustInvoke[*Stores](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewReviewService(stores.Submissions, stores.Catalogs.Open, v, log.Logger), nil
}

// ProvideCatalogService provides read access to the published catalog.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	stores := do.MustInvoke[*Stores](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(stores.Catalogs.Open, log.Logger), nil
}

// ProvidePluginConfigService provides the plugin config document.
func ProvidePluginConfigService(i do.Injector) (*service.PluginConfigService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewPluginConfigService(cfg.Storage.PluginConfigPath, log.Logger), nil
}
