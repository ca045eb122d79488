package api

import (
	"github.com/aibandlist/submission-server/internal/service"
)

// Services groups all business logic services used by the API server.
type Services struct {
	Submission   *service.SubmissionService
	Review       *service.ReviewService
	Catalog      *service.CatalogService
	PluginConfig *service.PluginConfigService
}
