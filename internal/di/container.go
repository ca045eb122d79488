// Package di provides dependency injection configuration for the submission server.
package di

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/aibandlist/submission-server/internal/auth"
	"github.com/aibandlist/submission-server/internal/config"
	"github.com/aibandlist/submission-server/internal/di/providers"
	"github.com/aibandlist/submission-server/internal/logger"
	"github.com/aibandlist/submission-server/internal/service"
	"github.com/aibandlist/submission-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer(cfg *config.Config) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.ProvideValue(injector, cfg)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideCredentials)

	// Storage layer
	do.Provide(injector, providers.ProvideStores)

	// Business services
	do.Provide(injector, providers.ProvideSubmissionService)
	do.Provide(injector, providers.ProvideReviewService)
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvidePluginConfigService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and starts the HTTP server.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if _, err := do.Invoke[*validation.Validator](injector); err != nil {
		return fmt.Errorf("validator: %w", err)
	}
	if _, err := do.Invoke[auth.CredentialChecker](injector); err != nil {
		return fmt.Errorf("credentials: %w", err)
	}
	if _, err := do.Invoke[*providers.Stores](injector); err != nil {
		return fmt.Errorf("stores: %w", err)
	}

	// Business services
	if _, err := do.Invoke[*service.SubmissionService](injector); err != nil {
		return fmt.Errorf("submission service: %w", err)
	}
	if _, err := do.Invoke[*service.ReviewService](injector); err != nil {
		return fmt.Errorf("review service: %w", err)
	}
	if _, err := do.Invoke[*service.CatalogService](injector); err != nil {
		return fmt.Errorf("catalog service: %w", err)
	}
	if _, err := do.Invoke[*service.PluginConfigService](injector); err != nil {
		return fmt.Errorf("plugin config service: %w", err)
	}

	// Server
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	return nil
}
