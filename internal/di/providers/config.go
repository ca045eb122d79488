// Package providers contains dependency injection providers for the submission server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/aibandlist/submission-server/internal/auth"
	"github.com/aibandlist/submission-server/internal/config"
	"github.com/aibandlist/submission-server/internal/logger"
	"github.com/aibandlist/submission-server/internal/validation"
)

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting AI band submission server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"submissions_path", cfg.Storage.SubmissionsPath,
		"catalog_path", cfg.Storage.CatalogPath,
		"catalog_base_dir", cfg.Storage.CatalogBaseDir,
	)

	return log, nil
}

// ProvideValidator provides the shared request validator.
func ProvideValidator(_ do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideCredentials provides the admin credential checker.
func ProvideCredentials(i do.Injector) (auth.CredentialChecker, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	secret := auth.NewSharedSecret(cfg.Auth.AdminToken)
	if !secret.Configured() {
		log.Warn("ADMIN_TOKEN is not set; admin endpoints will reject every request")
	}

	return secret, nil
}
