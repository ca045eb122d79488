package service

import (
	"context"

	domainerrors "github.com/aibandlist/submission-server/internal/errors"
)

// asStorageError replaces the message of storage and internal errors with the
// client-facing msg, keeping the cause for logs. Other domain errors and
// context errors pass through unchanged; anything else becomes a storage error.
func asStorageError(err error, msg string) error {
	if domainerrors.Is(err, context.Canceled) || domainerrors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var domainErr *domainerrors.Error
	if !domainerrors.As(err, &domainErr) {
		return domainerrors.Storage(err, msg)
	}

	switch domainErr.Code {
	case domainerrors.CodeStorage, domainerrors.CodeInternal:
		return domainErr.WithMessage(msg)
	default:
		return err
	}
}
