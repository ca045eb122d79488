// Package auth gates administrative endpoints behind a shared secret.
package auth

import (
	"crypto/subtle"
	"strings"

	domainerrors "github.com/aibandlist/submission-server/internal/errors"
)

// CredentialChecker validates the raw Authorization header of a request.
// Check returns nil when the caller may proceed and an unauthorized domain
// error otherwise.
type CredentialChecker interface {
	Check(authHeader string) error
}

// SharedSecret accepts "Bearer <secret>" for one statically configured secret.
type SharedSecret struct {
	secret []byte
}

// NewSharedSecret creates a checker for secret.
// An empty secret rejects every request.
func NewSharedSecret(secret string) *SharedSecret {
	return &SharedSecret{secret: []byte(secret)}
}

// Configured reports whether a non-empty secret was provided.
func (s *SharedSecret) Configured() bool {
	return len(s.secret) > 0
}

// Check implements CredentialChecker. The token comparison runs in constant
// time with respect to the token contents.
func (s *SharedSecret) Check(authHeader string) error {
	if !s.Configured() || authHeader == "" {
		return domainerrors.ErrUnauthorized
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if subtle.ConstantTimeCompare([]byte(token), s.secret) != 1 {
		return domainerrors.ErrUnauthorized
	}
	return nil
}
