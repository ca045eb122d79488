package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	domainerrors "github.com/aibandlist/submission-server/internal/errors"
)

func TestSharedSecret_Check(t *testing.T) {
	checker := NewSharedSecret("s3cret")

	tests := []struct {
		name   string
		header string
		ok     bool
	}{
		{"exact bearer token", "Bearer s3cret", true},
		{"missing header", "", false},
		{"wrong token", "Bearer nope", false},
		{"token prefix only", "Bearer s3cre", false},
		{"token with suffix", "Bearer s3cret2", false},
		{"lowercase scheme", "bearer s3cret", false},
		{"no scheme", "s3cret", false},
		{"extra space", "Bearer  s3cret", false},
		{"basic scheme", "Basic s3cret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checker.Check(tt.header)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
		})
	}
}

func TestSharedSecret_EmptySecretRejectsAll(t *testing.T) {
	checker := NewSharedSecret("")

	assert.False(t, checker.Configured())
	assert.Error(t, checker.Check("Bearer "))
	assert.Error(t, checker.Check("Bearer undefined"))
	assert.Error(t, checker.Check(""))
}

func TestSharedSecret_ImplementsCredentialChecker(t *testing.T) {
	var _ CredentialChecker = NewSharedSecret("x")
}
