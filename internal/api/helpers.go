package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// adminOnly is an operation middleware that rejects requests without the
// admin credential. It runs before huma reads or validates the request body,
// so unauthenticated callers see 401 regardless of what they send.
func (s *Server) adminOnly(ctx huma.Context, next func(huma.Context)) {
	if err := s.requireAdmin(ctx.Header("Authorization")); err != nil {
		_ = huma.WriteErr(s.api, ctx, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	next(ctx)
}

// requireAdmin checks the Authorization header against the configured
// credential.
func (s *Server) requireAdmin(authHeader string) error {
	if err := s.credentials.Check(authHeader); err != nil {
		s.logger.Warn("rejected admin request", "reason", err)
		return err
	}
	return nil
}
