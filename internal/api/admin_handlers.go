package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aibandlist/submission-server/internal/domain"
	"github.com/aibandlist/submission-server/internal/service"
)

func (s *Server) registerAdminRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listSubmissions",
		Method:      http.MethodGet,
		Path:        "/api/admin/submissions",
		Summary:     "List submissions",
		Description: "Returns every submission in insertion order (admin only)",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: huma.Middlewares{s.adminOnly},
	}, s.handleListSubmissions)

	huma.Register(s.api, huma.Operation{
		OperationID: "reviewSubmission",
		Method:      http.MethodPost,
		Path:        "/api/admin/submissions/{id}",
		Summary:     "Review submission",
		Description: "Approves or rejects a submission. Approval appends the artist to the catalog (admin only)",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: huma.Middlewares{s.adminOnly},
	}, s.handleReviewSubmission)
}

// === DTOs ===

// ListSubmissionsOutput wraps the submission list for Huma.
type ListSubmissionsOutput struct {
	Body []domain.Submission
}

// ReviewBody is the administrator's decision.
type ReviewBody struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Action      string   `json:"action,omitempty" doc:"approve or reject"`
	AIBandsPath string   `json:"aiBandsPath,omitempty" doc:"Alternate catalog file, relative to the catalog base directory"`
}

// ReviewSubmissionInput is the Huma input for reviewing a submission.
type ReviewSubmissionInput struct {
	ID            string `path:"id" doc:"Submission ID"`
	Body          ReviewBody
}

// ReviewResponse acknowledges a review decision.
type ReviewResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ReviewSubmissionOutput wraps the review response for Huma.
type ReviewSubmissionOutput struct {
	Body ReviewResponse
}

// === Handlers ===

func (s *Server) handleListSubmissions(ctx context.Context, _ *struct{}) (*ListSubmissionsOutput, error) {
	submissions, err := s.services.Submission.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListSubmissionsOutput{Body: submissions}, nil
}

func (s *Server) handleReviewSubmission(ctx context.Context, input *ReviewSubmissionInput) (*ReviewSubmissionOutput, error) {
	sub, err := s.services.Review.Review(ctx, input.ID, service.ReviewRequest{
		Action:      input.Body.Action,
		CatalogPath: input.Body.AIBandsPath,
	})
	if err != nil {
		return nil, err
	}

	return &ReviewSubmissionOutput{
		Body: ReviewResponse{
			Success: true,
			Message: "Submission " + string(sub.Status),
		},
	}, nil
}
