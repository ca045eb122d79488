package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aibandlist/submission-server/internal/service"
)

// MsgSubmissionReceived is the success message for a new submission.
const MsgSubmissionReceived = "Submission received successfully"

func (s *Server) registerSubmissionRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "checkPending",
		Method:      http.MethodGet,
		Path:        "/api/check-pending",
		Summary:     "Count pending submissions",
		Description: "Returns the number of submissions awaiting review",
		Tags:        []string{"Submissions"},
	}, s.handleCheckPending)

	huma.Register(s.api, huma.Operation{
		OperationID: "submitAIBand",
		Method:      http.MethodPost,
		Path:        "/api/submit-ai-band",
		Summary:     "Submit an AI artist",
		Description: "Submits an artist suspected of being AI-generated for review",
		Tags:        []string{"Submissions"},
	}, s.handleSubmit)
}

// === DTOs ===

// CheckPendingResponse reports the review backlog.
type CheckPendingResponse struct {
	PendingCount int `json:"pendingCount" doc:"Submissions awaiting review"`
}

// CheckPendingOutput wraps the pending count for Huma.
type CheckPendingOutput struct {
	Body CheckPendingResponse
}

// SubmitBody is the intake form. Link lists are newline separated.
// Fields are optional at the schema level so missing values are reported
// with the intake validation message.
type SubmitBody struct {
	_                 struct{} `json:"-" additionalProperties:"true"`
	ArtistName        string   `json:"artistName,omitempty" doc:"Artist or band name"`
	YoutubeURL        string   `json:"youtubeUrl,omitempty" doc:"YouTube channel or video URL"`
	VerificationLinks string   `json:"verificationLinks,omitempty" doc:"Evidence links, one per line"`
	OtherPlatforms    string   `json:"otherPlatforms,omitempty" doc:"Other platform links, one per line"`
	AdditionalInfo    string   `json:"additionalInfo,omitempty" doc:"Free-form notes"`
}

// SubmitInput is the Huma input for a submission.
type SubmitInput struct {
	Body SubmitBody
}

// SubmitResponse acknowledges a stored submission.
type SubmitResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId" doc:"Assigned submission ID"`
}

// SubmitOutput wraps the submit response for Huma.
type SubmitOutput struct {
	Body SubmitResponse
}

// === Handlers ===

func (s *Server) handleCheckPending(ctx context.Context, _ *struct{}) (*CheckPendingOutput, error) {
	count, err := s.services.Submission.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	return &CheckPendingOutput{
		Body: CheckPendingResponse{PendingCount: count},
	}, nil
}

func (s *Server) handleSubmit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	sub, err := s.services.Submission.Submit(ctx, service.SubmitRequest{
		ArtistName:        input.Body.ArtistName,
		YoutubeURL:        input.Body.YoutubeURL,
		VerificationLinks: input.Body.VerificationLinks,
		OtherPlatforms:    input.Body.OtherPlatforms,
		AdditionalInfo:    input.Body.AdditionalInfo,
	})
	if err != nil {
		return nil, err
	}

	return &SubmitOutput{
		Body: SubmitResponse{
			Success:      true,
			Message:      MsgSubmissionReceived,
			SubmissionID: sub.ID,
		},
	}, nil
}
