// Package service implements submission intake, review and catalog access.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aibandlist/submission-server/internal/domain"
	domainerrors "github.com/aibandlist/submission-server/internal/errors"
	"github.com/aibandlist/submission-server/internal/id"
	"github.com/aibandlist/submission-server/internal/store"
	"github.com/aibandlist/submission-server/internal/validation"
)

// Client-facing messages for intake failures.
const (
	MsgMissingFields     = "Missing required fields: artistName, youtubeUrl, verificationLinks"
	MsgInvalidYouTubeURL = "Invalid YouTube URL"
	MsgInternal          = "Internal server error"
	MsgReadSubmissions   = "Error reading submissions"
	MsgCheckPending      = "Failed to check pending submissions"
)

// SubmitRequest holds the raw intake fields. VerificationLinks and
// OtherPlatforms are newline separated.
type SubmitRequest struct {
	ArtistName        string
	YoutubeURL        string
	VerificationLinks string
	OtherPlatforms    string
	AdditionalInfo    string
}

// intakeFields is the normalized form checked by the validator.
type intakeFields struct {
	ArtistName        string   `json:"artistName" validate:"required"`
	YoutubeURL        string   `json:"youtubeUrl" validate:"required"`
	VerificationLinks []string `json:"verificationLinks" validate:"min=1"`
}

// SubmissionService validates and stores crowd-sourced submissions.
type SubmissionService struct {
	store     store.SubmissionStore
	validator *validation.Validator
	now       func() time.Time
	logger    *slog.Logger
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(submissions store.SubmissionStore, validator *validation.Validator, logger *slog.Logger) *SubmissionService {
	return &SubmissionService{
		store:     submissions,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

// SetClock replaces the time source used for ids and timestamps.
func (s *SubmissionService) SetClock(now func() time.Time) {
	s.now = now
}

// Normalize converts raw intake fields to a pending submission without id or
// timestamp. It fails with a validation error when a required field is empty
// after trimming or the YouTube link has no recognized host.
func (s *SubmissionService) Normalize(req SubmitRequest) (*domain.Submission, error) {
	fields := intakeFields{
		ArtistName:        strings.TrimSpace(req.ArtistName),
		YoutubeURL:        strings.TrimSpace(req.YoutubeURL),
		VerificationLinks: domain.NormalizeLines(req.VerificationLinks),
	}

	if err := s.validator.Validate(fields); err != nil {
		return nil, domainerrors.ValidationWithDetails(MsgMissingFields, validation.FieldErrors(err))
	}

	if !domain.IsYouTubeURL(fields.YoutubeURL) {
		return nil, domainerrors.Validation(MsgInvalidYouTubeURL)
	}

	return &domain.Submission{
		ArtistName:        fields.ArtistName,
		YoutubeURL:        fields.YoutubeURL,
		VerificationLinks: fields.VerificationLinks,
		OtherPlatforms:    domain.NormalizeLines(req.OtherPlatforms),
		AdditionalInfo:    strings.TrimSpace(req.AdditionalInfo),
		Status:            domain.StatusPending,
		Reviewed:          false,
	}, nil
}

// Submit normalizes req and appends the resulting pending submission to the store.
func (s *SubmissionService) Submit(ctx context.Context, req SubmitRequest) (*domain.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sub, err := s.Normalize(req)
	if err != nil {
		return nil, err
	}

	created := s.now()
	sub.Timestamp = domain.NewTimestamp(created)

	err = s.store.Update(ctx, func(records []domain.Submission) ([]domain.Submission, error) {
		subID, err := id.Unique(created, func(candidate string) bool {
			return domain.FindSubmission(records, candidate) >= 0
		})
		if err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, MsgInternal)
		}
		sub.ID = subID
		return append(records, *sub), nil
	})
	if err != nil {
		s.logger.Error("failed to store submission",
			"artist", sub.ArtistName,
			"error", err,
		)
		return nil, asStorageError(err, MsgInternal)
	}

	s.logger.Info("New AI band submission",
		"artist", sub.ArtistName,
		"submission_id", sub.ID,
	)

	return sub, nil
}

// List returns every stored submission, in insertion order.
func (s *SubmissionService) List(ctx context.Context) ([]domain.Submission, error) {
	submissions, err := s.store.LoadAll(ctx)
	if err != nil {
		s.logger.Error("failed to read submissions", "error", err)
		return nil, asStorageError(err, MsgReadSubmissions)
	}
	return submissions, nil
}

// CountPending returns the number of submissions awaiting review.
func (s *SubmissionService) CountPending(ctx context.Context) (int, error) {
	submissions, err := s.store.LoadAll(ctx)
	if err != nil {
		s.logger.Error("failed to count pending submissions", "error", err)
		return 0, asStorageError(err, MsgCheckPending)
	}
	return domain.CountPending(submissions), nil
}
