package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aibandlist/submission-server/internal/domain"
	domainerrors "github.com/aibandlist/submission-server/internal/errors"
	"github.com/aibandlist/submission-server/internal/store"
	"github.com/aibandlist/submission-server/internal/validation"
)

// Action is an administrator's decision on a submission.
type Action string

const (
	// ActionApprove publishes the submission to the catalog.
	ActionApprove Action = "approve"
	// ActionReject declines the submission.
	ActionReject Action = "reject"
)

// Client-facing messages for review failures.
const (
	MsgSubmissionNotFound = "Submission not found"
	MsgInvalidAction      = "Invalid action: must be approve or reject"
	MsgCatalogIsSelf      = "aiBandsPath must not point at the submissions file"
)

// ReviewRequest is an administrator's decision. CatalogPath optionally
// redirects the approval write to another catalog file.
type ReviewRequest struct {
	Action      string `json:"action" validate:"required,oneof=approve reject"`
	CatalogPath string `json:"aiBandsPath,omitempty"`
}

// pather is implemented by file-backed collections.
type pather interface {
	Path() string
}

// ReviewService applies approve/reject decisions to stored submissions.
//
// Decisions are not guarded against re-review: approving an already approved
// submission appends another catalog entry.
type ReviewService struct {
	submissions store.SubmissionStore
	catalogs    store.CatalogOpener
	validator   *validation.Validator
	now         func() time.Time
	logger      *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(submissions store.SubmissionStore, catalogs store.CatalogOpener, validator *validation.Validator, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		submissions: submissions,
		catalogs:    catalogs,
		validator:   validator,
		now:         time.Now,
		logger:      logger,
	}
}

// SetClock replaces the time source used for catalog dates.
func (s *ReviewService) SetClock(now func() time.Time) {
	s.now = now
}

// Review applies req to the submission with the given id and returns its
// updated state.
//
// On approve the derived catalog entry is appended to the catalog before the
// submission is marked approved; if the catalog write fails the submission is
// left untouched. Both branches rewrite the submissions file.
func (s *ReviewService) Review(ctx context.Context, submissionID string, req ReviewRequest) (*domain.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(req); err != nil {
		return nil, domainerrors.ValidationWithDetails(MsgInvalidAction, validation.FieldErrors(err))
	}
	action := Action(req.Action)

	var catalog store.CatalogStore
	if action == ActionApprove {
		var err error
		catalog, err = s.catalogs(req.CatalogPath)
		if err != nil {
			return nil, domainerrors.Storage(err, MsgInternal)
		}
		if sameFile(catalog, s.submissions) {
			return nil, domainerrors.Validation(MsgCatalogIsSelf)
		}
	}

	var reviewed domain.Submission
	err := s.submissions.Update(ctx, func(records []domain.Submission) ([]domain.Submission, error) {
		idx := domain.FindSubmission(records, submissionID)
		if idx < 0 {
			return nil, domainerrors.NotFound(MsgSubmissionNotFound)
		}
		sub := &records[idx]

		switch action {
		case ActionApprove:
			record, err := domain.NewCatalogEntry(sub, s.now()).Record()
			if err != nil {
				return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, MsgInternal)
			}
			if err := catalog.Update(ctx, func(records []domain.CatalogRecord) ([]domain.CatalogRecord, error) {
				return append(records, record), nil
			}); err != nil {
				return nil, err
			}
			sub.Approve()
		case ActionReject:
			sub.Reject()
		}

		reviewed = *sub
		return records, nil
	})
	if err != nil {
		if !domainerrors.Is(err, domainerrors.ErrNotFound) {
			s.logger.Error("failed to apply review",
				"submission_id", submissionID,
				"action", action,
				"error", err,
			)
		}
		return nil, asStorageError(err, MsgInternal)
	}

	s.logger.Info("submission reviewed",
		"submission_id", submissionID,
		"artist", reviewed.ArtistName,
		"action", action,
	)

	return &reviewed, nil
}

// sameFile reports whether both collections are backed by the same file.
func sameFile(a, b any) bool {
	pa, ok := a.(pather)
	if !ok {
		return false
	}
	pb, ok := b.(pather)
	if !ok {
		return false
	}
	return pa.Path() == pb.Path()
}
