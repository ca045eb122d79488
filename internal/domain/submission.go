// Package domain contains the records the server persists: crowd-sourced
// submissions and the published catalog of AI-generated artists.
package domain

import (
	"strings"
)

// Status is the review state of a submission.
type Status string

const (
	// StatusPending is the initial state; the submission awaits review.
	StatusPending Status = "pending"
	// StatusApproved means the submission was published to the catalog.
	StatusApproved Status = "approved"
	// StatusRejected means the submission was declined.
	StatusRejected Status = "rejected"
)

// Submission is a crowd-sourced claim that an artist is AI-generated.
// Submissions are never deleted; review only changes Status and Reviewed.
type Submission struct {
	ID                string    `json:"id"`
	Timestamp         Timestamp `json:"timestamp"`
	ArtistName        string    `json:"artistName"`
	YoutubeURL        string    `json:"youtubeUrl"`
	VerificationLinks []string  `json:"verificationLinks"`
	OtherPlatforms    []string  `json:"otherPlatforms"`
	AdditionalInfo    string    `json:"additionalInfo"`
	Status            Status    `json:"status"`
	Reviewed          bool      `json:"reviewed"`
}

// IsPending reports whether the submission still awaits a decision.
func (s *Submission) IsPending() bool {
	return s.Status == StatusPending
}

// Approve marks the submission approved and reviewed.
func (s *Submission) Approve() {
	s.Status = StatusApproved
	s.Reviewed = true
}

// Reject marks the submission rejected and reviewed.
func (s *Submission) Reject() {
	s.Status = StatusRejected
	s.Reviewed = true
}

// youtubeHosts are the substrings accepted as a YouTube link.
var youtubeHosts = []string{"youtube.com", "youtu.be"}

// IsYouTubeURL reports whether raw contains a recognized YouTube host.
// No further URL validation is performed.
func IsYouTubeURL(raw string) bool {
	for _, host := range youtubeHosts {
		if strings.Contains(raw, host) {
			return true
		}
	}
	return false
}

// NormalizeLines splits multi-line input into trimmed, non-empty lines.
// Order is preserved and duplicates are kept. The result is never nil.
func NormalizeLines(raw string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// CountPending returns the number of submissions awaiting review.
func CountPending(submissions []Submission) int {
	n := 0
	for i := range submissions {
		if submissions[i].IsPending() {
			n++
		}
	}
	return n
}

// FindSubmission returns the index of the submission with the given id, or -1.
func FindSubmission(submissions []Submission, id string) int {
	for i := range submissions {
		if submissions[i].ID == id {
			return i
		}
	}
	return -1
}
