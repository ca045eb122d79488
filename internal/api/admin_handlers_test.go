package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibandlist/submission-server/internal/domain"
	"github.com/aibandlist/submission-server/internal/service"
)

func TestListSubmissions(t *testing.T) {
	ts := setupTestServer(t)
	first := ts.submit(t, validSubmission())

	resp := ts.api.Get("/api/admin/submissions", testAuthHeader)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var subs []domain.Submission
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, first.SubmissionID, subs[0].ID)
	assert.Equal(t, domain.StatusPending, subs[0].Status)
	assert.Equal(t, []string{"https://reddit.com/r/aimusic/1", "https://news.test/synth-ghost"}, subs[0].VerificationLinks)
}

func TestAdmin_Unauthorized(t *testing.T) {
	headers := map[string][]any{
		"missing":      nil,
		"wrong token":  {"Authorization: Bearer nope"},
		"wrong scheme": {"Authorization: Basic " + testSecret},
		"bare token":   {"Authorization: " + testSecret},
	}

	for name, args := range headers {
		t.Run(name, func(t *testing.T) {
			ts := setupTestServer(t)

			resp := ts.api.Get("/api/admin/submissions", args...)
			require.Equal(t, http.StatusUnauthorized, resp.Code)
			e := decodeError(t, resp.Body.Bytes())
			assert.Equal(t, "Unauthorized", e.Error)
			assert.Equal(t, "UNAUTHORIZED", e.Code)

			reviewArgs := append(append([]any{}, args...), map[string]any{"action": "approve"})
			resp = ts.api.Post("/api/admin/submissions/123", reviewArgs...)
			assert.Equal(t, http.StatusUnauthorized, resp.Code)
		})
	}
}

func TestAdmin_UnauthorizedNeverTouchesStore(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	counting := &countingStore{}

	ts := newTestServer(t, dir, counting, filepath.Join(dir, "ai-bands.json"), filepath.Join(dir, "YoutubeConfig.json"), logger)

	resp := ts.api.Get("/api/admin/submissions", "Authorization: Bearer wrong")
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = ts.api.Post("/api/admin/submissions/1", "Authorization: Bearer wrong", map[string]any{"action": "reject"})
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	assert.Zero(t, counting.total())

	resp = ts.api.Get("/api/admin/submissions", testAuthHeader)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int32(1), counting.loads.Load())
}

func TestAdmin_UnauthorizedBeforeBodyParsing(t *testing.T) {
	bodies := map[string][]any{
		"no body":        nil,
		"malformed json": {strings.NewReader("{bad")},
		"wrong types":    {map[string]any{"action": 5}},
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			ts := setupTestServer(t)

			args := append([]any{"Authorization: Bearer wrong"}, body...)
			resp := ts.api.Post("/api/admin/submissions/1", args...)
			require.Equal(t, http.StatusUnauthorized, resp.Code, resp.Body.String())

			e := decodeError(t, resp.Body.Bytes())
			assert.Equal(t, "UNAUTHORIZED", e.Code)
			assert.Equal(t, "Unauthorized", e.Error)
			assert.Empty(t, e.Details)
		})
	}
}

func TestReview_WrongBodyTypeIsBadRequest(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/admin/submissions/1", testAuthHeader, map[string]any{"action": 5})
	require.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
	assert.Equal(t, "VALIDATION", decodeError(t, resp.Body.Bytes()).Code)
}

func TestReview_Approve(t *testing.T) {
	ts := setupTestServer(t)
	sub := ts.submit(t, validSubmission())

	resp := ts.api.Post("/api/admin/submissions/"+sub.SubmissionID, testAuthHeader, map[string]any{"action": "approve"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.JSONEq(t, `{"success":true,"message":"Submission approved"}`, resp.Body.String())

	entries := ts.catalog(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "Synth Ghost", entries[0].Name)
	assert.Equal(t, "https://youtube.com/@synthghost", entries[0].YouTube)
	assert.Equal(t, "https://open.spotify.com/artist/1", entries[0].Spotify)
	assert.Equal(t, "https://www.tiktok.com/@synthghost", entries[0].TikTok)
	assert.Equal(t, []string{domain.TagAIGenerated}, entries[0].Tags)

	pending := ts.api.Get("/api/check-pending")
	assert.JSONEq(t, `{"pendingCount":0}`, pending.Body.String())
}

func TestReview_Reject(t *testing.T) {
	ts := setupTestServer(t)
	sub := ts.submit(t, validSubmission())

	before, err := os.ReadFile(ts.catalogPath)
	require.NoError(t, err)

	resp := ts.api.Post("/api/admin/submissions/"+sub.SubmissionID, testAuthHeader, map[string]any{"action": "reject"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.JSONEq(t, `{"success":true,"message":"Submission rejected"}`, resp.Body.String())

	after, err := os.ReadFile(ts.catalogPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	stored, err := ts.submissions.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, stored[0].Status)
	assert.True(t, stored[0].Reviewed)
}

func TestReview_NotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/admin/submissions/does-not-exist", testAuthHeader, map[string]any{"action": "approve"})
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, service.MsgSubmissionNotFound, decodeError(t, resp.Body.Bytes()).Error)
}

func TestReview_InvalidAction(t *testing.T) {
	ts := setupTestServer(t)
	sub := ts.submit(t, validSubmission())

	resp := ts.api.Post("/api/admin/submissions/"+sub.SubmissionID, testAuthHeader, map[string]any{"action": "archive"})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VALIDATION", decodeError(t, resp.Body.Bytes()).Code)

	resp = ts.api.Post("/api/admin/submissions/"+sub.SubmissionID, testAuthHeader, map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestReview_DoubleApproveDuplicatesEntry(t *testing.T) {
	ts := setupTestServer(t)
	sub := ts.submit(t, validSubmission())

	for range 2 {
		resp := ts.api.Post("/api/admin/submissions/"+sub.SubmissionID, testAuthHeader, map[string]any{"action": "approve"})
		require.Equal(t, http.StatusOK, resp.Code)
	}

	assert.Len(t, ts.catalog(t), 2)
}

func TestReview_AlternateCatalog(t *testing.T) {
	ts := setupTestServer(t)
	sub := ts.submit(t, validSubmission())
	require.NoError(t, writeFile(ts.dir, "staging.json", "[]"))

	resp := ts.api.Post("/api/admin/submissions/"+sub.SubmissionID, testAuthHeader, map[string]any{
		"action":      "approve",
		"aiBandsPath": "staging.json",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	assert.Empty(t, ts.catalog(t))

	data, err := os.ReadFile(filepath.Join(ts.dir, "staging.json"))
	require.NoError(t, err)
	var staged []domain.CatalogEntry
	require.NoError(t, json.Unmarshal(data, &staged))
	require.Len(t, staged, 1)
	assert.Equal(t, "Synth Ghost", staged[0].Name)
}

func TestReview_StorageFailure(t *testing.T) {
	ts := setupTestServer(t)
	sub := ts.submit(t, validSubmission())
	require.NoError(t, removeFile(ts.dir, "ai-bands.json"))

	resp := ts.api.Post("/api/admin/submissions/"+sub.SubmissionID, testAuthHeader, map[string]any{"action": "approve"})
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, service.MsgInternal, decodeError(t, resp.Body.Bytes()).Error)
}
