package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"blank line and trailing space", "a\n\nb \n", []string{"a", "b"}},
		{"empty input", "", []string{}},
		{"only whitespace", "  \n\t\n", []string{}},
		{"crlf line endings", "https://x.test/1\r\nhttps://x.test/2\r\n", []string{"https://x.test/1", "https://x.test/2"}},
		{"duplicates kept in order", "b\na\nb", []string{"b", "a", "b"}},
		{"single line", "  https://example.com  ", []string{"https://example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLines(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeLines_Idempotent(t *testing.T) {
	inputs := []string{"a\n\nb \n", " x \n y\n\n z", "single"}

	for _, input := range inputs {
		once := NormalizeLines(input)
		twice := NormalizeLines(strings.Join(once, "\n"))
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/@artist", true},
		{"https://youtu.be/abc123", true},
		{"https://music.youtube.com/channel/x", true},
		{"https://vimeo.com/123", false},
		{"youtube", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, IsYouTubeURL(tt.url))
		})
	}
}

func TestSubmission_Transitions(t *testing.T) {
	sub := Submission{Status: StatusPending}
	assert.True(t, sub.IsPending())
	assert.False(t, sub.Reviewed)

	sub.Approve()
	assert.Equal(t, StatusApproved, sub.Status)
	assert.True(t, sub.Reviewed)

	other := Submission{Status: StatusPending}
	other.Reject()
	assert.Equal(t, StatusRejected, other.Status)
	assert.True(t, other.Reviewed)
}

func TestCountPendingAndFind(t *testing.T) {
	subs := []Submission{
		{ID: "1", Status: StatusPending},
		{ID: "2", Status: StatusApproved, Reviewed: true},
		{ID: "3", Status: StatusPending},
		{ID: "4", Status: StatusRejected, Reviewed: true},
	}

	assert.Equal(t, 2, CountPending(subs))
	assert.Equal(t, 2, FindSubmission(subs, "3"))
	assert.Equal(t, -1, FindSubmission(subs, "missing"))
	assert.Equal(t, 0, CountPending(nil))
}

func TestSubmission_JSONShape(t *testing.T) {
	sub := Submission{
		ID:                "1718020800123",
		Timestamp:         NewTimestamp(time.Date(2024, 6, 10, 12, 0, 0, 123_456_789, time.UTC)),
		ArtistName:        "Synth Ghost",
		YoutubeURL:        "https://youtube.com/@synthghost",
		VerificationLinks: []string{"https://reddit.com/r/x"},
		OtherPlatforms:    []string{},
		Status:            StatusPending,
	}

	data, err := json.Marshal(sub)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "2024-06-10T12:00:00.123Z", raw["timestamp"])
	assert.Equal(t, "Synth Ghost", raw["artistName"])
	assert.Equal(t, "https://youtube.com/@synthghost", raw["youtubeUrl"])
	assert.Equal(t, []any{}, raw["otherPlatforms"])
	assert.Equal(t, "", raw["additionalInfo"])
	assert.Equal(t, "pending", raw["status"])
	assert.Equal(t, false, raw["reviewed"])

	var back Submission
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, sub.Timestamp.UnixMilli(), back.Timestamp.UnixMilli())
}

func TestTimestamp_UnmarshalForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"iso millis", `"2024-01-15T10:30:00.000Z"`, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"rfc3339", `"2024-01-15T10:30:00Z"`, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"offset", `"2024-01-15T12:30:00+02:00"`, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"epoch millis string", `"1705314600000"`, time.UnixMilli(1705314600000).UTC()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}

	var bad Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &bad))
}

func TestTimestamp_ZeroIsNull(t *testing.T) {
	var back Submission
	require.NoError(t, json.Unmarshal([]byte(`{"id":"legacy","artistName":"Old"}`), &back))
	assert.True(t, back.Timestamp.IsZero())

	data, err := json.Marshal(back)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "timestamp")
	assert.Nil(t, raw["timestamp"])
}
