package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// isoMillis is the ISO 8601 layout used for submission timestamps, e.g. "2024-01-15T10:30:00.000Z".
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a creation instant stored as an ISO 8601 string in UTC with
// millisecond precision.
//
// It unmarshals from either:
// - RFC3339 / RFC3339Nano string: "2024-01-15T10:30:00Z"
// - Epoch milliseconds string: "1705314600000"
type Timestamp struct {
	time.Time
}

// NewTimestamp returns t truncated to milliseconds in UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// MarshalText implements encoding.TextMarshaler.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.UTC().Format(isoMillis)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ts *Timestamp) UnmarshalText(data []byte) error {
	s := string(data)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		ts.Time = t.UTC()
		return nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		ts.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	return fmt.Errorf("cannot parse timestamp: %q", s)
}

// MarshalJSON shadows time.Time's promoted method so the text form is used.
// The zero value encodes as null.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	text, _ := ts.MarshalText()
	return json.Marshal(string(text))
}

// UnmarshalJSON accepts the same forms as UnmarshalText.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	return ts.UnmarshalText([]byte(s))
}

// Date is a calendar day stored as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// DateOf returns the UTC calendar day containing t.
func DateOf(t time.Time) Date {
	u := t.UTC()
	return Date{Time: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// String returns the day in YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(time.DateOnly)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Full RFC3339 instants are accepted and reduced to their UTC day.
func (d *Date) UnmarshalText(data []byte) error {
	s := string(data)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		d.Time = t
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*d = DateOf(t)
		return nil
	}
	return fmt.Errorf("cannot parse date: %q", s)
}

// MarshalJSON shadows time.Time's promoted method so the text form is used.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts the same forms as UnmarshalText.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}
