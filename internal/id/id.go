// Package id generates submission identifiers.
package id

import (
	"fmt"
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// suffixAlphabet keeps suffixed ids URL-safe without the '-' used as separator.
const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// suffixLength is the nanoid length appended on collision.
const suffixLength = 8

// FromTime returns the creation-time token for t: Unix milliseconds in base 10.
// Two submissions created in the same millisecond get the same token; callers
// that need uniqueness resolve it through Unique.
func FromTime(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// WithSuffix appends a random nanoid suffix to base.
// Format: base-suffix (e.g., "1718000000000-V1StGXR8").
func WithSuffix(base string) (string, error) {
	suffix, err := gonanoid.Generate(suffixAlphabet, suffixLength)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return base + "-" + suffix, nil
}

// Unique returns the creation-time token for t, or that token with a nanoid
// suffix when taken reports it is already in use.
func Unique(t time.Time, taken func(string) bool) (string, error) {
	candidate := FromTime(t)
	for taken(candidate) {
		next, err := WithSuffix(FromTime(t))
		if err != nil {
			return "", err
		}
		candidate = next
	}
	return candidate, nil
}
