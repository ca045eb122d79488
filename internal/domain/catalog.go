package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// TagAIGenerated marks catalog entries derived from an approved submission.
const TagAIGenerated = "ai-generated"

// CatalogEntry is the catalog record published for an approved submission.
//
// The catalog file itself is kept as opaque records (see CatalogRecord), so
// hand-maintained entries are never decoded into this type and rewritten.
type CatalogEntry struct {
	Name        string   `json:"name"`
	DateAdded   Date     `json:"dateAdded"`
	DateUpdated *Date    `json:"dateUpdated"`
	Comments    *string  `json:"comments"`
	Tags        []string `json:"tags"`
	YouTube     string   `json:"youtube"`
	URLs        []string `json:"urls"`
	Spotify     string   `json:"spotify,omitempty"`
	Apple       string   `json:"apple,omitempty"`
	TikTok      string   `json:"tiktok,omitempty"`
	Instagram   string   `json:"instagram,omitempty"`
	Amazon      string   `json:"amazon,omitempty"`
}

// CatalogRecord is one catalog entry exactly as stored in the catalog file.
type CatalogRecord = json.RawMessage

// Record encodes e as a catalog record.
func (e CatalogEntry) Record() (CatalogRecord, error) {
	return json.Marshal(e)
}

// platformRule maps a URL substring to the catalog field it populates.
type platformRule struct {
	name    string
	pattern string
	set     func(*CatalogEntry, string)
}

// platformRules is evaluated in order; the first matching rule claims a URL.
var platformRules = []platformRule{
	{name: "spotify", pattern: "spotify.com", set: func(e *CatalogEntry, u string) { e.Spotify = u }},
	{name: "apple", pattern: "music.apple.com", set: func(e *CatalogEntry, u string) { e.Apple = u }},
	{name: "tiktok", pattern: "tiktok.com", set: func(e *CatalogEntry, u string) { e.TikTok = u }},
	{name: "instagram", pattern: "instagram.com", set: func(e *CatalogEntry, u string) { e.Instagram = u }},
	{name: "amazon", pattern: "amazon.com", set: func(e *CatalogEntry, u string) { e.Amazon = u }},
}

// matchPlatform returns the first rule whose pattern occurs in url.
func matchPlatform(url string) (platformRule, bool) {
	for _, rule := range platformRules {
		if strings.Contains(url, rule.pattern) {
			return rule, true
		}
	}
	return platformRule{}, false
}

// ClassifyPlatform returns the platform name for url, or "" if no rule matches.
func ClassifyPlatform(url string) string {
	rule, _ := matchPlatform(url)
	return rule.name
}

// ApplyPlatforms sets the optional platform fields from urls.
// Unmatched URLs are dropped; for repeated platforms the last URL wins.
func (e *CatalogEntry) ApplyPlatforms(urls []string) {
	for _, u := range urls {
		if rule, ok := matchPlatform(u); ok {
			rule.set(e, u)
		}
	}
}

// NewCatalogEntry derives the catalog record published when sub is approved on day now.
func NewCatalogEntry(sub *Submission, now time.Time) CatalogEntry {
	entry := CatalogEntry{
		Name:      sub.ArtistName,
		DateAdded: DateOf(now),
		Tags:      []string{TagAIGenerated},
		YouTube:   sub.YoutubeURL,
		URLs:      append(make([]string, 0, len(sub.VerificationLinks)), sub.VerificationLinks...),
	}
	if sub.AdditionalInfo != "" {
		comments := sub.AdditionalInfo
		entry.Comments = &comments
	}
	entry.ApplyPlatforms(sub.OtherPlatforms)
	return entry
}
