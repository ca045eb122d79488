// Package store persists record collections as whole JSON files.
//
// Each collection is read fully on demand and rewritten wholesale on every
// mutation. There is no cache beyond a single call: handlers load, mutate in
// memory and save.
package store

import (
	"context"

	"github.com/aibandlist/submission-server/internal/domain"
)

// Collection is an ordered sequence of records backed by durable storage.
//
// LoadAll and SaveAll fail with a storage error (errors.CodeStorage) when the
// backing file is unreadable, unwritable or malformed. Update runs a
// read-modify-write cycle under a lock scoped to the backing file, so cycles
// within one process never interleave. Nothing guards against other processes.
type Collection[T any] interface {
	LoadAll(ctx context.Context) ([]T, error)
	SaveAll(ctx context.Context, records []T) error
	Update(ctx context.Context, fn func(records []T) ([]T, error)) error
}

// SubmissionStore is the collection of crowd-sourced submissions.
type SubmissionStore = Collection[domain.Submission]

// CatalogStore is the collection of published catalog records, kept opaque so
// entries are served and rewritten byte for byte as their JSON values.
type CatalogStore = Collection[domain.CatalogRecord]

// CatalogOpener resolves a catalog location to its collection.
// An empty location selects the configured default catalog.
type CatalogOpener func(location string) (CatalogStore, error)
