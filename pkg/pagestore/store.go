// Package pagestore persists pages keyed by (application table, page id).
// Saves overwrite the whole record; there is no partial update.
package pagestore

import (
	"context"
	"errors"

	"github.com/faciam-dev/gcms/pkg/content"
)

// ErrNotFound is returned when no page exists under the requested key.
var ErrNotFound = errors.New("pagestore: page not found")

// Store is the persistence contract the content engine depends on. Failures
// must be surfaced to the caller, never swallowed.
type Store interface {
	// List returns every page of the given application table.
	List(ctx context.Context, tableID string) ([]content.Page, error)
	// Get returns one page by id, or ErrNotFound.
	Get(ctx context.Context, tableID, pageID string) (content.Page, error)
	// Save stores the page under its id, overwriting any previous record.
	Save(ctx context.Context, tableID string, p content.Page) error
	// Delete removes the page, or returns ErrNotFound.
	Delete(ctx context.Context, tableID, pageID string) error
}
