// Package repository defines the document store adapter for collage posts
// and opens the configured backend.
package repository

import (
	"context"

	"github.com/dimitrije/collage-api/internal/models"
)

// PostRepository stores collage documents in a single "posts" collection.
// Implementations return errs.ErrInvalidID for identifiers they cannot parse
// and errs.ErrNotFound when no document matches.
type PostRepository interface {
	// Insert stores c as a new document and returns its identifier. An empty
	// identifier with a nil error means the store reported no result.
	Insert(ctx context.Context, c *models.Collage) (string, error)

	// List returns summaries ordered by created_at descending.
	List(ctx context.Context, skip, limit int64) ([]models.Summary, error)

	// Count returns the number of documents in the collection.
	Count(ctx context.Context) (int64, error)

	// FindByID returns the full document.
	FindByID(ctx context.Context, id string) (*models.Collage, error)
}
