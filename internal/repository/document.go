package repository

import (
	"context"

	"doclib/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here — strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns a filtered, sorted, paginated set of documents and the
	// total row count for the filter.
	List(ctx context.Context, q ListQuery) (*PageResult[model.Document], error)

	// IncrementDownloads adds 1 to the document's download counter.
	IncrementDownloads(ctx context.Context, id string) error

	// Delete removes a document by ID. The share_links FK cascades, so the
	// document's share links go with it. Returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}

// ListQuery holds catalog filter, sort, and limit/offset parameters.
// SortBy/SortOrder outside the known set silently fall back to the default
// ordering (uploaded_at descending).
type ListQuery struct {
	Search    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
