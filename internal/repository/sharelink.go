package repository

import (
	"context"
	"time"

	"doclib/internal/model"
)

// ShareLinkRepository defines data access for share links.
type ShareLinkRepository interface {
	// Create inserts a new share link record and returns the stored row.
	Create(ctx context.Context, link *model.ShareLink) (*model.ShareLink, error)

	// FindByID returns a share link by its ID.
	FindByID(ctx context.Context, id string) (*model.ShareLink, error)

	// UpdateExpiry overwrites the link's expiration in place. The ID never
	// changes. Returns sql.ErrNoRows if the link does not exist.
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error
}
