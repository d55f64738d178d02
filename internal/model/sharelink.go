package model

import "time"

// ShareLink grants time-limited access to a document. The ID doubles as the
// opaque token embedded in the distributed URL; it is stable for the lifetime
// of the link even when the expiry window is reset.
type ShareLink struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// ExpiredAt reports whether the link is inert at the given instant.
// A link is valid strictly before ExpiresAt; there is no grace period.
func (l *ShareLink) ExpiredAt(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}
