package model

import "time"

// Document represents a stored file in the system.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
type Document struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`        // original filename, used for display and extension inference
	StoredName  string    `json:"stored_name"` // server-generated collision-free object name
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"` // as reported by the uploading client, advisory only
	UploadedAt  time.Time `json:"uploaded_at"`
	Downloads   int64     `json:"downloads"`
}
