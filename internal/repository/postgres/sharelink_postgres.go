package postgres

import (
	"context"
	"database/sql"
	"time"

	"doclib/internal/model"
	"doclib/internal/repository"
)

// ShareLinkPostgres is a PostgreSQL implementation of repository.ShareLinkRepository.
type ShareLinkPostgres struct {
	db *sql.DB
}

// NewShareLinkPostgres creates a new ShareLinkPostgres repository.
func NewShareLinkPostgres(db *sql.DB) *ShareLinkPostgres {
	return &ShareLinkPostgres{db: db}
}

var _ repository.ShareLinkRepository = (*ShareLinkPostgres)(nil)

const shareLinkColumns = "id, document_id, expires_at, created_at"

func scanShareLink(row interface{ Scan(...any) error }) (*model.ShareLink, error) {
	var l model.ShareLink
	if err := row.Scan(
		&l.ID,
		&l.DocumentID,
		&l.ExpiresAt,
		&l.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a new share link row and returns the stored record.
func (r *ShareLinkPostgres) Create(ctx context.Context, link *model.ShareLink) (*model.ShareLink, error) {
	const q = `
		INSERT INTO share_links (id, document_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + shareLinkColumns
	row := r.db.QueryRowContext(ctx, q,
		link.ID,
		link.DocumentID,
		link.ExpiresAt,
		link.CreatedAt,
	)
	return scanShareLink(row)
}

// FindByID fetches a single share link by its ID.
func (r *ShareLinkPostgres) FindByID(ctx context.Context, id string) (*model.ShareLink, error) {
	const q = `SELECT ` + shareLinkColumns + ` FROM share_links WHERE id = $1`
	return scanShareLink(r.db.QueryRowContext(ctx, q, id))
}

// UpdateExpiry overwrites expires_at in place. Expired links are updated the
// same as live ones; the caller decides whether that matters.
func (r *ShareLinkPostgres) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	const q = `UPDATE share_links SET expires_at = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, expiresAt)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
