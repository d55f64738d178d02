package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"doclib/internal/model"
	"doclib/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = "id, name, stored_name, size, content_type, uploaded_at, downloads"

// sortColumns whitelists user-supplied sort keys. Anything else falls back to
// the default ordering, silently.
var sortColumns = map[string]string{
	"name":       "name",
	"uploaddate": "uploaded_at",
}

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.StoredName,
		&d.Size,
		&d.ContentType,
		&d.UploadedAt,
		&d.Downloads,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, name, stored_name, size, content_type, uploaded_at, downloads)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Name,
		doc.StoredName,
		doc.Size,
		doc.ContentType,
		doc.UploadedAt,
		doc.Downloads,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// List returns documents matching the query plus the total count for the
// filter. Search is a case-insensitive substring match on name.
func (r *DocumentPostgres) List(ctx context.Context, q repository.ListQuery) (*repository.PageResult[model.Document], error) {
	where := ""
	args := []any{}
	if q.Search != "" {
		where = "WHERE name ILIKE '%' || $1 || '%'"
		args = append(args, q.Search)
	}

	qCount := fmt.Sprintf("SELECT COUNT(*) FROM documents %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, args...).Scan(&total); err != nil {
		return nil, err
	}

	col, ok := sortColumns[strings.ToLower(q.SortBy)]
	if !ok {
		col = "uploaded_at"
	}
	dir := "DESC"
	if strings.EqualFold(q.SortOrder, "asc") {
		dir = "ASC"
	}

	qList := fmt.Sprintf(
		"SELECT %s FROM documents %s ORDER BY %s %s, id DESC LIMIT $%d OFFSET $%d",
		documentColumns, where, col, dir, len(args)+1, len(args)+2,
	)
	args = append(args, q.Limit, q.Offset)

	rows, err := r.db.QueryContext(ctx, qList, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Document]{
		Items: items,
		Total: total,
	}, nil
}

// IncrementDownloads bumps the download counter by exactly 1.
func (r *DocumentPostgres) IncrementDownloads(ctx context.Context, id string) error {
	const q = `UPDATE documents SET downloads = downloads + 1 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
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

// Delete removes a document by ID. It does not return an error if the row
// does not exist. Share links referencing the row are removed by the FK's
// ON DELETE CASCADE.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
