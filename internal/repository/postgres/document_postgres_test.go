package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"doclib/internal/model"
	"doclib/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var docColumns = []string{"id", "name", "stored_name", "size", "content_type", "uploaded_at", "downloads"}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		ID:          "test-uuid",
		Name:        "test.txt",
		StoredName:  "uuid_test.txt",
		Size:        123,
		ContentType: "text/plain",
		UploadedAt:  now,
		Downloads:   0,
	}

	rows := sqlmock.NewRows(docColumns).
		AddRow(doc.ID, doc.Name, doc.StoredName, doc.Size, doc.ContentType, doc.UploadedAt, doc.Downloads)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, doc.Name, doc.StoredName, doc.Size, doc.ContentType, doc.UploadedAt, doc.Downloads).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(docColumns).
			AddRow("test-id", "file.txt", "u_file.txt", 100, "text/plain", time.Now(), 3)

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Equal(t, "test-id", doc.ID)
		assert.Equal(t, int64(3), doc.Downloads)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("default ordering", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM documents`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(docColumns).
			AddRow("test-id", "file.txt", "u_file.txt", 100, "text/plain", time.Now(), 0)

		mock.ExpectQuery("SELECT (.+) FROM documents (.+)ORDER BY uploaded_at DESC").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.ListQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("search filter and name ascending", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM documents WHERE name ILIKE`).
			WithArgs("rep").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows(docColumns).
			AddRow("a", "report-a.pdf", "u_a.pdf", 10, "application/pdf", time.Now(), 0).
			AddRow("b", "report-b.pdf", "u_b.pdf", 20, "application/pdf", time.Now(), 0)

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE name ILIKE (.+)ORDER BY name ASC").
			WithArgs("rep", 5, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.ListQuery{
			Search: "rep", SortBy: "name", SortOrder: "asc", Limit: 5, Offset: 0,
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Len(t, res.Items, 2)
	})

	t.Run("unknown sort field falls back silently", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM documents`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("SELECT (.+) FROM documents (.+)ORDER BY uploaded_at DESC").
			WithArgs(5, 0).
			WillReturnRows(sqlmock.NewRows(docColumns))

		res, err := repo.List(ctx, repository.ListQuery{SortBy: "bogus", Limit: 5, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 0, res.Total)
	})

	t.Run("uploadDate is accepted case-insensitively", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM documents`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("SELECT (.+) FROM documents (.+)ORDER BY uploaded_at ASC").
			WithArgs(5, 0).
			WillReturnRows(sqlmock.NewRows(docColumns))

		_, err := repo.List(ctx, repository.ListQuery{SortBy: "uploadDate", SortOrder: "asc", Limit: 5, Offset: 0})

		assert.NoError(t, err)
	})
}

func TestDocumentPostgres_IncrementDownloads(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("bumps the counter", func(t *testing.T) {
		mock.ExpectExec(`UPDATE documents SET downloads = downloads \+ 1`).
			WithArgs("test-id").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.IncrementDownloads(ctx, "test-id")

		assert.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec(`UPDATE documents SET downloads = downloads \+ 1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.IncrementDownloads(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM documents WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
