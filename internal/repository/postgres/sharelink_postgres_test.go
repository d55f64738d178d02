package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"doclib/internal/model"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linkColumns = []string{"id", "document_id", "expires_at", "created_at"}

func TestShareLinkPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewShareLinkPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	link := &model.ShareLink{
		ID:         "link-uuid",
		DocumentID: "doc-uuid",
		ExpiresAt:  now.Add(time.Hour),
		CreatedAt:  now,
	}

	rows := sqlmock.NewRows(linkColumns).
		AddRow(link.ID, link.DocumentID, link.ExpiresAt, link.CreatedAt)

	mock.ExpectQuery("INSERT INTO share_links").
		WithArgs(link.ID, link.DocumentID, link.ExpiresAt, link.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, link)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, link.ID, result.ID)
	assert.True(t, result.ExpiresAt.Equal(link.ExpiresAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareLinkPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewShareLinkPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(linkColumns).
			AddRow("link-id", "doc-id", time.Now().Add(time.Hour), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM share_links WHERE id = ?").
			WithArgs("link-id").
			WillReturnRows(rows)

		link, err := repo.FindByID(ctx, "link-id")

		assert.NoError(t, err)
		require.NotNil(t, link)
		assert.Equal(t, "doc-id", link.DocumentID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM share_links WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		link, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, link)
	})
}

func TestShareLinkPostgres_UpdateExpiry(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewShareLinkPostgres(db)
	ctx := context.Background()

	expiresAt := time.Now().UTC().Add(24 * time.Hour)

	t.Run("updated in place", func(t *testing.T) {
		mock.ExpectExec("UPDATE share_links SET expires_at = ?").
			WithArgs("link-id", expiresAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateExpiry(ctx, "link-id", expiresAt)

		assert.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE share_links SET expires_at = ?").
			WithArgs("missing", expiresAt).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateExpiry(ctx, "missing", expiresAt)

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
