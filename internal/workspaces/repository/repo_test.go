package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcode-studio/studio-backend/internal/workspaces/domain"
)

func setupRepo(t *testing.T) (*WorkspaceRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewWorkspaceRepository(db), mock, db
}

func workspaceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"public_id", "name", "template", "active_document_id", "created_at", "updated_at"})
}

func TestWorkspaceRepository_Create(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("creates workspace with defaulted template", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO workspaces`).
			WithArgs(sqlmock.AnyArg(), "My App", "vanilla").
			WillReturnRows(workspaceRows().
				AddRow("studio-12345-6789", "My App", "vanilla", nil, time.Now(), time.Now()))

		w, err := repo.Create(context.Background(), "My App", "")
		require.NoError(t, err)
		assert.Equal(t, "studio-12345-6789", w.PublicID)
		assert.Equal(t, "vanilla", w.Template)
		assert.Nil(t, w.ActiveDocumentID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := repo.Create(context.Background(), "", "react")
		assert.Error(t, err)
	})
}

func TestWorkspaceRepository_Get_NotFound(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT public_id, name, template`).
		WithArgs("studio-00000-0000").
		WillReturnRows(workspaceRows())

	_, err := repo.Get(context.Background(), "studio-00000-0000")
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkspaceRepository_Rename(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE workspaces`).
		WithArgs("studio-12345-6789", "Renamed").
		WillReturnRows(workspaceRows().
			AddRow("studio-12345-6789", "Renamed", "react", nil, time.Now(), time.Now()))

	w, err := repo.Rename(context.Background(), "studio-12345-6789", "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", w.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkspaceRepository_SoftDelete(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("reports true when a row matched", func(t *testing.T) {
		mock.ExpectExec(`UPDATE workspaces`).
			WithArgs("studio-12345-6789").
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.SoftDelete(context.Background(), "studio-12345-6789")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("reports false when nothing matched", func(t *testing.T) {
		mock.ExpectExec(`UPDATE workspaces`).
			WithArgs("studio-00000-0000").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.SoftDelete(context.Background(), "studio-00000-0000")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
