package store

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/models"
)

func newMockRepository(t *testing.T) (FavoriteRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}

	return NewFavoriteRepository(db, logger.Nop()), mock
}

func snapshotOf(t *testing.T, profile models.Profile) []byte {
	t.Helper()

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	return data
}

func TestSaveFavorite(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO favorites")).
		WithArgs(int64(42), "Priya Sharma", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveFavorite(context.Background(), models.Profile{ID: 42, Name: "Priya Sharma"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveFavoriteExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO favorites")).
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveFavorite(context.Background(), models.Profile{ID: 42, Name: "Priya Sharma"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile_id=42")
}

func TestRemoveFavorite(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM favorites")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RemoveFavorite(context.Background(), 42))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveFavoriteNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM favorites")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemoveFavorite(context.Background(), 42)
	require.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestListFavorites(t *testing.T) {
	repo, mock := newMockRepository(t)

	first := models.Profile{ID: 2, Name: "Rahul Verma"}
	second := models.Profile{ID: 1, Name: "Anita Joshi"}
	rows := sqlmock.NewRows([]string{"snapshot"}).
		AddRow(snapshotOf(t, first)).
		AddRow(snapshotOf(t, second))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT snapshot FROM favorites")).
		WillReturnRows(rows)

	got, err := repo.ListFavorites(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, second, got[1])
}

func TestListFavoritesEmpty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT snapshot FROM favorites")).
		WillReturnRows(sqlmock.NewRows([]string{"snapshot"}))

	got, err := repo.ListFavorites(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIsFavorite(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM favorites")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	liked, err := repo.IsFavorite(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestIsFavoriteAbsent(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM favorites")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	liked, err := repo.IsFavorite(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, liked)
}
