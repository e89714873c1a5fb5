// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const favoritesTable = "favorites"

var favoriteColumns = []string{
	"profile_id",
	"name",
	"snapshot",
	"saved_at",
}

// buildUpsertFavoriteQuery builds the statement that inserts a favorite
// snapshot or refreshes an existing one in place.
func buildUpsertFavoriteQuery(profileID int64, name string, snapshot []byte, savedAt time.Time) (string, []any, error) {
	return sq.Insert(favoritesTable).
		Columns(favoriteColumns...).
		Values(profileID, name, snapshot, savedAt).
		Suffix(`ON CONFLICT (profile_id) DO UPDATE SET
			name = excluded.name,
			snapshot = excluded.snapshot,
			saved_at = excluded.saved_at`).
		ToSql()
}

func buildDeleteFavoriteQuery(profileID int64) (string, []any, error) {
	return sq.Delete(favoritesTable).
		Where(sq.Eq{"profile_id": profileID}).
		ToSql()
}

func buildSelectAllFavoritesQuery() (string, []any, error) {
	return sq.Select("snapshot").
		From(favoritesTable).
		OrderBy("saved_at DESC").
		ToSql()
}

func buildFavoriteExistsQuery(profileID int64) (string, []any, error) {
	return sq.Select("1").
		From(favoritesTable).
		Where(sq.Eq{"profile_id": profileID}).
		ToSql()
}
