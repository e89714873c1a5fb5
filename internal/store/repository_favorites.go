package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/models"
)

type favoriteRepository struct {
	*DB
	logger *logger.Logger
}

func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	return &favoriteRepository{
		DB:     db,
		logger: logger,
	}
}

func (f *favoriteRepository) SaveFavorite(ctx context.Context, profile models.Profile) error {
	snapshot, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode favorite snapshot: %w", err)
	}

	query, args, err := buildUpsertFavoriteQuery(profile.ID, profile.Name, snapshot, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("build upsert favorite query: %w", err)
	}

	if _, err := f.DB.ExecContext(ctx, query, args...); err != nil {
		f.logger.Err(err).
			Str("func", "favoriteRepository.SaveFavorite").
			Int64("profile_id", profile.ID).
			Msg("failed to execute upsert for favorite")
		return fmt.Errorf("failed to save favorite (profile_id=%d): %w", profile.ID, err)
	}

	return nil
}

func (f *favoriteRepository) RemoveFavorite(ctx context.Context, profileID int64) error {
	query, args, err := buildDeleteFavoriteQuery(profileID)
	if err != nil {
		return fmt.Errorf("build delete favorite query: %w", err)
	}

	result, err := f.DB.ExecContext(ctx, query, args...)
	if err != nil {
		f.logger.Err(err).
			Str("func", "favoriteRepository.RemoveFavorite").
			Int64("profile_id", profileID).
			Msg("failed to execute delete for favorite")
		return fmt.Errorf("failed to remove favorite (profile_id=%d): %w", profileID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check removed favorite: %w", err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

func (f *favoriteRepository) ListFavorites(ctx context.Context) ([]models.Profile, error) {
	query, args, err := buildSelectAllFavoritesQuery()
	if err != nil {
		return nil, fmt.Errorf("build select favorites query: %w", err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		f.logger.Err(err).
			Str("func", "favoriteRepository.ListFavorites").
			Msg("failed to query favorites")
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var snapshot []byte
		if err := rows.Scan(&snapshot); err != nil {
			return nil, fmt.Errorf("scan favorite snapshot: %w", err)
		}

		var profile models.Profile
		if err := json.Unmarshal(snapshot, &profile); err != nil {
			return nil, fmt.Errorf("decode favorite snapshot: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}

	return profiles, nil
}

func (f *favoriteRepository) IsFavorite(ctx context.Context, profileID int64) (bool, error) {
	query, args, err := buildFavoriteExistsQuery(profileID)
	if err != nil {
		return false, fmt.Errorf("build favorite exists query: %w", err)
	}

	var one int
	row := f.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check favorite (profile_id=%d): %w", profileID, err)
	}

	return true, nil
}
