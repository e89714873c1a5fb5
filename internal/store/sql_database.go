package store

import (
	"database/sql"

	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
