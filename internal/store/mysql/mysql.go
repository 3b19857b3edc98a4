package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"go.uber.org/zap"
)

var tableName = regexp.MustCompile(`^[a-z_]+$`)

// Store owns the connection pool shared by every resource table.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

func New(db *sql.DB, logger *zap.Logger) *Store {
	return &Store{db: db, log: logger}
}

// EnsureTable creates the backing table of a resource if it does not exist.
// seq keeps insertion order; data holds the full JSON record.
func (s *Store) EnsureTable(ctx context.Context, table string) error {
	if !tableName.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	seq BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
	id VARCHAR(36) NOT NULL,
	data JSON NOT NULL,
	UNIQUE KEY uniq_%s_id (id)
)`, table, table))
	if err != nil {
		s.log.Error("sql ensure table failed", zap.String("table", table), zap.Error(err))
		return fmt.Errorf("ensure table %s: %w", table, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
