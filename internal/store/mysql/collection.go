package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"crud_api/internal/model"
)

// Collection stores one resource as JSON documents in its own table.
type Collection[T any, PT model.Entity[T]] struct {
	store *Store
	table string
	now   func() time.Time
}

func NewCollection[T any, PT model.Entity[T]](ctx context.Context, store *Store, resource model.Resource) (*Collection[T, PT], error) {
	if err := store.EnsureTable(ctx, resource.Path); err != nil {
		return nil, err
	}
	return &Collection[T, PT]{
		store: store,
		table: resource.Path,
		now:   func() time.Time { return time.Now().UTC() },
	}, nil
}

func (c *Collection[T, PT]) Create(ctx context.Context, input T) (T, error) {
	record := input
	meta := PT(&record).Meta()
	meta.Init(c.now())

	data, err := json.Marshal(record)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("encode %s: %w", c.table, err)
	}
	if _, err := c.store.db.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (id, data) VALUES (?, ?)", c.table),
		meta.ID, data,
	); err != nil {
		c.store.log.Error("sql insert failed", zap.String("table", c.table), zap.String("id", meta.ID), zap.Error(err))
		var zero T
		return zero, fmt.Errorf("insert %s: %w", c.table, err)
	}
	return record, nil
}

func (c *Collection[T, PT]) Get(ctx context.Context, id string) (T, bool, error) {
	row := c.store.db.QueryRowContext(ctx, fmt.Sprintf("SELECT data FROM %s WHERE id = ?", c.table), id)
	return c.scan(row, id)
}

func (c *Collection[T, PT]) List(ctx context.Context) ([]T, error) {
	rows, err := c.store.db.QueryContext(ctx, fmt.Sprintf("SELECT data FROM %s ORDER BY seq", c.table))
	if err != nil {
		c.store.log.Error("sql list failed", zap.String("table", c.table), zap.Error(err))
		return nil, fmt.Errorf("list %s: %w", c.table, err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]T, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.table, err)
		}
		var record T
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.table, err)
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", c.table, err)
	}
	return result, nil
}

func (c *Collection[T, PT]) Update(ctx context.Context, id string, patch model.Patch[T]) (T, bool, error) {
	var zero T
	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, false, fmt.Errorf("begin %s update: %w", c.table, err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, fmt.Sprintf("SELECT data FROM %s WHERE id = ? FOR UPDATE", c.table), id)
	existing, ok, err := c.scan(row, id)
	if err != nil || !ok {
		return zero, false, err
	}

	updated := existing
	patch.Apply(&updated)
	PT(&updated).Meta().Touch(*PT(&existing).Meta(), c.now())

	data, err := json.Marshal(updated)
	if err != nil {
		return zero, false, fmt.Errorf("encode %s: %w", c.table, err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("UPDATE %s SET data = ? WHERE id = ?", c.table), data, id); err != nil {
		c.store.log.Error("sql update failed", zap.String("table", c.table), zap.String("id", id), zap.Error(err))
		return zero, false, fmt.Errorf("update %s: %w", c.table, err)
	}
	if err := tx.Commit(); err != nil {
		return zero, false, fmt.Errorf("commit %s update: %w", c.table, err)
	}
	return updated, true, nil
}

func (c *Collection[T, PT]) Delete(ctx context.Context, id string) (bool, error) {
	result, err := c.store.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", c.table), id)
	if err != nil {
		c.store.log.Error("sql delete failed", zap.String("table", c.table), zap.String("id", id), zap.Error(err))
		return false, fmt.Errorf("delete %s: %w", c.table, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s rows affected: %w", c.table, err)
	}
	return n > 0, nil
}

func (c *Collection[T, PT]) Clear(ctx context.Context) error {
	if _, err := c.store.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", c.table)); err != nil {
		return fmt.Errorf("clear %s: %w", c.table, err)
	}
	return nil
}

func (c *Collection[T, PT]) scan(row *sql.Row, id string) (T, bool, error) {
	var zero T
	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, false, nil
		}
		c.store.log.Error("sql get failed", zap.String("table", c.table), zap.String("id", id), zap.Error(err))
		return zero, false, fmt.Errorf("get %s: %w", c.table, err)
	}
	var record T
	if err := json.Unmarshal(data, &record); err != nil {
		return zero, false, fmt.Errorf("decode %s: %w", c.table, err)
	}
	return record, true, nil
}
