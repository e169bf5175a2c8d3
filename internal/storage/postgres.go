package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool - часть *pgxpool.Pool, которой пользуется PostgresKV
type PgxPool interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresKV хранит коллекции в таблице collections (см. migrations)
type PostgresKV struct {
	db PgxPool
}

func NewPostgresKV(db PgxPool) *PostgresKV {
	return &PostgresKV{db: db}
}

func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := p.db.QueryRow(ctx, `SELECT value FROM collections WHERE key = $1;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection %s: %w", key, err)
	}
	if value == "" {
		return nil, nil
	}
	return []byte(value), nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO collections (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();
	`
	if _, err := p.db.Exec(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to save collection %s: %w", key, err)
	}
	return nil
}

func (p *PostgresKV) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	query := `
		INSERT INTO collections (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO NOTHING;
	`
	cmdTag, err := p.db.Exec(ctx, query, key, string(value))
	if err != nil {
		return false, fmt.Errorf("failed to init collection %s: %w", key, err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// Update блокирует строку коллекции (SELECT ... FOR UPDATE) на время изменения.
// Отсутствующий ключ создается пустой строкой, чтобы было что блокировать.
func (p *PostgresKV) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin tx for %s: %w", key, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `INSERT INTO collections (key, value) VALUES ($1, '') ON CONFLICT (key) DO NOTHING;`, key); err != nil {
		return fmt.Errorf("failed to reserve collection %s: %w", key, err)
	}

	var value string
	if err := tx.QueryRow(ctx, `SELECT value FROM collections WHERE key = $1 FOR UPDATE;`, key).Scan(&value); err != nil {
		return fmt.Errorf("failed to lock collection %s: %w", key, err)
	}

	var current []byte
	if value != "" {
		current = []byte(value)
	}
	next, err := fn(current)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `UPDATE collections SET value = $2, updated_at = NOW() WHERE key = $1;`, key, string(next)); err != nil {
		return fmt.Errorf("failed to update collection %s: %w", key, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit collection %s: %w", key, err)
	}
	return nil
}
