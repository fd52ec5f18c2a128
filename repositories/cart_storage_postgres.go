package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCartStorage persists cart payloads in the cart_storage key/value
// table.
type PostgresCartStorage struct {
	db *pgxpool.Pool
}

func NewPostgresCartStorage(db *pgxpool.Pool) *PostgresCartStorage {
	return &PostgresCartStorage{db: db}
}

func (s *PostgresCartStorage) Read(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx,
		`SELECT value FROM cart_storage WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Op: "read", Err: err}
	}
	return value, true, nil
}

func (s *PostgresCartStorage) Write(ctx context.Context, key, value string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO cart_storage (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	if err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}

func (s *PostgresCartStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM cart_storage WHERE key = $1`, key); err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}
