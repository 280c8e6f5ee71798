package repository

import (
	"context"
	"database/sql"
	"fmt"

	model "auction-gateway/internal/models"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// SQLiteRepo persists the session fields in a SQLite file
type SQLiteRepo struct {
	conn *sql.DB
}

// NewSQLiteRepo opens the database at path and runs migrations.
// ":memory:" keeps the session for the lifetime of the process only.
func NewSQLiteRepo(path string) (*SQLiteRepo, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db %s: %w", path, err)
	}
	// a single connection keeps ":memory:" databases shared
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping session db %s: %w", path, err)
	}

	repo := &SQLiteRepo{conn: conn}
	if err := repo.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepo) migrate() error {
	_, err := r.conn.Exec(`CREATE TABLE IF NOT EXISTS session_fields (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("migrate session db: %w", err)
	}
	return nil
}

// Load returns the stored session, empty when nothing is stored
func (r *SQLiteRepo) Load(ctx context.Context) (model.Session, error) {
	rows, err := r.conn.QueryContext(ctx, "SELECT key, value FROM session_fields")
	if err != nil {
		return model.Session{}, fmt.Errorf("load session: %w", err)
	}
	defer rows.Close()

	fields := make(map[string]string, 3)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return model.Session{}, fmt.Errorf("scan session field: %w", err)
		}
		fields[key] = value
	}
	if err := rows.Err(); err != nil {
		return model.Session{}, fmt.Errorf("load session: %w", err)
	}
	return decodeFields(fields)
}

// Save replaces all three fields in one transaction
func (r *SQLiteRepo) Save(ctx context.Context, session model.Session) error {
	fields, err := encodeFields(session)
	if err != nil {
		return err
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM session_fields"); err != nil {
			return err
		}
		for key, value := range fields {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO session_fields (key, value) VALUES (?, ?)",
				key, value,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear removes all three fields
func (r *SQLiteRepo) Clear(ctx context.Context) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM session_fields")
		return err
	})
}

// Close releases the database handle
func (r *SQLiteRepo) Close() error {
	return r.conn.Close()
}

func (r *SQLiteRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin session tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("write session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}
