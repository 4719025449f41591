package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/murkotick/menswear-storefront/internal/models/m_kv"
	"github.com/murkotick/menswear-storefront/internal/pkg/committer"
)

// PostgresBackend stores entries in a kv_entries table with a JSONB value.
type PostgresBackend struct {
	db *sql.DB
}

func NewPostgresBackend(db *sql.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

// OpenPostgres connects, pings and ensures the table exists.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresBackend, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("kvstore: open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("kvstore: ping postgres: %w", err)
	}
	b := NewPostgresBackend(db)
	if err := b.InitializeTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

// InitializeTables is idempotent.
func (p *PostgresBackend) InitializeTables(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			%s TEXT PRIMARY KEY,
			%s JSONB NOT NULL,
			%s TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, m_kv.TableName, m_kv.ColKey, m_kv.ColValue, m_kv.ColUpdatedAt))
	if err != nil {
		return fmt.Errorf("kvstore: create %s: %w", m_kv.TableName, err)
	}
	return nil
}

func (p *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, m_kv.ColValue, m_kv.TableName, m_kv.ColKey)
	err := p.db.QueryRowContext(ctx, q, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (p *PostgresBackend) Apply(ctx context.Context, plan *committer.Plan) error {
	if plan.IsEmpty() {
		return nil
	}
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	q := fmt.Sprintf(`INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s) VALUES ($1, $2, NOW())
		ON CONFLICT (%[2]s) DO UPDATE SET %[3]s = EXCLUDED.%[3]s, %[4]s = NOW()`,
		m_kv.TableName, m_kv.ColKey, m_kv.ColValue, m_kv.ColUpdatedAt)
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range plan.Writes() {
		if _, err := stmt.ExecContext(ctx, w.Key, string(w.Value)); err != nil {
			return fmt.Errorf("upsert %s: %w", w.Key, err)
		}
	}
	return tx.Commit()
}

func (p *PostgresBackend) Close() error {
	return p.db.Close()
}
