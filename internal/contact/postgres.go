package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/arifmahmud/sheetboard/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS contact_submissions (
	id          SERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	message     TEXT NOT NULL,
	received_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const insertSubmissionSQL = `
INSERT INTO contact_submissions (name, email, message, received_at)
VALUES (:name, :email, :message, :received_at)`

// PostgresStore inserts submissions into a contact_submissions table.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects to Postgres and makes sure the table exists.
func NewPostgresStore(cfg *config.DatabaseConfig) (*PostgresStore, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure contact_submissions table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Save(ctx context.Context, s Submission) error {
	if _, err := p.db.NamedExecContext(ctx, insertSubmissionSQL, s); err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}
