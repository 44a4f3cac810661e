package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	symbol TEXT NOT NULL,
	is_computer BOOLEAN NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS session_players (
	session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	player_id TEXT NOT NULL REFERENCES players(id) ON DELETE CASCADE,
	seat TEXT NOT NULL,
	PRIMARY KEY (session_id, player_id),
	UNIQUE (session_id, seat)
);

CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	board TEXT NOT NULL,
	num_symbols INTEGER NOT NULL DEFAULT 0,
	active_player_id TEXT REFERENCES players(id) ON DELETE SET NULL,
	winner_id TEXT REFERENCES players(id) ON DELETE CASCADE,
	is_active BOOLEAN NOT NULL DEFAULT 0,
	is_ended BOOLEAN NOT NULL DEFAULT 0,
	version INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_games_active_session ON games(session_id) WHERE is_active = 1;
CREATE INDEX IF NOT EXISTS idx_games_winner ON games(winner_id);
`

type Storage struct {
	Connection *sql.DB
}

// New opens the database file at path. Write transactions take the lock up front
// so concurrent writers wait on busy_timeout instead of failing mid-transaction.
func New(path string) (*Storage, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate", path)

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	if _, err := that.Connection.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("can't create tables: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}

// IsUniqueViolation reports whether err comes from a UNIQUE or PRIMARY KEY constraint.
func IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
