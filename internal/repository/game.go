package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/codec"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/repository/storage/sqlite"
)

var ErrGameNotFound = fmt.Errorf("game %w", apperror.ErrNotFound)

const gameColumns = `id, session_id, board, num_symbols, active_player_id, winner_id,
	is_active, is_ended, version, created_at, updated_at`

type GameRepository interface {
	Start(ctx context.Context, game *entity.Game) error
	GetActive(ctx context.Context, sessionID string) (*entity.Game, error)
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	ListBySession(ctx context.Context, sessionID string) ([]*entity.Game, error)
	Update(ctx context.Context, game *entity.Game) error
	CountWins(ctx context.Context, playerID string) (int, error)
}

type dbGame struct {
	conn *sql.DB
}

func NewGameRepository(conn *sql.DB) GameRepository {
	return &dbGame{
		conn: conn,
	}
}

// Start closes the session's active game, if any, and stores game as the new active one.
func (that *dbGame) Start(ctx context.Context, game *entity.Game) error {
	board, err := codec.MarshalBoard(game.Board)
	if err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}

	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // no-op after commit

	query := `UPDATE games SET is_active = 0, is_ended = 1, version = version + 1, updated_at = ?
		WHERE session_id = ? AND is_active = 1`
	if _, err = tx.ExecContext(ctx, query, game.CreatedAt, game.SessionID); err != nil {
		return fmt.Errorf("failed to deactivate game: %w", err)
	}

	query = `INSERT INTO games (` + gameColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = tx.ExecContext(ctx, query,
		game.ID, game.SessionID, string(board), game.NumSymbols,
		nullString(game.ActivePlayerID), nullString(game.WinnerID),
		game.IsActive, game.IsEnded, game.Version, game.CreatedAt, game.UpdatedAt,
	)
	if sqlite.IsUniqueViolation(err) {
		return fmt.Errorf("%w: another game was started", apperror.ErrGameConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game: %w", err)
	}

	return nil
}

func (that *dbGame) GetActive(ctx context.Context, sessionID string) (*entity.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE session_id = ? AND is_active = 1`

	return scanGame(that.conn.QueryRowContext(ctx, query, sessionID))
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = ?`

	return scanGame(that.conn.QueryRowContext(ctx, query, id))
}

// ListBySession returns every game of the session, oldest first.
func (that *dbGame) ListBySession(ctx context.Context, sessionID string) ([]*entity.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE session_id = ? ORDER BY id`

	rows, err := that.conn.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var games []*entity.Game

	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}

		games = append(games, game)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read games: %w", err)
	}

	return games, nil
}

// Update writes the whole game if nobody changed it since it was read.
// On success game.Version is advanced; a stale version fails with apperror.ErrGameConflict.
func (that *dbGame) Update(ctx context.Context, game *entity.Game) error {
	board, err := codec.MarshalBoard(game.Board)
	if err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}

	query := `UPDATE games SET board = ?, num_symbols = ?, active_player_id = ?, winner_id = ?,
		is_active = ?, is_ended = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?`

	result, err := that.conn.ExecContext(ctx, query,
		string(board), game.NumSymbols, nullString(game.ActivePlayerID), nullString(game.WinnerID),
		game.IsActive, game.IsEnded, game.UpdatedAt,
		game.ID, game.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: game %s was changed concurrently", apperror.ErrGameConflict, game.ID)
	}

	game.Version++

	return nil
}

func (that *dbGame) CountWins(ctx context.Context, playerID string) (int, error) {
	var wins int

	query := `SELECT COUNT(*) FROM games WHERE winner_id = ?`
	if err := that.conn.QueryRowContext(ctx, query, playerID).Scan(&wins); err != nil {
		return 0, fmt.Errorf("failed to count wins: %w", err)
	}

	return wins, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*entity.Game, error) {
	var (
		game         entity.Game
		board        string
		activePlayer sql.NullString
		winner       sql.NullString
	)

	err := row.Scan(
		&game.ID, &game.SessionID, &board, &game.NumSymbols, &activePlayer, &winner,
		&game.IsActive, &game.IsEnded, &game.Version, &game.CreatedAt, &game.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan game: %w", err)
	}

	if game.Board, err = codec.UnmarshalBoard([]byte(board)); err != nil {
		return nil, fmt.Errorf("failed to decode board of game %s: %w", game.ID, err)
	}

	game.ActivePlayerID = activePlayer.String
	game.WinnerID = winner.String

	return &game, nil
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
