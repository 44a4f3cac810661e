package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/repository/storage/sqlite"
)

var ErrSessionNotFound = fmt.Errorf("session %w", apperror.ErrNotFound)

const (
	seatOwner    = "owner"
	seatOpponent = "opponent"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	SeatOpponent(ctx context.Context, sessionID string, seat entity.Seat) error
}

type dbSession struct {
	conn *sql.DB
}

func NewSessionRepository(conn *sql.DB) SessionRepository {
	return &dbSession{
		conn: conn,
	}
}

// Create stores the session with its owner and, when already filled, its second seat.
func (that *dbSession) Create(ctx context.Context, session *entity.Session) error {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // no-op after commit

	query := `INSERT INTO sessions (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`
	if _, err = tx.ExecContext(ctx, query, session.ID, session.Name, session.CreatedAt, session.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	if err = seatPlayer(ctx, tx, session.ID, seatOwner, session.Owner); err != nil {
		return err
	}

	if session.Opponent.Player != nil {
		if err = seatPlayer(ctx, tx, session.ID, seatOpponent, session.Opponent.Player); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}

	return nil
}

func (that *dbSession) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	session := &entity.Session{ID: id}

	query := `SELECT name, created_at, updated_at FROM sessions WHERE id = ?`

	err := that.conn.QueryRowContext(ctx, query, id).Scan(&session.Name, &session.CreatedAt, &session.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}

	query = `SELECT sp.seat, p.id, p.name, p.symbol, p.is_computer
		FROM session_players sp JOIN players p ON p.id = sp.player_id
		WHERE sp.session_id = ?`

	rows, err := that.conn.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session players: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			seat   string
			player entity.Player
		)

		if err = rows.Scan(&seat, &player.ID, &player.Name, &player.Symbol, &player.IsComputer); err != nil {
			return nil, fmt.Errorf("failed to scan session player: %w", err)
		}

		switch {
		case seat == seatOwner:
			session.Owner = &player
		case player.IsComputer:
			session.Opponent = entity.ComputerSeat(&player)
		default:
			session.Opponent = entity.HumanSeat(&player)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read session players: %w", err)
	}

	return session, nil
}

// SeatOpponent fills the second seat. A filled seat fails with apperror.ErrSessionFull,
// concurrent callers race on the (session_id, seat) constraint.
func (that *dbSession) SeatOpponent(ctx context.Context, sessionID string, seat entity.Seat) error {
	if seat.Player == nil {
		return fmt.Errorf("failed to seat opponent: %w", entity.ErrEmptySeat)
	}

	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // no-op after commit

	query := `UPDATE sessions SET updated_at = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, time.Now().UTC(), sessionID)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrSessionNotFound
	}

	if err = seatPlayer(ctx, tx, sessionID, seatOpponent, seat.Player); err != nil {
		if sqlite.IsUniqueViolation(err) {
			return apperror.ErrSessionFull
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seat: %w", err)
	}

	return nil
}

func seatPlayer(ctx context.Context, tx *sql.Tx, sessionID, seat string, player *entity.Player) error {
	query := `INSERT INTO players (id, name, symbol, is_computer) VALUES (?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, query, player.ID, player.Name, string(player.Symbol), player.IsComputer); err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}

	query = `INSERT INTO session_players (session_id, player_id, seat) VALUES (?, ?, ?)`
	if _, err := tx.ExecContext(ctx, query, sessionID, player.ID, seat); err != nil {
		return fmt.Errorf("failed to seat player: %w", err)
	}

	return nil
}
