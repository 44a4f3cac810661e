package entity

import (
	"errors"
	"time"
)

const (
	ModeHuman    = "human"
	ModeComputer = "computer"
)

var ErrEmptySeat = errors.New("seat has no player")

type SeatKind int

const (
	SeatEmpty SeatKind = iota
	SeatHuman
	SeatComputer
)

func (that SeatKind) String() string {
	switch that {
	case SeatHuman:
		return "human"
	case SeatComputer:
		return "computer"
	default:
		return "empty"
	}
}

// Seat is the second place of a session. Player is nil while the seat is empty.
type Seat struct {
	Kind   SeatKind
	Player *Player
}

func HumanSeat(player *Player) Seat {
	return Seat{Kind: SeatHuman, Player: player}
}

func ComputerSeat(player *Player) Seat {
	return Seat{Kind: SeatComputer, Player: player}
}

type Session struct {
	ID        string
	Name      string
	Owner     *Player
	Opponent  Seat
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSession(id, name string, owner *Player) *Session {
	now := time.Now().UTC()

	return &Session{
		ID:        id,
		Name:      name,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (that *Session) IsReady() bool {
	return that.Opponent.Kind != SeatEmpty
}

func (that *Session) HasComputer() bool {
	return that.Opponent.Kind == SeatComputer
}

func (that *Session) IsOwner(playerID string) bool {
	return that.Owner != nil && that.Owner.ID == playerID
}

// Player returns the seated player with the given id.
func (that *Session) Player(playerID string) (*Player, bool) {
	for _, player := range that.Players() {
		if player.ID == playerID {
			return player, true
		}
	}

	return nil, false
}

// Players returns the seated players, owner first.
func (that *Session) Players() []*Player {
	players := make([]*Player, 0, 2)
	if that.Owner != nil {
		players = append(players, that.Owner)
	}

	if that.Opponent.Player != nil {
		players = append(players, that.Opponent.Player)
	}

	return players
}

// OtherPlayer returns the seated player that is not playerID.
func (that *Session) OtherPlayer(playerID string) *Player {
	for _, player := range that.Players() {
		if player.ID != playerID {
			return player
		}
	}

	return nil
}
