package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_IsReady(t *testing.T) {
	owner := NewPlayer("p1", "John Doe", symbolX)

	t.Run("Not ready with an empty second seat", func(t *testing.T) {
		session := NewSession("s1", "My Board", owner)

		assert.False(t, session.IsReady())
		assert.False(t, session.HasComputer())
		assert.Len(t, session.Players(), 1)
	})

	t.Run("Ready once a human joins", func(t *testing.T) {
		session := NewSession("s1", "My Board", owner)
		session.Opponent = HumanSeat(NewPlayer("p2", "Jane Doe", symbolO))

		assert.True(t, session.IsReady())
		assert.False(t, session.HasComputer())
	})

	t.Run("Ready with a computer seat", func(t *testing.T) {
		session := NewSession("s1", "My Board", owner)
		session.Opponent = ComputerSeat(NewComputerPlayer("c1", "Computer", symbolO))

		assert.True(t, session.IsReady())
		assert.True(t, session.HasComputer())
	})
}

func TestSession_Players(t *testing.T) {
	owner := NewPlayer("p1", "John Doe", symbolX)
	opponent := NewPlayer("p2", "Jane Doe", symbolO)
	session := NewSession("s1", "My Board", owner)
	session.Opponent = HumanSeat(opponent)

	assert.Equal(t, []*Player{owner, opponent}, session.Players())
	assert.True(t, session.IsOwner("p1"))
	assert.False(t, session.IsOwner("p2"))

	player, ok := session.Player("p2")
	require.True(t, ok)
	assert.Equal(t, opponent, player)

	_, ok = session.Player("unknown")
	assert.False(t, ok)

	assert.Equal(t, opponent, session.OtherPlayer("p1"))
	assert.Equal(t, owner, session.OtherPlayer("p2"))
}

func TestSeatKind_String(t *testing.T) {
	assert.Equal(t, "empty", SeatEmpty.String())
	assert.Equal(t, "human", SeatHuman.String())
	assert.Equal(t, "computer", SeatComputer.String())
}
