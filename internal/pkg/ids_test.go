package pkg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	first := GenerateGameID()
	second := GenerateGameID()

	_, err := ulid.ParseStrict(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, first[:10], second[:10], "timestamp prefix is monotonic")
}

func TestGenerateUUIDs(t *testing.T) {
	for _, id := range []string{GenerateSessionID(), GeneratePlayerID(), GenerateToken()} {
		assert.NoError(t, uuid.Validate(id), id)
	}
}
