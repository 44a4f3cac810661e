package pkg

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// GenerateGameID returns a ULID so game ids sort by creation time.
func GenerateGameID() string {
	return ulid.Make().String()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GeneratePlayerID() string {
	return uuid.NewString()
}

// GenerateToken returns the opaque value kept in the caller's cookie.
func GenerateToken() string {
	return uuid.NewString()
}
