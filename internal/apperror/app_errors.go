package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange       = errors.New("slot is out of range")
	ErrSlotTaken        = errors.New("slot is already taken")
	ErrSlotNotAvailable = errors.New("no slot available")

	// ErrMoveRejected groups ErrOutOfRange and ErrSlotTaken for callers.
	ErrMoveRejected = errors.New("move rejected")

	ErrGameConflict = errors.New("could not update game")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrGameNotModifiable = fmt.Errorf("%w: game is not modifiable", ErrGameConflict)
	ErrSessionFull       = fmt.Errorf("%w: session is already full", ErrGameConflict)
	ErrSessionNotReady   = fmt.Errorf("%w: session is not ready", ErrGameConflict)
	ErrNotYourTurn       = fmt.Errorf("%w: it's not your turn", ErrGameConflict)
)
