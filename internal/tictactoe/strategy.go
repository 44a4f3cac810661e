package tictactoe

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
)

type Priority string

const (
	// PriorityWinFirst completes the computer's own line before blocking the opponent.
	PriorityWinFirst Priority = "win-first"
	// PriorityBlockFirst blocks the opponent's line before completing its own.
	PriorityBlockFirst Priority = "block-first"
)

var ErrUnknownPriority = errors.New("unknown computer priority")

func ParsePriority(value string) (Priority, error) {
	switch priority := Priority(value); priority {
	case PriorityWinFirst, PriorityBlockFirst:
		return priority, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPriority, value)
	}
}

// Picker chooses one of the free slots when no line needs to be completed or blocked.
type Picker interface {
	Pick(slots []entity.Slot) entity.Slot
}

type PickerFunc func(slots []entity.Slot) entity.Slot

func (that PickerFunc) Pick(slots []entity.Slot) entity.Slot {
	return that(slots)
}

func RandomPicker() Picker {
	return PickerFunc(func(slots []entity.Slot) entity.Slot {
		return slots[rand.Intn(len(slots))] //nolint: gosec // it's ok
	})
}

func FirstFreePicker() Picker {
	return PickerFunc(func(slots []entity.Slot) entity.Slot {
		return slots[0]
	})
}

type Strategy struct {
	priority Priority
	picker   Picker
}

func NewStrategy(priority Priority, picker Picker) *Strategy {
	if picker == nil {
		picker = RandomPicker()
	}

	return &Strategy{
		priority: priority,
		picker:   picker,
	}
}

// NextMove selects the computer's move for board, where own is the computer's symbol.
func (that *Strategy) NextMove(board entity.Board, own, opponent entity.Symbol) (entity.Coords, error) {
	first, second := own, opponent
	if that.priority == PriorityBlockFirst {
		first, second = opponent, own
	}

	for _, symbol := range []entity.Symbol{first, second} {
		if coords, ok := completingSlot(board, symbol); ok {
			return coords, nil
		}
	}

	free := board.FreeSlots()
	if len(free) == 0 {
		return entity.Coords{}, apperror.ErrSlotNotAvailable
	}

	return that.picker.Pick(free).Coords, nil
}

// completingSlot finds the first series holding two symbols and a free slot.
func completingSlot(board entity.Board, symbol entity.Symbol) (entity.Coords, bool) {
	if symbol.IsEmpty() {
		return entity.Coords{}, false
	}

	for _, series := range board.Series() {
		if series.Count(symbol) != entity.BoardSize-1 {
			continue
		}

		if slot, ok := series.FirstFree(); ok {
			return slot.Coords, true
		}
	}

	return entity.Coords{}, false
}
