package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/apperror"
)

const BoardSize = 3

// Empty marks an unoccupied cell.
const Empty Symbol = ""

var ErrEmptySymbol = errors.New("empty symbol can't be placed")

// Symbol is a player's mark on the board.
type Symbol string

func (that Symbol) IsEmpty() bool {
	return that == Empty
}

func (that Symbol) String() string {
	return string(that)
}

type Coords struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Slot is a single cell of a series.
type Slot struct {
	Coords Coords
	Symbol Symbol
}

// Series is a row, a column or a diagonal of the board.
type Series [BoardSize]Slot

// Count returns how many slots of the series hold symbol.
func (that Series) Count(symbol Symbol) int {
	count := 0
	for _, slot := range that {
		if slot.Symbol == symbol {
			count++
		}
	}

	return count
}

// FirstFree returns the first empty slot in series order.
func (that Series) FirstFree() (Slot, bool) {
	for _, slot := range that {
		if slot.Symbol.IsEmpty() {
			return slot, true
		}
	}

	return Slot{}, false
}

// Board is a 3x3 grid stored row-major.
type Board [BoardSize][BoardSize]Symbol

func (that *Board) AddSymbol(row, col int, symbol Symbol) error {
	if !inRange(row) || !inRange(col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfRange, row, col)
	}

	if symbol.IsEmpty() {
		return ErrEmptySymbol
	}

	if !that[row][col].IsEmpty() {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrSlotTaken, row, col)
	}

	that[row][col] = symbol

	return nil
}

func (that Board) At(row, col int) Symbol {
	return that[row][col]
}

// Series returns rows, then columns, then the two diagonals.
func (that Board) Series() []Series {
	series := make([]Series, 0, 2*BoardSize+2)

	for row := 0; row < BoardSize; row++ {
		var s Series
		for col := 0; col < BoardSize; col++ {
			s[col] = that.slot(row, col)
		}
		series = append(series, s)
	}

	for col := 0; col < BoardSize; col++ {
		var s Series
		for row := 0; row < BoardSize; row++ {
			s[row] = that.slot(row, col)
		}
		series = append(series, s)
	}

	var diagonal, antiDiagonal Series
	for i := 0; i < BoardSize; i++ {
		diagonal[i] = that.slot(i, i)
		antiDiagonal[i] = that.slot(i, BoardSize-1-i)
	}

	return append(series, diagonal, antiDiagonal)
}

func (that Board) HasSeriesComplete(symbol Symbol) bool {
	if symbol.IsEmpty() {
		return false
	}

	for _, series := range that.Series() {
		if series.Count(symbol) == BoardSize {
			return true
		}
	}

	return false
}

func (that Board) IsFull() bool {
	return len(that.FreeSlots()) == 0
}

// FreeSlots returns the empty slots in row-major order.
func (that Board) FreeSlots() []Slot {
	var free []Slot
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that[row][col].IsEmpty() {
				free = append(free, that.slot(row, col))
			}
		}
	}

	return free
}

func (that Board) slot(row, col int) Slot {
	return Slot{Coords: Coords{Row: row, Col: col}, Symbol: that[row][col]}
}

func inRange(i int) bool {
	return i >= 0 && i < BoardSize
}
