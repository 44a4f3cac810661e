// Package codec converts symbols and boards to the representation used on the
// wire and in storage: a 3x3 row-major array of nullable one-character tokens.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-sessions/internal/entity"
)

var (
	ErrInvalidGrid   = errors.New("board must be a 3x3 grid")
	ErrInvalidSymbol = errors.New("symbol token must be a single character")
)

// Grid is a board as nested rows of nullable symbol tokens.
type Grid [][]*string

// EncodeSymbol returns nil for an empty cell.
func EncodeSymbol(symbol entity.Symbol) *string {
	if symbol.IsEmpty() {
		return nil
	}

	token := symbol.String()

	return &token
}

func DecodeSymbol(token *string) (entity.Symbol, error) {
	if token == nil {
		return entity.Empty, nil
	}

	if utf8.RuneCountInString(*token) != 1 {
		return entity.Empty, fmt.Errorf("%w: %q", ErrInvalidSymbol, *token)
	}

	return entity.Symbol(*token), nil
}

func EncodeBoard(board entity.Board) Grid {
	grid := make(Grid, entity.BoardSize)
	for row := 0; row < entity.BoardSize; row++ {
		grid[row] = make([]*string, entity.BoardSize)
		for col := 0; col < entity.BoardSize; col++ {
			grid[row][col] = EncodeSymbol(board.At(row, col))
		}
	}

	return grid
}

func DecodeBoard(grid Grid) (entity.Board, error) {
	var board entity.Board

	if len(grid) != entity.BoardSize {
		return board, fmt.Errorf("%w: got %d rows", ErrInvalidGrid, len(grid))
	}

	for row, cells := range grid {
		if len(cells) != entity.BoardSize {
			return board, fmt.Errorf("%w: row %d has %d cells", ErrInvalidGrid, row, len(cells))
		}

		for col, token := range cells {
			symbol, err := DecodeSymbol(token)
			if err != nil {
				return board, fmt.Errorf("cell (%d, %d): %w", row, col, err)
			}

			board[row][col] = symbol
		}
	}

	return board, nil
}

// MarshalBoard renders the board as JSON text, e.g. [[null,"X",null],...].
func MarshalBoard(board entity.Board) ([]byte, error) {
	data, err := json.Marshal(EncodeBoard(board))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board: %w", err)
	}

	return data, nil
}

func UnmarshalBoard(data []byte) (entity.Board, error) {
	var grid Grid
	if err := json.Unmarshal(data, &grid); err != nil {
		return entity.Board{}, fmt.Errorf("failed to unmarshal board: %w", err)
	}

	return DecodeBoard(grid)
}
