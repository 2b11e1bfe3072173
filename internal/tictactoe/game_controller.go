package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// DetectWin - returns the first line of WinCombos fully held by symbol.
func DetectWin(symbol entity.Symbol, board entity.Board) (entity.WinningSequence, bool) {
	if symbol.IsEmpty() {
		return entity.WinningSequence{}, false
	}

	for _, combo := range entity.WinCombos {
		a, b, c := board[combo.Positions[0]], board[combo.Positions[1]], board[combo.Positions[2]]
		if a == symbol && b == symbol && c == symbol {
			return combo, true
		}
	}

	return entity.WinningSequence{}, false
}

// CanPlay - checks if a move into cell is legal.
// Moves are rejected on an occupied cell, while viewing a past snapshot, or once the game has a winner.
func CanPlay(cell int, board entity.Board, cursorAtLatest, winnerExists bool) bool {
	if board.IsOccupied(cell) {
		return false
	}

	if !cursorAtLatest {
		return false
	}

	return !winnerExists
}

// IsPartOfWinningSequence - reports whether position belongs to the winner's line.
func IsPartOfWinningSequence(winner entity.Winner, position int) bool {
	return winner.Exists && winner.Sequence.Name != "" && winner.Sequence.Contains(position)
}

// HasAnyAvailableMove - reports whether at least one cell is still empty.
func HasAnyAvailableMove(board entity.Board) bool {
	return !board.IsFull()
}
