package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectWin(t *testing.T) {
	t.Run("Empty board has no winner", func(t *testing.T) {
		// Given: an empty board
		board := entity.NewBoard()

		// When: checking both symbols
		_, xWins := DetectWin(entity.SymbolX, board)
		_, oWins := DetectWin(entity.SymbolO, board)

		// Then: nobody wins
		assert.False(t, xWins)
		assert.False(t, oWins)
	})

	t.Run("Every fixed line is detected", func(t *testing.T) {
		for _, combo := range entity.WinCombos {
			t.Run(combo.Name, func(t *testing.T) {
				// Given: a board where only the line holds X
				board := entity.NewBoard()
				for _, position := range combo.Positions {
					board[position] = entity.SymbolX
				}

				// When: checking for X
				sequence, ok := DetectWin(entity.SymbolX, board)

				// Then: exactly that line is reported
				require.True(t, ok)
				assert.Equal(t, combo, sequence)

				// And: O is not a winner on the same board
				_, ok = DetectWin(entity.SymbolO, board)
				assert.False(t, ok)
			})
		}
	})

	t.Run("First matching line in check order wins", func(t *testing.T) {
		// Given: X holds both the first row and the first column
		board := entity.Board{
			entity.SymbolX, entity.SymbolX, entity.SymbolX,
			entity.SymbolX, entity.SymbolO, entity.SymbolO,
			entity.SymbolX, entity.SymbolO, entity.SymbolO,
		}

		// When: checking for X
		sequence, ok := DetectWin(entity.SymbolX, board)

		// Then: rows are checked before columns
		require.True(t, ok)
		assert.Equal(t, entity.FirstRow, sequence.Name)
	})

	t.Run("Backward diagonal is checked before forward diagonal", func(t *testing.T) {
		// Given: X holds both diagonals
		board := entity.Board{
			entity.SymbolX, entity.SymbolO, entity.SymbolX,
			entity.SymbolO, entity.SymbolX, entity.SymbolO,
			entity.SymbolX, entity.SymbolO, entity.SymbolX,
		}

		// When: checking for X
		sequence, ok := DetectWin(entity.SymbolX, board)

		// Then: the backward diagonal is reported
		require.True(t, ok)
		assert.Equal(t, entity.BackwardDiagonal, sequence.Name)
		assert.Equal(t, [3]int{2, 4, 6}, sequence.Positions)
	})

	t.Run("Mixed line is not a win", func(t *testing.T) {
		// Given: a full board without any line
		board := entity.Board{
			entity.SymbolX, entity.SymbolX, entity.SymbolO,
			entity.SymbolO, entity.SymbolO, entity.SymbolX,
			entity.SymbolX, entity.SymbolO, entity.SymbolX,
		}

		// Then: neither symbol wins
		_, xWins := DetectWin(entity.SymbolX, board)
		_, oWins := DetectWin(entity.SymbolO, board)
		assert.False(t, xWins)
		assert.False(t, oWins)
	})

	t.Run("Empty symbol never wins", func(t *testing.T) {
		_, ok := DetectWin(entity.EmptyCell, entity.NewBoard())

		assert.False(t, ok)
	})
}

func TestCanPlay(t *testing.T) {
	t.Run("Empty cell at the latest snapshot is legal", func(t *testing.T) {
		assert.True(t, CanPlay(0, entity.NewBoard(), true, false))
	})

	t.Run("Occupied cell is rejected regardless of other state", func(t *testing.T) {
		// Given: a board where cell 0 is taken
		board := entity.NewBoard().With(0, entity.SymbolX)

		// Then: every combination of cursor and winner rejects the move
		for _, atLatest := range []bool{true, false} {
			for _, winnerExists := range []bool{true, false} {
				assert.False(t, CanPlay(0, board, atLatest, winnerExists))
			}
		}
	})

	t.Run("Time-travelling is rejected", func(t *testing.T) {
		// Given: the cursor is behind the latest snapshot
		// Then: even an empty cell cannot be played
		assert.False(t, CanPlay(4, entity.NewBoard(), false, false))
	})

	t.Run("Finished game is rejected", func(t *testing.T) {
		assert.False(t, CanPlay(4, entity.NewBoard(), true, true))
	})
}

func TestIsPartOfWinningSequence(t *testing.T) {
	t.Run("No winner highlights nothing", func(t *testing.T) {
		for position := 0; position < entity.BoardSize; position++ {
			assert.False(t, IsPartOfWinningSequence(entity.Winner{}, position))
		}
	})

	t.Run("Only the winning line is highlighted", func(t *testing.T) {
		// Given: X won on the second column
		winner := entity.NewWinner(entity.SymbolX, entity.WinCombos[4])

		// Then: positions 1, 4 and 7 are highlighted
		var highlighted []int
		for position := 0; position < entity.BoardSize; position++ {
			if IsPartOfWinningSequence(winner, position) {
				highlighted = append(highlighted, position)
			}
		}

		assert.Equal(t, []int{1, 4, 7}, highlighted)
	})
}

func TestHasAnyAvailableMove(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		assert.True(t, HasAnyAvailableMove(entity.NewBoard()))
	})

	t.Run("Full board", func(t *testing.T) {
		board := entity.Board{
			entity.SymbolO, entity.SymbolX, entity.SymbolO,
			entity.SymbolO, entity.SymbolX, entity.SymbolX,
			entity.SymbolX, entity.SymbolO, entity.SymbolX,
		}

		assert.False(t, HasAnyAvailableMove(board))
	})
}
