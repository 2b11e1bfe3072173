package history

import (
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// History is an append-only log of board snapshots with a cursor for time-travel.
// Index 0 always holds the empty board of the current game.
type History struct {
	snapshots []entity.Board
	cursor    int
}

func New() *History {
	h := &History{}
	h.Reset()

	return h
}

// Append adds a snapshot at the end and moves the cursor onto it.
func (that *History) Append(board entity.Board) {
	that.snapshots = append(that.snapshots, board)
	that.cursor = len(that.snapshots) - 1
}

// MoveTo clamps index to the recorded range and moves the cursor there.
func (that *History) MoveTo(index int) {
	that.cursor = max(0, min(index, len(that.snapshots)-1))
}

// Back moves the cursor one snapshot towards the start.
func (that *History) Back() {
	that.MoveTo(that.cursor - 1)
}

// Forward moves the cursor one snapshot towards the latest.
func (that *History) Forward() {
	that.MoveTo(that.cursor + 1)
}

// Reset drops every snapshot and starts again from the empty board.
func (that *History) Reset() {
	that.snapshots = []entity.Board{entity.NewBoard()}
	that.cursor = 0
}

// Current returns the snapshot under the cursor.
func (that *History) Current() entity.Board {
	return that.snapshots[that.cursor]
}

// Latest returns the most recent snapshot.
func (that *History) Latest() entity.Board {
	return that.snapshots[len(that.snapshots)-1]
}

// At returns the snapshot at index, or false when index is out of range.
func (that *History) At(index int) (entity.Board, bool) {
	if index < 0 || index >= len(that.snapshots) {
		return entity.Board{}, false
	}

	return that.snapshots[index], true
}

func (that *History) Cursor() int {
	return that.cursor
}

func (that *History) Len() int {
	return len(that.snapshots)
}

// IsTimeTravelling reports whether the cursor is behind the latest snapshot.
func (that *History) IsTimeTravelling() bool {
	return that.cursor < len(that.snapshots)-1
}

func (that *History) CanStepBack() bool {
	return that.cursor > 0
}

func (that *History) CanStepForward() bool {
	return that.IsTimeTravelling()
}
