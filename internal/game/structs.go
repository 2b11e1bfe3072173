package game

import "github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusTied       Status = "tied"
)

// View is everything a renderer needs to draw one game.
type View struct {
	Board          entity.Board  `json:"board"`
	Winner         entity.Winner `json:"winner"`
	Status         Status        `json:"status"`
	NextSymbol     entity.Symbol `json:"next_symbol,omitempty"`
	Cursor         int           `json:"cursor"`
	Moves          int           `json:"moves"`
	CanStepBack    bool          `json:"can_step_back"`
	CanStepForward bool          `json:"can_step_forward"`
	TimeTravelling bool          `json:"time_travelling"`
	Tied           bool          `json:"tied"`
}

// IsHighlighted reports whether cell should be drawn as part of the winning line.
// Highlighting is suppressed while viewing a past snapshot.
func (that View) IsHighlighted(cell int) bool {
	return !that.TimeTravelling && that.Winner.Exists && that.Winner.Sequence.Contains(cell)
}
