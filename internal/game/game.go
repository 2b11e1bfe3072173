package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/history"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

// Game owns the board history, the winner and the turn of one session.
type Game struct {
	history    *history.History
	lastPlayed entity.Symbol
	winner     entity.Winner
	status     Status
}

func NewGame() *Game {
	g := &Game{history: history.New()}
	g.Reset()

	return g
}

// Play puts the next symbol into cell.
// Illegal moves are ignored and reported with applied=false and a nil error;
// only a cell outside the board is an error.
func (that *Game) Play(cell int) (bool, error) {
	if !entity.IsValidCell(cell) {
		return false, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.status != StatusInProgress {
		return false, nil
	}

	board := that.history.Current()
	if !tictactoe.CanPlay(cell, board, !that.history.IsTimeTravelling(), that.winner.Exists) {
		return false, nil
	}

	played := that.lastPlayed.Toggle()
	that.lastPlayed = played

	next := board.With(cell, played)
	that.history.Append(next)

	that.updateStatus(played, next)

	return true, nil
}

// StepBack moves the view one snapshot back, stopping at the empty board.
func (that *Game) StepBack() {
	that.history.Back()
}

// StepForward moves the view one snapshot forward, stopping at the latest move.
func (that *Game) StepForward() {
	that.history.Forward()
}

// Reset starts a new game with X to play.
func (that *Game) Reset() {
	that.history.Reset()
	that.lastPlayed = entity.SymbolO
	that.winner = entity.Winner{}
	that.status = StatusInProgress
}

func (that *Game) Status() Status {
	return that.status
}

func (that *Game) Winner() entity.Winner {
	return that.winner
}

// View returns the state to render. Status and tie are taken from the latest
// snapshot so that looking at the past never changes the outcome.
func (that *Game) View() View {
	view := View{
		Board:          that.history.Current(),
		Winner:         that.winner,
		Status:         that.status,
		Cursor:         that.history.Cursor(),
		Moves:          that.history.Len() - 1,
		CanStepBack:    that.history.CanStepBack(),
		CanStepForward: that.history.CanStepForward(),
		TimeTravelling: that.history.IsTimeTravelling(),
		Tied:           that.status == StatusTied,
	}

	if that.status == StatusInProgress {
		view.NextSymbol = that.lastPlayed.Toggle()
	}

	return view
}

// updateStatus - classifies the game after symbol was written into board.
func (that *Game) updateStatus(symbol entity.Symbol, board entity.Board) {
	if sequence, ok := tictactoe.DetectWin(symbol, board); ok {
		that.winner = entity.NewWinner(symbol, sequence)
		that.status = StatusWon
		return
	}

	if !tictactoe.HasAnyAvailableMove(board) {
		that.status = StatusTied
	}
}
