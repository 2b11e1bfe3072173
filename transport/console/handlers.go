package console

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
)

const (
	actionPlay    = "play"
	actionBack    = "back"
	actionForward = "forward"
	actionReset   = "reset"
	actionShow    = "show"
	actionNew     = "new"
	actionHelp    = "help"
	actionQuit    = "quit"
)

const helpText = `commands:
  play N | N   put the next symbol into cell N (0-8)
  back | <     view the previous move
  forward | >  view the next move
  reset        start the game over
  new          start a new game session
  show         draw the board again
  help         show this help
  quit         leave
`

func (that *Server) handlePlay(sess *session, message *Message) (game.View, error) {
	cell, err := message.cell()
	if err != nil {
		return game.View{}, err
	}

	view, err := that.manager.Play(sess.gameID, cell)
	if err != nil {
		return game.View{}, fmt.Errorf("failed to play: %w", err)
	}

	return view, nil
}

func (that *Server) handleStepBack(sess *session, _ *Message) (game.View, error) {
	return that.manager.StepBack(sess.gameID)
}

func (that *Server) handleStepForward(sess *session, _ *Message) (game.View, error) {
	return that.manager.StepForward(sess.gameID)
}

func (that *Server) handleReset(sess *session, _ *Message) (game.View, error) {
	return that.manager.Reset(sess.gameID)
}

func (that *Server) handleShow(sess *session, _ *Message) (game.View, error) {
	return that.manager.View(sess.gameID)
}

// handleNewGame - drops the current session and starts a fresh one.
func (that *Server) handleNewGame(sess *session, _ *Message) (game.View, error) {
	if err := that.manager.DeleteGame(sess.gameID); err != nil {
		return game.View{}, fmt.Errorf("failed to delete game: %w", err)
	}

	gameID, view := that.manager.CreateGame()
	sess.gameID = gameID

	return view, nil
}
