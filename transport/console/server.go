package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
)

type gameManager interface {
	CreateGame() (string, game.View)
	DeleteGame(gameID string) error

	Play(gameID string, cell int) (game.View, error)
	StepBack(gameID string) (game.View, error)
	StepForward(gameID string) (game.View, error)
	Reset(gameID string) (game.View, error)
	View(gameID string) (game.View, error)
}

type handlerFunc func(session *session, message *Message) (game.View, error)

// session is the state of one console connection.
type session struct {
	gameID string
	out    io.Writer
}

type Server struct {
	logger   *slog.Logger
	manager  gameManager
	renderer Renderer
	prompt   string
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, manager gameManager, renderer Renderer, prompt string) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		manager:  manager,
		renderer: renderer,
		prompt:   prompt,
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionPlay] = server.handlePlay
	server.handlers[actionBack] = server.handleStepBack
	server.handlers["<"] = server.handleStepBack
	server.handlers[actionForward] = server.handleStepForward
	server.handlers[">"] = server.handleStepForward
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionShow] = server.handleShow
	server.handlers[actionNew] = server.handleNewGame

	return server
}

// Start - runs one game session reading commands from in until quit, EOF or ctx is done.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	gameID, view := that.manager.CreateGame()
	sess := &session{gameID: gameID, out: out}

	defer func() {
		if err := that.manager.DeleteGame(sess.gameID); err != nil {
			log.Error("failed to delete game", "error", err)
		}
	}()

	if err := that.renderer.RenderView(out, sess.gameID, view); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		that.writePrompt(out)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			return nil
		}

		quit, err := that.handleLine(sess, scanner.Text())
		if err != nil {
			return err
		}

		if quit {
			log.Info("session closed", "gameID", sess.gameID)
			return nil
		}
	}
}

// handleLine - processes one input line. User mistakes are rendered, not returned.
func (that *Server) handleLine(sess *session, line string) (bool, error) {
	log := that.logger.With("method", "handleLine", "gameID", sess.gameID)

	message, ok, err := parseMessage(line)
	if err != nil {
		log.Debug("failed to parse message", "error", err)
		return false, that.renderer.RenderError(sess.out, err)
	}

	if !ok {
		return false, nil
	}

	switch message.Action {
	case actionQuit, "exit":
		return true, nil
	case actionHelp:
		_, err = io.WriteString(sess.out, helpText)
		return false, err
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Debug("unknown action", "action", message.Action)
		return false, that.renderer.RenderError(sess.out, fmt.Errorf("%w: %s", apperror.ErrUnknownCommand, message.Action))
	}

	view, err := handler(sess, message)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidCell) || errors.Is(err, ErrBadArgument) {
			return false, that.renderer.RenderError(sess.out, err)
		}

		log.Error("error processing message", "action", message.Action, "error", err)
		return false, err
	}

	return false, that.renderer.RenderView(sess.out, sess.gameID, view)
}

func (that *Server) writePrompt(out io.Writer) {
	if that.prompt == "" {
		return
	}

	if _, err := io.WriteString(out, that.prompt); err != nil {
		that.logger.Debug("failed to write prompt", "error", err)
	}
}
