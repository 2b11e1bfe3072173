package usecase

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
)

// GameManager keeps one independent game per session ID in memory.
type GameManager struct {
	logger *slog.Logger

	mu    sync.Mutex
	games map[string]*game.Game
}

func NewGameManager(logger *slog.Logger) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		games:  make(map[string]*game.Game),
	}
}

// CreateGame starts a new session and returns its ID with the initial view.
func (that *GameManager) CreateGame() (string, game.View) {
	gameID := uuid.NewString()
	g := game.NewGame()

	that.mu.Lock()
	that.games[gameID] = g
	that.mu.Unlock()

	that.logger.Info("game created", "gameID", gameID)

	return gameID, g.View()
}

// Play makes a move in the game. Ignored moves are logged and return the unchanged view.
func (that *GameManager) Play(gameID string, cell int) (game.View, error) {
	log := that.logger.With("method", "Play", "gameID", gameID, "cell", cell)

	g, err := that.getGameByID(gameID)
	if err != nil {
		return game.View{}, err
	}

	applied, err := g.Play(cell)
	if err != nil {
		return game.View{}, fmt.Errorf("failed to make move: %w", err)
	}

	view := g.View()
	if !applied {
		log.Debug("move ignored", "status", view.Status, "timeTravelling", view.TimeTravelling)
		return view, nil
	}

	log.Info("move played", "status", view.Status, "moves", view.Moves)
	if view.Winner.Exists {
		log.Info("game won", "winner", view.Winner.PlayedSymbol, "sequence", view.Winner.Sequence.Name)
	}

	return view, nil
}

func (that *GameManager) StepBack(gameID string) (game.View, error) {
	g, err := that.getGameByID(gameID)
	if err != nil {
		return game.View{}, err
	}

	g.StepBack()

	view := g.View()
	that.logger.Debug("stepped back", "gameID", gameID, "cursor", view.Cursor)

	return view, nil
}

func (that *GameManager) StepForward(gameID string) (game.View, error) {
	g, err := that.getGameByID(gameID)
	if err != nil {
		return game.View{}, err
	}

	g.StepForward()

	view := g.View()
	that.logger.Debug("stepped forward", "gameID", gameID, "cursor", view.Cursor)

	return view, nil
}

func (that *GameManager) Reset(gameID string) (game.View, error) {
	g, err := that.getGameByID(gameID)
	if err != nil {
		return game.View{}, err
	}

	g.Reset()
	that.logger.Info("game reset", "gameID", gameID)

	return g.View(), nil
}

// View returns the current view of the game without changing it.
func (that *GameManager) View(gameID string) (game.View, error) {
	g, err := that.getGameByID(gameID)
	if err != nil {
		return game.View{}, err
	}

	return g.View(), nil
}

// DeleteGame drops the session. Deleting an unknown ID returns ErrGameNotFound.
func (that *GameManager) DeleteGame(gameID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[gameID]; !ok {
		return fmt.Errorf("%w: id %s", apperror.ErrGameNotFound, gameID)
	}

	delete(that.games, gameID)
	that.logger.Info("game deleted", "gameID", gameID)

	return nil
}

func (that *GameManager) getGameByID(gameID string) (*game.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	g, ok := that.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", apperror.ErrGameNotFound, gameID)
	}

	return g, nil
}
