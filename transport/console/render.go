package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Renderer draws views and errors for the player.
type Renderer interface {
	RenderView(w io.Writer, gameID string, view game.View) error
	RenderError(w io.Writer, err error) error
}

func NewRenderer(format string) (Renderer, error) {
	switch format {
	case FormatText, "":
		return textRenderer{}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: format %q", ErrBadArgument, format)
	}
}

type textRenderer struct{}

// RenderView - draws the board, the banner and the history controls.
// Empty cells show their index; winning cells are wrapped in brackets.
func (textRenderer) RenderView(w io.Writer, _ string, view game.View) error {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			cell := row*3 + col
			cells[col] = renderCell(view, cell)
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
	}

	sb.WriteString(banner(view))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "move %d/%d", view.Cursor, view.Moves)
	if view.TimeTravelling {
		sb.WriteString(" (history)")
	}
	fmt.Fprintf(&sb, "  back: %s  forward: %s\n", yesNo(view.CanStepBack), yesNo(view.CanStepForward))

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write view: %w", err)
	}

	return nil
}

func (textRenderer) RenderError(w io.Writer, err error) error {
	if _, writeErr := fmt.Fprintf(w, "error: %s\n", err); writeErr != nil {
		return fmt.Errorf("failed to write error: %w", writeErr)
	}

	return nil
}

func renderCell(view game.View, cell int) string {
	symbol := view.Board[cell]

	switch {
	case view.IsHighlighted(cell):
		return "[" + string(symbol) + "]"
	case symbol == entity.EmptyCell:
		return " " + strconv.Itoa(cell) + " "
	default:
		return " " + string(symbol) + " "
	}
}

// banner - the outcome line shown under the board.
func banner(view game.View) string {
	switch {
	case view.Winner.Exists:
		return "Winner: " + string(view.Winner.PlayedSymbol)
	case view.Tied:
		return "Tie!"
	default:
		return "Next: " + string(view.NextSymbol)
	}
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

type jsonRenderer struct{}

func (jsonRenderer) RenderView(w io.Writer, gameID string, view game.View) error {
	return writeJSON(w, Response{GameID: gameID, Game: &view})
}

func (jsonRenderer) RenderError(w io.Writer, err error) error {
	return writeJSON(w, Response{Error: err.Error()})
}

func writeJSON(w io.Writer, response Response) error {
	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	return nil
}
