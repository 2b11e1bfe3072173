package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
)

var ErrBadArgument = errors.New("bad argument")

// Message is one command read from the input. Lines are either plain text
// ("play 4") or JSON ({"action":"play","payload":{"cell":4}}).
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`

	args []string
}

type PlayPayload struct {
	Cell *int `json:"cell"`
}

// Response is what the JSON renderer writes for every command.
type Response struct {
	GameID string     `json:"game_id,omitempty"`
	Game   *game.View `json:"game,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// parseMessage - turns an input line into a Message. Empty lines give ok=false.
func parseMessage(line string) (*Message, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false, nil
	}

	if strings.HasPrefix(line, "{") {
		var message Message
		if err := json.Unmarshal([]byte(line), &message); err != nil {
			return nil, false, fmt.Errorf("failed to unmarshal message: %w", err)
		}

		message.Action = strings.ToLower(strings.TrimSpace(message.Action))

		return &message, true, nil
	}

	fields := strings.Fields(line)
	message := &Message{
		Action: strings.ToLower(fields[0]),
		args:   fields[1:],
	}

	// a bare number is a shortcut for "play N"
	if _, err := strconv.Atoi(message.Action); err == nil {
		message.args = []string{message.Action}
		message.Action = actionPlay
	}

	return message, true, nil
}

// cell - extracts the cell index of a play command.
func (that *Message) cell() (int, error) {
	if len(that.Payload) > 0 {
		var payload PlayPayload
		if err := json.Unmarshal(that.Payload, &payload); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBadArgument, err)
		}

		if payload.Cell == nil {
			return 0, fmt.Errorf("%w: cell is required", ErrBadArgument)
		}

		return *payload.Cell, nil
	}

	if len(that.args) != 1 {
		return 0, fmt.Errorf("%w: play needs exactly one cell", ErrBadArgument)
	}

	cell, err := strconv.Atoi(that.args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: cell %q is not a number", ErrBadArgument, that.args[0])
	}

	return cell, nil
}
