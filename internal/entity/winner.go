package entity

const (
	FirstRow         = "first_row"
	SecondRow        = "second_row"
	ThirdRow         = "third_row"
	FirstCol         = "first_col"
	SecondCol        = "second_col"
	ThirdCol         = "third_col"
	BackwardDiagonal = "backward_diagonal"
	ForwardDiagonal  = "forward_diagonal"
)

// WinningSequence is one of the eight fixed lines of the board.
type WinningSequence struct {
	Name      string `json:"name"`
	Positions [3]int `json:"positions"`
}

// WinCombos lists the lines in the order they are checked.
var WinCombos = []WinningSequence{
	{Name: FirstRow, Positions: [3]int{0, 1, 2}},
	{Name: SecondRow, Positions: [3]int{3, 4, 5}},
	{Name: ThirdRow, Positions: [3]int{6, 7, 8}},
	{Name: FirstCol, Positions: [3]int{0, 3, 6}},
	{Name: SecondCol, Positions: [3]int{1, 4, 7}},
	{Name: ThirdCol, Positions: [3]int{2, 5, 8}},
	{Name: BackwardDiagonal, Positions: [3]int{2, 4, 6}},
	{Name: ForwardDiagonal, Positions: [3]int{0, 4, 8}},
}

// Contains reports whether position is part of the sequence.
func (that WinningSequence) Contains(position int) bool {
	for _, p := range that.Positions {
		if p == position {
			return true
		}
	}

	return false
}

// Winner records who won a game and with which line.
// The zero value means there is no winner.
type Winner struct {
	Exists       bool            `json:"exists"`
	PlayedSymbol Symbol          `json:"played_symbol"`
	Sequence     WinningSequence `json:"sequence"`
}

func NewWinner(symbol Symbol, sequence WinningSequence) Winner {
	return Winner{
		Exists:       true,
		PlayedSymbol: symbol,
		Sequence:     sequence,
	}
}
