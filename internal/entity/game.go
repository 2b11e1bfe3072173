package entity

const (
	SymbolX Symbol = "X"
	SymbolO Symbol = "O"

	EmptyCell Symbol = ""
)

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

// Symbol is the mark a player puts into a cell.
type Symbol string

// Toggle returns the symbol of the other player.
func (that Symbol) Toggle() Symbol {
	if that == SymbolX {
		return SymbolO
	}
	return SymbolX
}

func (that Symbol) IsEmpty() bool {
	return that == EmptyCell
}

// Board is a snapshot of the nine cells, row by row.
// It is an array, so assigning or passing a Board copies it.
type Board [BoardSize]Symbol

// NewBoard returns the all-empty board.
func NewBoard() Board {
	return Board{}
}

// IsValidCell reports whether cell addresses a position on the board.
func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// With returns a copy of the board with symbol written into cell.
// The receiver is left untouched.
func (that Board) With(cell int, symbol Symbol) Board {
	that[cell] = symbol
	return that
}

func (that Board) IsOccupied(cell int) bool {
	return !that[cell].IsEmpty()
}

// IsEmpty reports whether no cell has been played yet.
func (that Board) IsEmpty() bool {
	for _, cell := range that {
		if !cell.IsEmpty() {
			return false
		}
	}

	return true
}

// IsFull reports whether every cell has been played.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}
