package domain

import "fmt"

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Size is the number of cells on the board.
const Size = 9

// Grid is a fixed 3x3 board stored row-major. Grids are values: a move
// produces a new Grid and never touches the one it was made on.
type Grid [Size]Cell

// Full reports whether no Empty cell is left.
func (g Grid) Full() bool {
	for _, c := range g {
		if c == Empty {
			return false
		}
	}
	return true
}

// Move is a mark placed at a board index.
type Move struct {
	Index  int
	Symbol Cell
}

// ApplyMove places symbol at index and returns the resulting grid. On
// rejection the input grid is returned as is together with an error
// wrapping ErrInvalidMove.
func ApplyMove(g Grid, index int, symbol Cell) (Grid, error) {
	if symbol != X && symbol != O {
		return g, fmt.Errorf("%w: %w", ErrInvalidMove, ErrInvalidSymbol)
	}
	if index < 0 || index >= Size {
		return g, fmt.Errorf("%w: %w: %d", ErrInvalidMove, ErrOutOfBounds, index)
	}
	if Evaluate(g).Winner != Empty {
		return g, fmt.Errorf("%w: %w", ErrInvalidMove, ErrGameDecided)
	}
	if g[index] != Empty {
		return g, fmt.Errorf("%w: %w: %d", ErrInvalidMove, ErrCellOccupied, index)
	}

	next := g
	next[index] = symbol
	return next, nil
}

// StatusKind is the coarse state of a board.
type StatusKind uint8

const (
	InProgress StatusKind = iota
	Won
	Draw
)

func (k StatusKind) String() string {
	switch k {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Status is derived from a grid. Symbol holds the winner for Won, the
// player to move for InProgress and Empty for Draw.
type Status struct {
	Kind   StatusKind
	Symbol Cell
}

func (s Status) String() string {
	switch s.Kind {
	case Won:
		return "Winner: " + s.Symbol.String()
	case Draw:
		return "Draw"
	default:
		return "Next player: " + s.Symbol.String()
	}
}

// Over reports whether no further move can be applied.
func (s Status) Over() bool { return s.Kind != InProgress }

// StatusOf derives the status of g. next is only consulted when the game
// is still open, since whose turn it is comes from history parity.
func StatusOf(g Grid, next Cell) Status {
	if w := Evaluate(g).Winner; w != Empty {
		return Status{Kind: Won, Symbol: w}
	}
	if g.Full() {
		return Status{Kind: Draw}
	}
	return Status{Kind: InProgress, Symbol: next}
}
