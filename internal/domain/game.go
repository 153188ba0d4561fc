package domain

import (
	"errors"
	"strconv"
)

// Errors returned by domain operations. ErrInvalidMove and
// ErrInvalidHistoryIndex are the two kinds callers switch on; the rest
// are wrapped reasons.
var (
	ErrInvalidMove         = errors.New("invalid move")
	ErrInvalidHistoryIndex = errors.New("invalid history index")

	ErrOutOfBounds   = errors.New("out of bounds")
	ErrCellOccupied  = errors.New("cell occupied")
	ErrGameDecided   = errors.New("game already decided")
	ErrInvalidSymbol = errors.New("symbol must be X or O")
)

// Game is one play session: a history of grids and the rules applied to
// the grid currently viewed.
type Game struct {
	history *History
}

// New returns a new game with X to move.
func New() *Game {
	return &Game{history: NewHistory()}
}

// SelectCell plays the current turn at index on the viewed grid. When the
// viewed grid is not the latest, the later snapshots are discarded.
func (g *Game) SelectCell(index int) error {
	next, err := ApplyMove(g.history.Current(), index, g.history.Turn())
	if err != nil {
		return err
	}
	g.history.Append(next)
	return nil
}

// SelectHistoryEntry views the snapshot at index.
func (g *Game) SelectHistoryEntry(index int) error {
	return g.history.JumpTo(index)
}

// Moves returns the move that produced each snapshot after the first.
func (g *Game) Moves() []Move {
	snaps := g.history.Snapshots()
	moves := make([]Move, 0, len(snaps)-1)
	for n := 1; n < len(snaps); n++ {
		for i := range snaps[n] {
			if snaps[n][i] != snaps[n-1][i] {
				moves = append(moves, Move{Index: i, Symbol: snaps[n][i]})
				break
			}
		}
	}
	return moves
}

// ViewModel is everything needed to draw the game.
type ViewModel struct {
	Grid          Grid
	Status        Status
	WinningLine   []int
	HistoryLabels []string
	CurrentIndex  int
}

// ViewModel derives the view from the current grid on every call.
func (g *Game) ViewModel() ViewModel {
	cur := g.history.Current()
	win := Evaluate(cur)
	labels := make([]string, g.history.Len())
	for i := range labels {
		labels[i] = HistoryLabel(i, g.history.Pointer())
	}
	return ViewModel{
		Grid:          cur,
		Status:        StatusOf(cur, g.history.Turn()),
		WinningLine:   win.Line,
		HistoryLabels: labels,
		CurrentIndex:  g.history.Pointer(),
	}
}

// HistoryLabel is the text shown for history entry move when current is
// being viewed.
func HistoryLabel(move, current int) string {
	switch {
	case move == current:
		return "You are at move #" + strconv.Itoa(move)
	case move > 0:
		return "Go to move #" + strconv.Itoa(move)
	default:
		return "Go to game start"
	}
}

// OnWinningLine reports whether index is highlighted as part of the win.
func (v ViewModel) OnWinningLine(index int) bool {
	return WinResult{Line: v.WinningLine}.Contains(index)
}
