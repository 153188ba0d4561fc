package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to apply a sequence of moves
func playMoves(t *testing.T, g *Game, moves []int) {
	t.Helper()
	for i, m := range moves {
		require.NoError(t, g.SelectCell(m), "move %d at %d", i, m)
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := New()
	vm := g.ViewModel()

	assert.Equal(t, Grid{}, vm.Grid)
	assert.Equal(t, Status{Kind: InProgress, Symbol: X}, vm.Status)
	assert.Empty(t, vm.WinningLine)
	assert.Equal(t, []string{"You are at move #0"}, vm.HistoryLabels)
	assert.Equal(t, 0, vm.CurrentIndex)
}

func TestSelectCellOutOfBounds(t *testing.T) {
	g := New()
	for _, idx := range []int{-1, 9, 42} {
		err := g.SelectCell(idx)
		assert.ErrorIs(t, err, ErrInvalidMove)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
	assert.Equal(t, 1, g.history.Len())
}

func TestSelectCellOccupied(t *testing.T) {
	g := New()
	require.NoError(t, g.SelectCell(4))

	err := g.SelectCell(4)
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.ErrorIs(t, err, ErrCellOccupied)
	assert.Equal(t, 2, g.history.Len())
	assert.Equal(t, O, g.history.Turn(), "rejected move must not flip the turn")
}

func TestTurnAlternates(t *testing.T) {
	g := New()
	want := []Cell{X, O, X, O, X}
	for i, idx := range []int{0, 1, 2, 3, 4} {
		assert.Equal(t, want[i], g.history.Turn())
		require.NoError(t, g.SelectCell(idx))
		assert.Equal(t, want[i], g.history.Current()[idx])
	}
}

func TestDiagonalWinEndToEnd(t *testing.T) {
	g := New()
	playMoves(t, g, []int{0, 1, 4, 2, 8})

	vm := g.ViewModel()
	assert.Equal(t, Status{Kind: Won, Symbol: X}, vm.Status)
	assert.Equal(t, []int{0, 4, 8}, vm.WinningLine)
	assert.True(t, vm.OnWinningLine(4))
	assert.False(t, vm.OnWinningLine(1))
	assert.Equal(t, "Winner: X", vm.Status.String())
}

func TestDrawEndToEnd(t *testing.T) {
	g := New()
	playMoves(t, g, []int{0, 1, 2, 4, 3, 5, 7, 6, 8})

	vm := g.ViewModel()
	assert.Equal(t, Status{Kind: Draw}, vm.Status)
	assert.True(t, vm.Grid.Full())
	assert.Nil(t, vm.WinningLine)
	assert.Equal(t, "Draw", vm.Status.String())
	assert.Len(t, vm.HistoryLabels, 10)
}

func TestGameOverBlocksFurtherMoves(t *testing.T) {
	g := New()
	// X wins on the top row
	playMoves(t, g, []int{0, 3, 1, 4, 2})
	require.True(t, g.ViewModel().Status.Over())

	err := g.SelectCell(8)
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.ErrorIs(t, err, ErrGameDecided)
	assert.Equal(t, 6, g.history.Len())
}

func TestJumpBackReopensDecidedGame(t *testing.T) {
	g := New()
	playMoves(t, g, []int{0, 3, 1, 4, 2})

	require.NoError(t, g.SelectHistoryEntry(4))
	vm := g.ViewModel()
	assert.Equal(t, Status{Kind: InProgress, Symbol: X}, vm.Status)
	assert.Equal(t, 6, g.history.Len(), "viewing the past keeps the future")

	// X plays elsewhere; the old winning move is discarded.
	require.NoError(t, g.SelectCell(8))
	assert.Equal(t, 6, g.history.Len())
	assert.Equal(t, Empty, g.history.Current()[2])
	assert.Equal(t, X, g.history.Current()[8])
	assert.Equal(t, Status{Kind: InProgress, Symbol: O}, g.ViewModel().Status)
}

func TestSelectHistoryEntryOutOfRange(t *testing.T) {
	g := New()
	playMoves(t, g, []int{0, 1})

	for _, idx := range []int{-1, 3, 100} {
		assert.ErrorIs(t, g.SelectHistoryEntry(idx), ErrInvalidHistoryIndex)
	}
	assert.Equal(t, 2, g.ViewModel().CurrentIndex)
}

func TestHistoryLabels(t *testing.T) {
	g := New()
	playMoves(t, g, []int{0, 1, 2})
	require.NoError(t, g.SelectHistoryEntry(1))

	assert.Equal(t, []string{
		"Go to game start",
		"You are at move #1",
		"Go to move #2",
		"Go to move #3",
	}, g.ViewModel().HistoryLabels)
}

func TestMovesFollowHistory(t *testing.T) {
	g := New()
	playMoves(t, g, []int{4, 0, 8})

	assert.Equal(t, []Move{{4, X}, {0, O}, {8, X}}, g.Moves())
}

func TestSnapshotsDifferByOneMarkAcrossBranches(t *testing.T) {
	g := New()
	playMoves(t, g, []int{0, 1, 2, 3})
	require.NoError(t, g.SelectHistoryEntry(1))
	assert.Error(t, g.SelectCell(0))
	playMoves(t, g, []int{4, 5, 6})
	require.NoError(t, g.SelectHistoryEntry(0))
	playMoves(t, g, []int{8, 7})
	assert.Error(t, g.SelectHistoryEntry(5))

	snaps := g.history.Snapshots()
	require.Len(t, snaps, 3)
	require.Equal(t, Grid{}, snaps[0])
	for n := 1; n < len(snaps); n++ {
		want := X
		if n%2 == 0 {
			want = O
		}
		changed := 0
		for i := range snaps[n] {
			if snaps[n][i] == snaps[n-1][i] {
				continue
			}
			changed++
			assert.Equal(t, Empty, snaps[n-1][i], "snapshot %d overwrote cell %d", n, i)
			assert.Equal(t, want, snaps[n][i], "snapshot %d placed the wrong mark", n)
		}
		assert.Equal(t, 1, changed, "snapshot %d", n)
	}
}

func TestViewModelGridIsDetached(t *testing.T) {
	g := New()
	vm := g.ViewModel()
	vm.Grid[0] = O

	assert.Equal(t, Grid{}, g.ViewModel().Grid)
	require.NoError(t, g.SelectCell(0))
	assert.Equal(t, X, g.ViewModel().Grid[0])
}
