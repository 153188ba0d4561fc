package domain

import "fmt"

// History is the ordered record of grids produced in a game and a pointer
// to the one being viewed. snapshots[0] is always the empty grid.
type History struct {
	snapshots []Grid
	pointer   int
}

// NewHistory returns a history holding only the empty grid.
func NewHistory() *History {
	return &History{snapshots: []Grid{{}}}
}

// Append drops every snapshot after the pointer, stores g and moves the
// pointer onto it.
func (h *History) Append(g Grid) {
	h.snapshots = append(h.snapshots[:h.pointer+1], g)
	h.pointer = len(h.snapshots) - 1
}

// JumpTo moves the pointer to index without touching stored snapshots.
func (h *History) JumpTo(index int) error {
	if index < 0 || index >= len(h.snapshots) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidHistoryIndex, index, len(h.snapshots))
	}
	h.pointer = index
	return nil
}

// Current returns the grid under the pointer.
func (h *History) Current() Grid { return h.snapshots[h.pointer] }

// Turn returns the mark to play next: X on even pointers, O on odd ones.
func (h *History) Turn() Cell {
	if h.pointer%2 == 0 {
		return X
	}
	return O
}

func (h *History) Len() int     { return len(h.snapshots) }
func (h *History) Pointer() int { return h.pointer }

// Snapshots returns a copy of the stored grids.
func (h *History) Snapshots() []Grid {
	return append([]Grid(nil), h.snapshots...)
}
