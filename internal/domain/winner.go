package domain

// lines lists every winning index triple in scan order.
var lines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// WinResult is the outcome of scanning a grid for a completed line.
// Winner is Empty and Line is nil when no line is complete.
type WinResult struct {
	Winner Cell
	Line   []int
}

// Contains reports whether index lies on the winning line.
func (r WinResult) Contains(index int) bool {
	for _, i := range r.Line {
		if i == index {
			return true
		}
	}
	return false
}

// Evaluate returns the first completed line of g, rows first, then
// columns, then diagonals.
func Evaluate(g Grid) WinResult {
	for _, ln := range lines {
		a, b, c := g[ln[0]], g[ln[1]], g[ln[2]]
		if a != Empty && a == b && a == c {
			return WinResult{Winner: a, Line: []int{ln[0], ln[1], ln[2]}}
		}
	}
	return WinResult{}
}
