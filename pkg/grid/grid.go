// Package grid maps linear indices onto a fixed-width grid, used by the
// desktop frontend to lay out tape cells.
package grid

// CellCoords converts a linear index into (col, row) coordinates on a grid
// cols columns wide.
func CellCoords(index, cols int) (int, int) {
	return index % cols, index / cols
}
