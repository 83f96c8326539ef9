package grid

import "testing"

func TestCellCoords(t *testing.T) {
	tests := []struct {
		index   int
		cols    int
		wantCol int
		wantRow int
	}{
		// 16 cols (tape view)
		{0, 16, 0, 0},
		{1, 16, 1, 0},
		{15, 16, 15, 0},
		{16, 16, 0, 1},
		{17, 16, 1, 1},
		{255, 16, 15, 15},

		// 8 cols (narrow view)
		{0, 8, 0, 0},
		{7, 8, 7, 0},
		{8, 8, 0, 1},
		{63, 8, 7, 7},
	}

	for _, tc := range tests {
		gotCol, gotRow := CellCoords(tc.index, tc.cols)
		if gotCol != tc.wantCol || gotRow != tc.wantRow {
			t.Errorf("CellCoords(%d, %d) = (%d, %d); want (%d, %d)", tc.index, tc.cols, gotCol, gotRow, tc.wantCol, tc.wantRow)
		}
	}
}
