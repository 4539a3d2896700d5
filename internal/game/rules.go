package game

// TileReader is the read-only view of a board the rules need.
type TileReader interface {
	Height() int
	Width() int
	Tile(row, col int) int
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(b TileReader) bool {
	for r := range b.Height() {
		for c := range b.Width() {
			if b.Tile(r, c) == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any orthogonally adjacent tiles are equal.
func HasPossibleMerge(b TileReader) bool {
	h, w := b.Height(), b.Width()
	for r := range h {
		for c := range w {
			v := b.Tile(r, c)
			if v == 0 {
				continue
			}
			// Check right neighbor
			if c < w-1 && b.Tile(r, c+1) == v {
				return true
			}
			// Check bottom neighbor
			if r < h-1 && b.Tile(r+1, c) == v {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if some move would change the board.
func CanMove(b TileReader) bool {
	return HasEmptyCell(b) || HasPossibleMerge(b)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(b TileReader) int {
	maxVal := 0
	for r := range b.Height() {
		for c := range b.Width() {
			maxVal = max(maxVal, b.Tile(r, c))
		}
	}
	return maxVal
}
