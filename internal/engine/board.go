package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDimensions is returned by New for a non-positive height or width.
var ErrInvalidDimensions = errors.New("invalid board dimensions")

// Board is a height x width grid of tiles. Zero marks an empty cell.
// Cells are stored in row-major order: index = row*width + col.
//
// A Board is not safe for concurrent use.
type Board struct {
	height int
	width  int
	cells  []int

	lines  [directionCount]lineSet
	rng    Source
	policy SpawnPolicy

	// Scratch buffers reused by Move, sized to the longest line.
	in   []int
	out  []int
	path []cell
}

// New creates a board with the given dimensions and spawns the two starting
// tiles. Without options the board spawns after every move and uses a
// time-seeded random source.
func New(height, width int, opts ...Option) (*Board, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}

	longest := max(height, width)
	b := &Board{
		height: height,
		width:  width,
		cells:  make([]int, height*width),
		lines:  buildLineSets(height, width),
		in:     make([]int, longest),
		out:    make([]int, longest),
		path:   make([]cell, longest),
	}

	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = defaultSource()
	}

	b.Reset()
	return b, nil
}

// Reset clears the grid and spawns two fresh tiles.
func (b *Board) Reset() {
	clear(b.cells)
	b.NewTile()
	b.NewTile()
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Policy returns the board's spawn policy.
func (b *Board) Policy() SpawnPolicy {
	return b.policy
}

// Tile returns the value at (row, col). It panics if the position is off the
// grid.
func (b *Board) Tile(row, col int) int {
	return b.cells[b.index(row, col)]
}

// SetTile stores value at (row, col). It panics if the position is off the
// grid.
func (b *Board) SetTile(row, col, value int) {
	b.cells[b.index(row, col)] = value
}

// index converts a position to a flat cell index.
// The flat layout would silently wrap a bad column onto the next row, so
// bounds are checked per axis.
func (b *Board) index(row, col int) int {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		panic(fmt.Sprintf("engine: tile (%d, %d) outside %dx%d board", row, col, b.height, b.width))
	}
	return row*b.width + col
}

// Move shifts every line toward the edge named by d, fusing equal tiles, and
// then spawns a tile according to the spawn policy. It reports whether any
// cell changed before the spawn.
//
// Move panics if d is not a valid Direction.
func (b *Board) Move(d Direction) bool {
	if !d.Valid() {
		panic(fmt.Sprintf("engine: move in invalid direction %d", int(d)))
	}

	set := b.lines[d]
	in := b.in[:set.length]
	out := b.out[:set.length]
	path := b.path[:set.length]
	changed := false

	for _, origin := range set.origins {
		// Read the whole line before writing any of it back.
		pos := origin
		for k := range set.length {
			path[k] = pos
			in[k] = b.cells[pos.row*b.width+pos.col]
			pos.row += set.dr
			pos.col += set.dc
		}

		mergeInto(out, in)

		for k, p := range path {
			if in[k] != out[k] {
				changed = true
			}
			b.cells[p.row*b.width+p.col] = out[k]
		}
	}

	switch b.policy {
	case SpawnEveryMove:
		b.NewTile()
	case SpawnOnChange:
		if changed {
			b.NewTile()
		}
	}

	return changed
}

// NewTile places a 2 (90%) or a 4 (10%) in a uniformly chosen empty cell.
// It does nothing when the grid is full.
func (b *Board) NewTile() {
	empty := make([]int, 0, len(b.cells))
	for i, v := range b.cells {
		if v == 0 {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		return
	}

	idx := empty[b.rng.Intn(len(empty))]
	b.cells[idx] = spawnValues[b.rng.Intn(len(spawnValues))]
}

// Lines returns copies of the lines Move(d) would merge, each ordered from
// the edge tiles are pushed toward.
func (b *Board) Lines(d Direction) [][]int {
	if !d.Valid() {
		panic(fmt.Sprintf("engine: lines for invalid direction %d", int(d)))
	}

	set := b.lines[d]
	lines := make([][]int, len(set.origins))
	for i, pos := range set.origins {
		line := make([]int, set.length)
		for k := range set.length {
			line[k] = b.cells[pos.row*b.width+pos.col]
			pos.row += set.dr
			pos.col += set.dc
		}
		lines[i] = line
	}
	return lines
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for _, v := range b.cells {
		if v == 0 {
			n++
		}
	}
	return n
}

// Cells returns a copy of the grid as rows.
func (b *Board) Cells() [][]int {
	rows := make([][]int, b.height)
	for r := range b.height {
		rows[r] = make([]int, b.width)
		copy(rows[r], b.cells[r*b.width:(r+1)*b.width])
	}
	return rows
}

// DebugString renders the grid one row per line with comma-separated cells.
// Each column is left-aligned to its widest entry. The format is meant for
// diagnostics and may change.
func (b *Board) DebugString() string {
	widths := make([]int, b.width)
	for i, v := range b.cells {
		col := i % b.width
		widths[col] = max(widths[col], len(strconv.Itoa(v)))
	}

	var sb strings.Builder
	for r := range b.height {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.width {
			if c > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%-*d", widths[c], b.cells[r*b.width+c])
		}
	}
	return sb.String()
}

// String implements fmt.Stringer using DebugString.
func (b *Board) String() string {
	return b.DebugString()
}
