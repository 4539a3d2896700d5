package engine

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Direction is one of the four move directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right

	directionCount = 4
)

// ErrUnknownDirection is returned when text does not name a direction.
var ErrUnknownDirection = errors.New("unknown direction")

// Directions returns all directions in declaration order.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool {
	return d >= Up && d < directionCount
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses a direction name or its first letter, ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ParseMoves parses a move sequence. Moves are separated by commas or
// spaces ("left,up"), or run together as letters ("LLUR"), or a mix.
func ParseMoves(s string) ([]Direction, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var moves []Direction
	for _, tok := range tokens {
		if d, err := ParseDirection(tok); err == nil {
			moves = append(moves, d)
			continue
		}
		for _, r := range tok {
			d, err := ParseDirection(string(r))
			if err != nil {
				return nil, fmt.Errorf("%w in move %q", err, tok)
			}
			moves = append(moves, d)
		}
	}
	return moves, nil
}

// cell is a (row, col) grid position.
type cell struct {
	row, col int
}

// lineSet describes how a direction slices the grid into lines.
type lineSet struct {
	origins []cell // First cell of every line
	dr, dc  int    // Step from one line element to the next
	length  int    // Cells per line
}

// buildLineSets derives the traversal tables for every direction.
// Lines start at the edge tiles pushes toward and walk away from it.
func buildLineSets(height, width int) [directionCount]lineSet {
	var sets [directionCount]lineSet

	up := lineSet{dr: 1, length: height}
	down := lineSet{dr: -1, length: height}
	for c := range width {
		up.origins = append(up.origins, cell{0, c})
		down.origins = append(down.origins, cell{height - 1, c})
	}

	left := lineSet{dc: 1, length: width}
	right := lineSet{dc: -1, length: width}
	for r := range height {
		left.origins = append(left.origins, cell{r, 0})
		right.origins = append(right.origins, cell{r, width - 1})
	}

	sets[Up] = up
	sets[Down] = down
	sets[Left] = left
	sets[Right] = right
	return sets
}
