// Package engine implements the 2048 rules: the one-dimensional line merge
// and the board that composes it into directional moves.
//
// The engine holds no presenter state. It does not track score, detect the
// end of a game or persist anything; those concerns belong to the layers
// that drive it.
package engine

// Merge collapses a line toward index 0.
// Equal non-zero tiles separated only by zeros fuse into their sum, and each
// input tile takes part in at most one fusion. The result has the same length
// as line, with zeros filling the high end.
func Merge(line []int) []int {
	result := make([]int, len(line))
	mergeInto(result, line)
	return result
}

// MergeScore returns the sum of the tiles produced by fusions when line is
// merged once. Singletons that merely slide contribute nothing.
func MergeScore(line []int) int {
	score := 0
	n := len(line)

	for i := 0; i < n; {
		var j int
		i, j = nextPair(line, i)
		if j < n && line[i] == line[j] {
			score += line[i] + line[j]
			i = j + 1
		} else {
			i = j
		}
	}

	return score
}

// mergeInto writes the merge of src into dst.
// dst must be at least len(src) long and must not alias src.
func mergeInto(dst, src []int) {
	n := len(src)
	clear(dst[:n])

	w := 0
	for i := 0; i < n; {
		var j int
		i, j = nextPair(src, i)
		if j < n && src[i] == src[j] {
			dst[w] = src[i] + src[j]
			i = j + 1
		} else {
			dst[w] = src[i]
			i = j
		}
		w++
	}
}

// nextPair finds the next candidate pair starting at i.
// The left index skips zeros but stops at n-1, so an all-zero tail yields a
// zero singleton that lands in the already-zero output. The right index is the
// next non-zero after left, or n if there is none.
func nextPair(line []int, i int) (left, right int) {
	n := len(line)
	for i < n-1 && line[i] == 0 {
		i++
	}

	j := i + 1
	for j < n && line[j] == 0 {
		j++
	}

	return i, j
}
