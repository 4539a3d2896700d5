package engine

import (
	"math/rand"
	"slices"
	"testing"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{
			name:     "merge across gap",
			input:    []int{2, 0, 2, 4},
			expected: []int{4, 4, 0, 0},
		},
		{
			name:     "slide then merge",
			input:    []int{0, 0, 2, 2},
			expected: []int{4, 0, 0, 0},
		},
		{
			name:     "two independent pairs",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
		},
		{
			name:     "three equal leaves a singleton",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
		},
		{
			name:     "long line with gaps",
			input:    []int{8, 0, 0, 8, 4, 4, 2},
			expected: []int{16, 8, 2, 0, 0, 0, 0},
		},
		{
			name:     "all zeros",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
		},
		{
			name:     "single tile at far end",
			input:    []int{0, 0, 0, 2},
			expected: []int{2, 0, 0, 0},
		},
		{
			name:     "pair across zero in short line",
			input:    []int{4, 0, 4},
			expected: []int{8, 0, 0},
		},
		{
			name:     "fused tile does not fuse again",
			input:    []int{2, 2, 4, 0},
			expected: []int{4, 4, 0, 0},
		},
		{
			name:     "unequal neighbours block pairing",
			input:    []int{2, 4, 2, 0},
			expected: []int{2, 4, 2, 0},
		},
		{
			name:     "single cell",
			input:    []int{8},
			expected: []int{8},
		},
		{
			name:     "single empty cell",
			input:    []int{0},
			expected: []int{0},
		},
		{
			name:     "empty line",
			input:    []int{},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := slices.Clone(tt.input)
			result := Merge(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("Merge(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if !slices.Equal(tt.input, input) {
				t.Errorf("Merge modified its input: %v, was %v", tt.input, input)
			}
		})
	}
}

func TestMergeNilLine(t *testing.T) {
	result := Merge(nil)
	if len(result) != 0 {
		t.Errorf("Merge(nil) = %v, want empty", result)
	}
}

func TestMergeScore(t *testing.T) {
	tests := []struct {
		input []int
		score int
	}{
		{[]int{2, 2, 0, 0}, 4},
		{[]int{2, 2, 2, 2}, 8},
		{[]int{2, 2, 2, 0}, 4},
		{[]int{8, 0, 0, 8, 4, 4, 2}, 24},
		{[]int{2, 4, 8, 16}, 0},
		{[]int{0, 0, 0, 0}, 0},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := MergeScore(tt.input); got != tt.score {
			t.Errorf("MergeScore(%v) = %d, want %d", tt.input, got, tt.score)
		}
	}
}

// referenceMerge compacts non-zero tiles first and then pairs neighbours.
func referenceMerge(line []int) []int {
	var compact []int
	for _, v := range line {
		if v != 0 {
			compact = append(compact, v)
		}
	}

	result := make([]int, len(line))
	w := 0
	for i := 0; i < len(compact); i++ {
		if i+1 < len(compact) && compact[i] == compact[i+1] {
			result[w] = compact[i] * 2
			i++
		} else {
			result[w] = compact[i]
		}
		w++
	}
	return result
}

func randomLine(rng *rand.Rand) []int {
	values := []int{0, 0, 2, 4, 8, 16}
	line := make([]int, 1+rng.Intn(20))
	for i := range line {
		line[i] = values[rng.Intn(len(values))]
	}
	return line
}

func sum(line []int) int {
	total := 0
	for _, v := range line {
		total += v
	}
	return total
}

func nonZero(line []int) int {
	n := 0
	for _, v := range line {
		if v != 0 {
			n++
		}
	}
	return n
}

func TestMergeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))

	for range 2000 {
		line := randomLine(rng)
		result := Merge(line)

		if len(result) != len(line) {
			t.Fatalf("length: Merge(%v) has %d cells, want %d", line, len(result), len(line))
		}

		if sum(result) != sum(line) {
			t.Fatalf("sum: Merge(%v) = %v sums to %d, want %d", line, result, sum(result), sum(line))
		}

		// Non-zero prefix followed only by zeros
		k := nonZero(result)
		for i, v := range result {
			if v < 0 {
				t.Fatalf("negative: Merge(%v) = %v", line, result)
			}
			if (i < k) != (v != 0) {
				t.Fatalf("zero suffix: Merge(%v) = %v", line, result)
			}
		}

		in := nonZero(line)
		if k > in || k < (in+1)/2 {
			t.Fatalf("count: Merge(%v) = %v has %d tiles, input had %d", line, result, k, in)
		}

		again := Merge(result)
		if len(again)-nonZero(again) < len(result)-k {
			t.Fatalf("idempotence: Merge(Merge(%v)) = %v has fewer zeros than %v", line, again, result)
		}

		if want := referenceMerge(line); !slices.Equal(result, want) {
			t.Fatalf("Merge(%v) = %v, reference gives %v", line, result, want)
		}

		if MergeScore(line) != sum(line)-sumUnfused(line) {
			t.Fatalf("score: MergeScore(%v) = %d inconsistent with merge %v", line, MergeScore(line), result)
		}
	}
}

// sumUnfused returns the total of tiles that slide without fusing.
func sumUnfused(line []int) int {
	var compact []int
	for _, v := range line {
		if v != 0 {
			compact = append(compact, v)
		}
	}

	total := 0
	for i := 0; i < len(compact); i++ {
		if i+1 < len(compact) && compact[i] == compact[i+1] {
			i++
			continue
		}
		total += compact[i]
	}
	return total
}

func TestMergeIntoReusesBuffer(t *testing.T) {
	dst := []int{9, 9, 9, 9, 9}
	mergeInto(dst, []int{2, 0, 2})

	// Only the first len(src) cells belong to the result.
	if !slices.Equal(dst, []int{4, 0, 0, 9, 9}) {
		t.Errorf("mergeInto left %v, want [4 0 0 9 9]", dst)
	}
}
