package puzzle

import (
	"slices"

	"stackwords/internal/types"
)

// Layout carries the level parameters the generator needs.
type Layout struct {
	Cols    int
	Rows    int
	Order   types.PlacementOrder
	Letters types.LetterSort
}

// LayoutOf extracts the generator parameters from a level config.
func LayoutOf(cfg types.LevelConfig) Layout {
	return Layout{
		Cols:    cfg.Cols,
		Rows:    cfg.Rows,
		Order:   cfg.PlacementOrder(),
		Letters: cfg.LetterSort(),
	}
}

type letter struct {
	char      rune
	wordIndex int
	charIndex int
}

// Generator builds boards. IDs come from NextID so that tile ids stay unique
// across regenerations of the same game.
type Generator struct {
	Rand   Source
	NextID func() string
}

// Generate sorts the letters of every word, then distributes them across the
// layout's columns. wordIndex maps each word to its target-list index.
func (g *Generator) Generate(layout Layout, words []string, wordIndex func(string) int) *Board {
	board := newBoard(layout.Cols)
	if layout.Cols <= 0 {
		return board
	}

	var letters []letter
	for _, w := range words {
		idx := wordIndex(w)
		for i, ch := range SortLetters(w, layout.Letters, g.Rand) {
			letters = append(letters, letter{char: ch, wordIndex: idx, charIndex: i})
		}
	}

	var columns []int
	switch layout.Order {
	case types.PlacementLinear:
		columns = linearColumns(len(letters), layout.Cols)
	case types.PlacementCluster:
		columns = clusterColumns(letters, layout, g.Rand)
	default:
		columns = randomColumns(len(letters), layout.Cols, g.Rand)
	}

	for i, l := range letters {
		board.push(&Tile{
			ID:        g.NextID(),
			Char:      l.char,
			Column:    columns[i],
			WordIndex: l.wordIndex,
			CharIndex: l.charIndex,
		})
	}
	return board
}

func linearColumns(n, cols int) []int {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = i % cols
	}
	return out
}

// randomColumns spreads n letters evenly over cols, then shuffles the slots.
func randomColumns(n, cols int, rng Source) []int {
	slots := linearColumns(n, cols)
	shuffle(rng, slots)
	return slots
}

// clusterColumns keeps letters of one word in the same or neighbouring
// columns.
func clusterColumns(letters []letter, layout Layout, rng Source) []int {
	heights := make([]int, layout.Cols)
	underCap := func(col int) bool { return heights[col] < layout.Rows }

	out := make([]int, len(letters))
	last := -1
	for i, l := range letters {
		col := -1
		if l.charIndex == 0 || last < 0 {
			col = 0
			for col < layout.Cols-1 && !underCap(col) {
				col++
			}
		} else {
			var options []int
			if underCap(last) {
				options = append(options, last, last)
			}
			if last > 0 && underCap(last-1) {
				options = append(options, last-1)
			}
			if last < layout.Cols-1 && underCap(last+1) {
				options = append(options, last+1)
			}
			if len(options) > 0 {
				col = options[rng.Intn(len(options))]
			} else {
				col = fallbackColumn(heights, layout.Rows)
			}
		}

		out[i] = col
		heights[col]++
		last = col
	}
	return out
}

// fallbackColumn picks the first column under the row cap. When every column
// is full it picks the shortest one, leftmost on ties, so the cap is exceeded.
func fallbackColumn(heights []int, rows int) int {
	if col := slices.IndexFunc(heights, func(h int) bool { return h < rows }); col >= 0 {
		return col
	}
	return slices.Index(heights, slices.Min(heights))
}
