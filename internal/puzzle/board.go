package puzzle

import (
	"fmt"

	"github.com/samber/lo"
)

// Tile is a single placed letter.
type Tile struct {
	ID        string
	Char      rune
	Column    int
	WordIndex int
	CharIndex int
}

func (t *Tile) String() string {
	return fmt.Sprintf("Tile(%s %c col=%d word=%d)", t.ID, t.Char, t.Column, t.WordIndex)
}

// Column is a stack of tiles; index 0 is the bottom.
type Column []*Tile

// Board is the ordered set of columns for one level attempt.
type Board struct {
	columns []Column
}

func newBoard(cols int) *Board {
	return &Board{columns: make([]Column, max(cols, 0))}
}

func (b *Board) Columns() []Column {
	return b.columns
}

func (b *Board) NumColumns() int {
	return len(b.columns)
}

func (b *Board) Height(col int) int {
	return len(b.columns[col])
}

// NumTiles counts the tiles across every column.
func (b *Board) NumTiles() int {
	return lo.SumBy(b.columns, func(c Column) int { return len(c) })
}

func (b *Board) push(t *Tile) {
	b.columns[t.Column] = append(b.columns[t.Column], t)
}

// Locate returns the tile with the given id and its stack position.
func (b *Board) Locate(id string) (*Tile, int, bool) {
	for _, col := range b.columns {
		for pos, t := range col {
			if t.ID == id {
				return t, pos, true
			}
		}
	}
	return nil, 0, false
}

// remove drops every tile whose id is in ids. Survivors keep their order.
func (b *Board) remove(ids map[string]struct{}) int {
	removed := 0
	for i, col := range b.columns {
		kept := lo.Reject(col, func(t *Tile, _ int) bool {
			_, ok := ids[t.ID]
			return ok
		})
		removed += len(col) - len(kept)
		b.columns[i] = Column(kept)
	}
	return removed
}
