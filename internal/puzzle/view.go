package puzzle

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"stackwords/internal/types"
)

const uncoloredTile = "#fff"

// Render maps the session onto the presentation model. It never mutates s.
func Render(s *Session) types.SessionView {
	columns := make([][]types.TileView, len(s.board.columns))
	for c, col := range s.board.columns {
		columns[c] = make([]types.TileView, len(col))
		for pos, t := range col {
			columns[c][pos] = s.tileView(t, c, pos)
		}
	}

	words := lo.Map(s.targets, func(w string, i int) types.WordView {
		found := slices.Contains(s.found, w)
		revealed := slices.Contains(s.revealed, w)
		text := w
		if !found && !revealed {
			text = strings.Repeat("*", utf8.RuneCountInString(w))
		}
		return types.WordView{
			Text:     text,
			Found:    found,
			Revealed: revealed,
			Color:    s.wordColor(i),
		}
	})

	bonusVisible := !s.level.Colored()
	return types.SessionView{
		LevelID:        s.level.ID,
		Rows:           s.level.Rows,
		Columns:        columns,
		CurrentWord:    s.CurrentWord(),
		Classification: s.Classification().String(),
		Words:          words,
		HiddenWords:    slices.Clone(s.hidden),
		FoundCount:     len(s.found),
		TotalCount:     len(s.targets),
		Processing:     s.processing,
		Colored:        s.colored,
		Won:            s.won,
		HintEnabled:    s.HintAvailable(),
		BonusVisible:   bonusVisible,
		BonusEnabled:   bonusVisible && !s.colored,
	}
}

func (s *Session) tileView(t *Tile, col, pos int) types.TileView {
	state := s.TileState(col, pos)
	view := types.TileView{
		ID:        t.ID,
		Char:      string(t.Char),
		Column:    col,
		Position:  pos,
		WordIndex: t.WordIndex,
		State:     state.String(),
	}

	switch {
	case s.colored && t.WordIndex >= 0:
		view.Color = s.colors[t.WordIndex%len(s.colors)]
	case !s.colored && state == Active:
		view.Color = uncoloredTile
	}

	if s.processing {
		if state == Selected {
			view.Highlight = string(s.highlight)
		}
		view.State = Blocked.String()
	}
	return view
}

// wordColor is the palette entry of the i-th target, or white when the level
// is uncoloured.
func (s *Session) wordColor(i int) string {
	if !s.colored {
		return uncoloredTile
	}
	return s.colors[i%len(s.colors)]
}
