package puzzle

import (
	"fmt"
	"slices"
	"time"

	"github.com/gammazero/deque"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"stackwords/internal/types"
)

// WordColors is the fixed palette permuted per level.
var WordColors = []string{
	"#AEC6CF",
	"#B2E2B2",
	"#FFD1DC",
	"#F4E1D2",
}

// Highlight marks selected tiles while a commit is being processed.
type Highlight string

const (
	HighlightNone    Highlight = ""
	HighlightCorrect Highlight = "correct"
	HighlightBonus   Highlight = "bonus"
)

// Outcome is the result of ConfirmOrReset.
type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeFound
	OutcomeHidden
	OutcomeReset
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeHidden:
		return "hidden"
	case OutcomeReset:
		return "reset"
	default:
		return "rejected"
	}
}

// Session is the state of one attempt at one level. It is not safe for
// concurrent use; the owner serializes every call.
type Session struct {
	level  types.LevelConfig
	layout Layout
	gen    *Generator
	dict   *Dictionary
	delays Delays

	board    *Board
	targets  []string
	found    []string
	revealed []string
	hidden   []string
	selected []*Tile

	processing bool
	highlight  Highlight
	colored    bool
	won        bool
	colors     []string

	outbox  deque.Deque[Task]
	pending map[string]Task
}

// NewSession starts a fresh attempt at level and generates its board.
func NewSession(level types.LevelConfig, dict *Dictionary, gen *Generator, delays Delays) *Session {
	targets := lo.Map(level.Words, func(w string, _ int) string { return NormalizeWord(w) })
	targets = lo.Filter(targets, func(w string, _ int) bool { return w != "" })
	if !level.FollowOrder() {
		shuffle(gen.Rand, targets)
	}

	colors := slices.Clone(WordColors)
	shuffle(gen.Rand, colors)

	s := &Session{
		level:   level,
		layout:  LayoutOf(level),
		gen:     gen,
		dict:    dict,
		delays:  delays,
		targets: targets,
		colored: level.Colored(),
		colors:  colors,
		pending: make(map[string]Task),
	}
	s.board = gen.Generate(s.layout, s.targets, s.wordIndex)
	return s
}

func (s *Session) wordIndex(word string) int {
	return slices.Index(s.targets, word)
}

func (s *Session) Level() types.LevelConfig { return s.level }
func (s *Session) Board() *Board             { return s.board }
func (s *Session) Targets() []string         { return s.targets }
func (s *Session) Found() []string           { return s.found }
func (s *Session) Revealed() []string        { return s.revealed }
func (s *Session) Hidden() []string          { return s.hidden }
func (s *Session) Processing() bool          { return s.processing }
func (s *Session) Colored() bool             { return s.colored }
func (s *Session) Won() bool                 { return s.won }

// Selection returns the selected tiles in click order.
func (s *Session) Selection() []*Tile {
	return slices.Clone(s.selected)
}

func (s *Session) isSelected(id string) bool {
	return slices.ContainsFunc(s.selected, func(t *Tile) bool { return t.ID == id })
}

// CurrentWord concatenates the selected letters in click order.
func (s *Session) CurrentWord() string {
	return string(lo.Map(s.selected, func(t *Tile, _ int) rune { return t.Char }))
}

func (s *Session) Classification() WordClass {
	return Classify(s.CurrentWord(), s.targets, s.found, s.hidden, s.dict)
}

// TileState applies the availability rule to the tile at pos in column col.
func (s *Session) TileState(col, pos int) TileState {
	return Availability(s.board.columns[col], pos, s.isSelected)
}

// Select appends an active tile to the selection.
func (s *Session) Select(tileID string) bool {
	if s.processing {
		return false
	}
	t, pos, ok := s.board.Locate(tileID)
	if !ok || s.TileState(t.Column, pos) != Active {
		return false
	}
	s.selected = append(s.selected, t)
	return true
}

// Deselect removes a selected tile, provided no selected tile sits above it
// in the same column.
func (s *Session) Deselect(tileID string) bool {
	if s.processing {
		return false
	}
	t, pos, ok := s.board.Locate(tileID)
	if !ok || !s.isSelected(tileID) {
		return false
	}
	above := s.board.columns[t.Column][pos+1:]
	if slices.ContainsFunc(above, func(a *Tile) bool { return s.isSelected(a.ID) }) {
		return false
	}
	s.selected = slices.DeleteFunc(s.selected, func(sel *Tile) bool { return sel.ID == tileID })
	return true
}

// ConfirmOrReset commits the current word or clears an invalid selection.
func (s *Session) ConfirmOrReset() Outcome {
	if s.processing {
		return OutcomeRejected
	}
	word := s.CurrentWord()

	switch s.Classification() {
	case ClassTargetUnfound:
		s.processing = true
		s.found = append(s.found, word)
		s.revealed = slices.DeleteFunc(s.revealed, func(w string) bool { return w == word })
		s.highlight = HighlightCorrect
		s.emit(TaskRemoveTiles, s.delays.Found, s.selectedIDs())
		return OutcomeFound

	case ClassInDictionary:
		s.processing = true
		s.hidden = append(s.hidden, word)
		s.highlight = HighlightBonus
		s.emit(TaskClearSelection, s.delays.Hidden, s.selectedIDs())
		return OutcomeHidden

	case ClassInvalid:
		s.selected = nil
		return OutcomeReset

	default:
		return OutcomeRejected
	}
}

// Hint reveals the first target that is neither found nor revealed.
func (s *Session) Hint() (string, bool) {
	if s.processing {
		return "", false
	}
	next, ok := lo.Find(s.targets, func(w string) bool {
		return !slices.Contains(s.found, w) && !slices.Contains(s.revealed, w)
	})
	if !ok {
		return "", false
	}
	s.revealed = append(s.revealed, next)
	return next, true
}

// HintAvailable reports whether Hint would reveal another word.
func (s *Session) HintAvailable() bool {
	return lo.SomeBy(s.targets, func(w string) bool {
		return !slices.Contains(s.found, w) && !slices.Contains(s.revealed, w)
	})
}

// RevealColors switches an uncoloured level to coloured, once.
func (s *Session) RevealColors() bool {
	if s.processing || s.colored {
		return false
	}
	s.colored = true
	return true
}

// Restart regenerates the board from the targets not yet found. Found,
// revealed and hidden words are kept.
func (s *Session) Restart() bool {
	if s.processing {
		return false
	}
	remaining := s.Remaining()
	if len(remaining) == 0 {
		return false
	}
	s.selected = nil
	s.highlight = HighlightNone
	s.board = s.gen.Generate(s.layout, remaining, s.wordIndex)
	return true
}

// Remaining lists unfound targets in target order.
func (s *Session) Remaining() []string {
	return lo.Filter(s.targets, func(w string, _ int) bool { return !slices.Contains(s.found, w) })
}

// TakeTasks drains the task requests emitted since the last call.
func (s *Session) TakeTasks() []Task {
	out := make([]Task, 0, s.outbox.Len())
	for s.outbox.Len() > 0 {
		out = append(out, s.outbox.PopFront())
	}
	return out
}

// Complete runs the continuation of a pending task exactly once.
func (s *Session) Complete(taskID string) error {
	task, ok := s.pending[taskID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	delete(s.pending, taskID)

	switch task.Kind {
	case TaskRemoveTiles:
		s.board.remove(lo.SliceToMap(task.TileIDs, func(id string) (string, struct{}) {
			return id, struct{}{}
		}))
		s.selected = nil
		s.highlight = HighlightNone
		s.processing = false
		if len(s.found) == len(s.targets) {
			s.emit(TaskWin, s.delays.Win, nil)
		}
	case TaskClearSelection:
		s.selected = nil
		s.highlight = HighlightNone
		s.processing = false
	case TaskWin:
		s.won = true
	}
	return nil
}

func (s *Session) emit(kind TaskKind, delay time.Duration, tileIDs []string) {
	task := Task{ID: uuid.NewString(), Kind: kind, Delay: delay, TileIDs: tileIDs}
	s.pending[task.ID] = task
	s.outbox.PushBack(task)
}

func (s *Session) selectedIDs() []string {
	return lo.Map(s.selected, func(t *Tile, _ int) string { return t.ID })
}
