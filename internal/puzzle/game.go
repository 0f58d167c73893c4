package puzzle

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"stackwords/internal/types"
)

var ErrLevelIndex = errors.New("puzzle: level index out of range")

// NoticeAllLevelsComplete is raised once when advancing wraps to level one.
const NoticeAllLevelsComplete = "Congratulations! You have completed all levels!"

// Options configures a Game.
type Options struct {
	Levels     []types.LevelConfig
	Dictionary *Dictionary
	Rand       Source
	Delays     Delays
	Logger     *zerolog.Logger
}

// Game walks the level list and owns the current Session. Like Session it
// expects a single caller at a time.
type Game struct {
	levels  []types.LevelConfig
	dict    *Dictionary
	gen     *Generator
	delays  Delays
	log     zerolog.Logger
	index   int
	session *Session
	notice  string
	nextID  int
}

// NewGame loads the first level.
func NewGame(opts Options) (*Game, error) {
	if len(opts.Levels) == 0 {
		return nil, ErrNoLevels
	}
	g := &Game{
		levels: opts.Levels,
		dict:   opts.Dictionary,
		delays: opts.Delays,
		log:    zerolog.Nop(),
	}
	if opts.Logger != nil {
		g.log = *opts.Logger
	}
	g.gen = &Generator{Rand: opts.Rand, NextID: g.tileID}
	if err := g.LoadLevel(0); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) tileID() string {
	g.nextID++
	return "t" + strconv.Itoa(g.nextID)
}

// LoadLevel replaces the session with a fresh attempt at level i.
func (g *Game) LoadLevel(i int) error {
	if i < 0 || i >= len(g.levels) {
		return fmt.Errorf("%w: %d", ErrLevelIndex, i)
	}
	g.index = i
	g.session = NewSession(g.levels[i], g.dict, g.gen, g.delays)
	g.log.Info().
		Int("level", g.levels[i].ID).
		Int("tiles", g.session.Board().NumTiles()).
		Str("order", string(g.levels[i].PlacementOrder())).
		Str("letters", string(g.levels[i].LetterSort())).
		Msg("level loaded")
	return nil
}

func (g *Game) Session() *Session { return g.session }
func (g *Game) LevelIndex() int    { return g.index }
func (g *Game) LevelCount() int    { return len(g.levels) }

func (g *Game) Select(tileID string) bool {
	return g.session.Select(tileID)
}

func (g *Game) Deselect(tileID string) bool {
	return g.session.Deselect(tileID)
}

func (g *Game) ConfirmOrReset() Outcome {
	word := g.session.CurrentWord()
	outcome := g.session.ConfirmOrReset()
	if outcome == OutcomeFound || outcome == OutcomeHidden {
		g.log.Info().Str("word", word).Stringer("outcome", outcome).Msg("word committed")
	}
	return outcome
}

func (g *Game) Hint() (string, bool) {
	return g.session.Hint()
}

func (g *Game) RevealColors() bool {
	return g.session.RevealColors()
}

func (g *Game) Restart() bool {
	ok := g.session.Restart()
	if ok {
		g.log.Info().Int("level", g.session.Level().ID).Int("remaining", len(g.session.Remaining())).Msg("level restarted")
	}
	return ok
}

// AdvanceLevel moves to the next level, wrapping to the first after the
// last one. wrapped reports the wrap; ok is false while processing.
func (g *Game) AdvanceLevel() (wrapped, ok bool) {
	if g.session.Processing() {
		return false, false
	}
	next := g.index + 1
	if next >= len(g.levels) {
		next = 0
		wrapped = true
		g.notice = NoticeAllLevelsComplete
		g.log.Info().Msg("all levels completed, wrapping to first")
	}
	if err := g.LoadLevel(next); err != nil {
		return false, false
	}
	return wrapped, true
}

// TakeTasks drains pending task requests of the current session.
func (g *Game) TakeTasks() []Task {
	return g.session.TakeTasks()
}

// Complete forwards a task completion to the current session. Tasks of a
// replaced session come back as ErrUnknownTask.
func (g *Game) Complete(taskID string) error {
	if err := g.session.Complete(taskID); err != nil {
		return err
	}
	g.log.Debug().Str("task", taskID).Msg("task completed")
	if g.session.Won() {
		g.log.Info().Int("level", g.session.Level().ID).Msg("level won")
	}
	return nil
}

// View renders the current session. A pending notice is delivered once.
func (g *Game) View() types.SessionView {
	view := Render(g.session)
	view.LevelIndex = g.index
	view.LevelCount = len(g.levels)
	view.Notice = g.notice
	g.notice = ""
	return view
}
