package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"

	"stackwords/internal/puzzle"
	"stackwords/internal/types"
)

// loadLevelsFile reads and validates the ordered level list.
func loadLevelsFile(path string) ([]types.LevelConfig, error) {
	logInfo("Loading levels from %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	levels, err := puzzle.ReadLevels(f, puzzle.FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return levels, nil
}

// loadDictionaryFile reads the newline-delimited hidden-word dictionary.
func loadDictionaryFile(path string) (*puzzle.Dictionary, error) {
	logInfo("Loading dictionary from %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dict, err := puzzle.ReadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dict, nil
}

// warnLevelProblems logs target words missing from the dictionary and levels
// whose letters overflow the row cap. Neither stops the server.
func warnLevelProblems(levels []types.LevelConfig, dict *puzzle.Dictionary) {
	lo.ForEach(levels, func(l types.LevelConfig, _ int) {
		if missing := puzzle.MissingFromDictionary(l, dict); len(missing) > 0 {
			logWarn("Level %d: targets not in dictionary: %s", l.ID, strings.Join(missing, ", "))
		}
		if n, capacity := puzzle.LetterCount(l), puzzle.Capacity(l); n > capacity {
			logWarn("Level %d: %d letters exceed the %dx%d grid", l.ID, n, l.Cols, l.Rows)
		}
	})
}
