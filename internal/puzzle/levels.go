package puzzle

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"stackwords/internal/types"
)

var (
	ErrNoLevels     = errors.New("puzzle: no levels")
	ErrInvalidLevel = errors.New("puzzle: invalid level")
)

// Format is the encoding of a level file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the level format from a file extension. Anything that
// is not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ReadLevels decodes and validates an ordered list of level configs.
func ReadLevels(r io.Reader, format Format) ([]types.LevelConfig, error) {
	var levels []types.LevelConfig
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&levels); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode levels: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&levels); err != nil {
			return nil, fmt.Errorf("decode levels: %w", err)
		}
	}
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	for i, l := range levels {
		if err := ValidateLevel(l); err != nil {
			return nil, fmt.Errorf("level #%d (id %d): %w", i+1, l.ID, err)
		}
	}
	return levels, nil
}

// ValidateLevel rejects configs the generator cannot play.
func ValidateLevel(l types.LevelConfig) error {
	if l.Cols < 1 {
		return fmt.Errorf("%w: cols must be at least 1, got %d", ErrInvalidLevel, l.Cols)
	}
	if l.Rows < 1 {
		return fmt.Errorf("%w: rows must be at least 1, got %d", ErrInvalidLevel, l.Rows)
	}

	words := lo.Filter(lo.Map(l.Words, func(w string, _ int) string { return NormalizeWord(w) }),
		func(w string, _ int) bool { return w != "" })
	if len(words) == 0 {
		return fmt.Errorf("%w: no words", ErrInvalidLevel)
	}
	if dups := lo.FindDuplicates(words); len(dups) > 0 {
		return fmt.Errorf("%w: duplicate words %v", ErrInvalidLevel, dups)
	}

	switch l.Difficulty.Order {
	case "", types.PlacementRandom, types.PlacementLinear, types.PlacementCluster:
	default:
		return fmt.Errorf("%w: unknown order %q", ErrInvalidLevel, l.Difficulty.Order)
	}
	switch l.Difficulty.Letters {
	case "", types.LetterSortDirect, types.LetterSortKeepBase, types.LetterSortMirror, types.LetterSortRandom:
	default:
		return fmt.Errorf("%w: unknown letters %q", ErrInvalidLevel, l.Difficulty.Letters)
	}
	return nil
}

// Capacity is the number of tiles a level fits under its row cap.
func Capacity(l types.LevelConfig) int {
	return l.Cols * l.Rows
}

// LetterCount is the number of tiles a level generates.
func LetterCount(l types.LevelConfig) int {
	return lo.SumBy(l.Words, func(w string) int { return len([]rune(NormalizeWord(w))) })
}

// MissingFromDictionary lists a level's target words the dictionary lacks.
func MissingFromDictionary(l types.LevelConfig, dict *Dictionary) []string {
	var out []string
	for _, w := range l.Words {
		if w = NormalizeWord(w); w != "" && !dict.Contains(w) && !slices.Contains(out, w) {
			out = append(out, w)
		}
	}
	return out
}
