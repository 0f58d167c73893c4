package main

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"stackwords/internal/puzzle"
)

const (
	shippedLevels     = "data/levels.json"
	shippedExample    = "data/levels.example.yaml"
	shippedDictionary = "data/dictionary.txt"
)

func TestDictionaryNoDuplicates(t *testing.T) {
	f, err := os.Open(shippedDictionary)
	if err != nil {
		t.Fatalf("failed to open %s: %v", shippedDictionary, err)
	}
	defer f.Close()
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := puzzle.NormalizeWord(scanner.Text())
		if w == "" {
			continue
		}
		if strings.ContainsAny(w, " \t") {
			t.Errorf("dictionary entry contains whitespace: %q", w)
		}
		if _, ok := seen[w]; ok {
			t.Errorf("duplicate word in %s: %s", shippedDictionary, w)
		}
		seen[w] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}
}

func TestShippedLevelsAreConsistent(t *testing.T) {
	dict, err := loadDictionaryFile(shippedDictionary)
	if err != nil {
		t.Fatalf("failed to load dictionary: %v", err)
	}
	for _, path := range []string{shippedLevels, shippedExample} {
		levels, err := loadLevelsFile(path)
		if err != nil {
			t.Fatalf("failed to load %s: %v", path, err)
		}
		ids := make(map[int]struct{})
		for _, l := range levels {
			if _, ok := ids[l.ID]; ok {
				t.Errorf("%s: duplicate level id %d", path, l.ID)
			}
			ids[l.ID] = struct{}{}
			if missing := puzzle.MissingFromDictionary(l, dict); len(missing) > 0 {
				t.Errorf("%s: level %d targets missing from dictionary: %v", path, l.ID, missing)
			}
			if n := puzzle.LetterCount(l); n > puzzle.Capacity(l) {
				t.Errorf("%s: level %d has %d letters for %d cells", path, l.ID, n, puzzle.Capacity(l))
			}
		}
	}
}
