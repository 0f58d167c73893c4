package puzzle

import (
	"slices"

	"stackwords/internal/types"
)

const keepBaseAttempts = 10

// Source is the randomness the engine draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// shuffle permutes s in place (Fisher–Yates).
func shuffle[T any](rng Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// SortLetters returns the letters of word reordered per mode. The result is
// always a permutation of the input runes.
func SortLetters(word string, mode types.LetterSort, rng Source) []rune {
	letters := []rune(word)

	switch mode {
	case types.LetterSortMirror:
		slices.Reverse(letters)
		return letters

	case types.LetterSortRandom:
		shuffle(rng, letters)
		return letters

	case types.LetterSortKeepBase:
		if len(letters) <= 3 {
			return letters
		}
		middle := letters[1 : len(letters)-1]
		shuffled := slices.Clone(middle)
		for attempt := 0; attempt < keepBaseAttempts; attempt++ {
			shuffle(rng, shuffled)
			if !slices.Equal(shuffled, middle) {
				break
			}
		}
		copy(middle, shuffled)
		return letters

	default:
		return letters
	}
}
