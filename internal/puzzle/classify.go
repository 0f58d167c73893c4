package puzzle

import "slices"

// WordClass is the classification of the currently assembled word.
type WordClass int

const (
	ClassEmpty WordClass = iota
	ClassAlreadyFound
	ClassTargetUnfound
	ClassInDictionary
	ClassInvalid
)

func (c WordClass) String() string {
	switch c {
	case ClassAlreadyFound:
		return "already_found"
	case ClassTargetUnfound:
		return "target_unfound"
	case ClassInDictionary:
		return "in_dictionary"
	case ClassInvalid:
		return "invalid"
	default:
		return "empty"
	}
}

// Classify places word in exactly one class.
func Classify(word string, targets, found, hidden []string, dict *Dictionary) WordClass {
	switch {
	case word == "":
		return ClassEmpty
	case slices.Contains(found, word) || slices.Contains(hidden, word):
		return ClassAlreadyFound
	case slices.Contains(targets, word):
		return ClassTargetUnfound
	case dict.Contains(word):
		return ClassInDictionary
	default:
		return ClassInvalid
	}
}
