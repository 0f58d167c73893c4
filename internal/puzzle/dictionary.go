package puzzle

import (
	"bufio"
	"io"
	"strings"
)

// Dictionary is an immutable set of upper-cased words.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary normalizes words into a set; blank entries are dropped.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w = NormalizeWord(w); w != "" {
			d.words[w] = struct{}{}
		}
	}
	return d
}

// ReadDictionary parses a newline-delimited word list.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewDictionary(words), nil
}

func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[word]
	return ok
}

func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// NormalizeWord trims and upper-cases a word.
func NormalizeWord(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}
