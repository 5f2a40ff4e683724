package nlp

import (
	"strings"
	"unicode"

	"github.com/ppiankov/storylint/internal/wordlist"
)

// mapTagger tags words from a fixed dictionary; unknown words are nouns
// and punctuation is tagged as itself.
type mapTagger map[string]string

func (m mapTagger) Tag(text string) ([]Token, error) {
	words := Tokenize(text)
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		tag, ok := m[strings.ToLower(w)]
		if !ok {
			tag = "NN"
			if r := []rune(w); len(r) == 1 && unicode.IsPunct(r[0]) {
				tag = w
			}
		}
		tokens = append(tokens, Token{Word: w, Tag: tag})
	}
	return tokens, nil
}

var testTags = mapTagger{
	"i": "PRP", "want": "VBP", "to": "TO", "be": "VB", "able": "JJ", "login": "VB",
	"my": "PRP$", "so": "IN", "that": "IN", "can": "MD", "access": "VB", "as": "IN",
	"a": "DT", "an": "DT", "the": "DT", "and": "CC", "or": "CC", "create": "VB",
	"edit": "VB", "delete": "VB", "new": "JJ", "red": "JJ", "is": "VBZ", "see": "VBP",
	"upload": "VB", "it": "PRP", "she": "PRP",
}

func newTestProcessor(lists map[string][]string) *Processor {
	return NewProcessor(testTags, wordlist.NewMemoryStore(lists), nil)
}
