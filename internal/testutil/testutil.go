// Package testutil provides deterministic collaborators for analyser tests.
package testutil

import (
	"strings"
	"unicode"

	"github.com/ppiankov/storylint/internal/nlp"
	"github.com/ppiankov/storylint/internal/wordlist"
)

// baseTags covers the vocabulary used across the analyser tests
var baseTags = map[string]string{
	// closed classes
	"a": "DT", "an": "DT", "the": "DT", "this": "DT", "all": "DT", "some": "DT", "every": "DT",
	"i": "PRP", "it": "PRP", "she": "PRP", "he": "PRP", "they": "PRP", "them": "PRP", "we": "PRP", "me": "PRP",
	"my": "PRP$", "her": "PRP$", "his": "PRP$", "its": "PRP$", "their": "PRP$", "our": "PRP$",
	"as": "IN", "so": "IN", "that": "IN", "to": "TO", "on": "IN", "of": "IN", "in": "IN", "than": "IN", "with": "IN",
	"for": "IN", "by": "IN", "from": "IN", "if": "IN",
	"and": "CC", "or": "CC",
	"can": "MD", "should": "MD", "could": "MD", "might": "MD", "will": "MD", "may": "MD", "must": "MD",
	"when": "WRB", "then": "RB", "not": "RB", "also": "RB", "quickly": "RB", "possibly": "RB",
	"'s": "POS",

	// verbs
	"want": "VBP", "be": "VB", "is": "VBZ", "are": "VBP", "see": "VBP", "given": "VBN",
	"login": "VB", "logout": "VB", "access": "VB", "create": "VB", "edit": "VB", "delete": "VB",
	"upload": "VB", "redesign": "VB", "register": "VB", "connect": "VBP", "click": "VBP",
	"view": "VB", "save": "VB", "open": "VB", "add": "VB", "pay": "VB", "export": "VB",
	"includes": "VBZ", "matches": "VBZ", "shows": "VBZ", "appears": "VBZ", "contains": "VBZ",
	"displayed": "VBN", "labelled": "VBN", "logged": "VBN", "clicked": "VBD", "support": "VB",
	"going": "VBG", "try": "VB", "need": "VBP", "clicks": "VBZ", "closes": "VBZ", "loaded": "VBN",

	// adjectives
	"able": "JJ", "new": "JJ", "red": "JJ", "main": "JJ", "blue": "JJ", "large": "JJ", "big": "JJ",
	"faster": "JJR", "better": "JJR", "lower": "JJR", "more": "JJR",
	"best": "JJS", "fastest": "JJS", "least": "JJS", "greatest": "JJS",

	// proper nouns
	"alice": "NNP", "bob": "NNP",
}

// Tagger tags words from a dictionary. Unknown words are nouns and single
// punctuation marks are tagged as themselves, like the Penn Treebank does.
type Tagger struct {
	tags map[string]string
}

// NewTagger creates a tagger over the base vocabulary plus extra entries,
// which win on conflict. Keys are lowercase words.
func NewTagger(extra map[string]string) *Tagger {
	tags := make(map[string]string, len(baseTags)+len(extra))
	for w, t := range baseTags {
		tags[w] = t
	}
	for w, t := range extra {
		tags[strings.ToLower(w)] = t
	}
	return &Tagger{tags: tags}
}

func (t *Tagger) Tag(text string) ([]nlp.Token, error) {
	words := nlp.Tokenize(text)
	tokens := make([]nlp.Token, 0, len(words))
	for _, w := range words {
		tag, ok := t.tags[strings.ToLower(w)]
		if !ok {
			tag = "NN"
			if r := []rune(w); len(r) == 1 && (unicode.IsPunct(r[0]) || unicode.IsSymbol(r[0])) {
				tag = w
			}
		}
		// Capitalised proper nouns keep their tag only when written capitalised
		if tag == "NNP" && !unicode.IsUpper([]rune(w)[0]) {
			tag = "NN"
		}
		tokens = append(tokens, nlp.Token{Word: w, Tag: tag})
	}
	return tokens, nil
}

// Words returns a memory store with the built-in lists, overridden per list
// by the given entries
func Words(override map[string][]string) *wordlist.MemoryStore {
	lists, err := wordlist.Defaults()
	if err != nil {
		panic(err)
	}
	for name, words := range override {
		lists[name] = words
	}
	return wordlist.NewMemoryStore(lists)
}

// Processor builds a processor over NewTagger(extra) and Words(lists)
func Processor(extra map[string]string, lists map[string][]string) *nlp.Processor {
	return nlp.NewProcessor(NewTagger(extra), Words(lists), nil)
}

var _ nlp.Tagger = (*Tagger)(nil)
