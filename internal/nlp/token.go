// Package nlp holds the part-of-speech tagging, text clean-up and shallow
// grammar heuristics shared by the extractors, validators and the
// ambiguity detector. Tags follow the Penn Treebank set.
package nlp

import (
	"regexp"
	"strings"
)

// Token is a word with its part-of-speech tag
type Token struct {
	Word string `json:"word" yaml:"word"`
	Tag  string `json:"tag" yaml:"tag"`
}

// Tagger splits text into words and tags each one. Implementations must be
// safe for concurrent use.
type Tagger interface {
	Tag(text string) ([]Token, error)
}

var wordPattern = regexp.MustCompile(`'[A-Za-z]+|[A-Za-z0-9]+(?:[-_][A-Za-z0-9]+)*|\S`)

// Tokenize splits text into words, clitics ('s, 't) and single punctuation marks
func Tokenize(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// Words returns the word of every token
func Words(tokens []Token) []string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Word
	}
	return words
}

// String renders tokens as word/TAG pairs
func String(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Word + "/" + t.Tag
	}
	return strings.Join(parts, " ")
}
