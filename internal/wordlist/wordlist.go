// Package wordlist provides the exception and term lists consumed by the
// analysers. Lists are flat, ordered sets of lowercase words or phrases.
package wordlist

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// List names
const (
	NounExceptions     = "noun_exceptions"      // never nouns when "i" is ignored
	VerbExceptions     = "verb_exceptions"      // always nouns, never verbs
	VerbNounExceptions = "verb_noun_exceptions" // ambivalent noun/verb domain words
	VagueTerms         = "vague_terms"
	EscapeClauses      = "escape_clauses"
	Quantifiers        = "quantifiers"
	WeakVerbs          = "weak_verbs"
)

// Names lists every known word list
var Names = []string{
	NounExceptions,
	VerbExceptions,
	VerbNounExceptions,
	VagueTerms,
	EscapeClauses,
	Quantifiers,
	WeakVerbs,
}

var (
	ErrUnknownList  = errors.New("unknown word list")
	ErrReadOnlyList = errors.New("word list is read-only")
)

// Store reads and extends word lists
type Store interface {
	// Get returns the list in file order; callers must not modify it
	Get(name string) []string
	// Append adds a word; it is visible to every later Get
	Append(name, word string) error
}

// Known reports whether name is a word list
func Known(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Appendable reports whether words may be added to the list
func Appendable(name string) bool {
	switch name {
	case NounExceptions, VerbExceptions, VerbNounExceptions:
		return true
	}
	return false
}

// Contains reports whether word is on the named list
func Contains(s Store, name, word string) bool {
	for _, w := range s.Get(name) {
		if w == word {
			return true
		}
	}
	return false
}

// Parse reads one entry per line. Blank lines and # comments are skipped.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func normalise(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
