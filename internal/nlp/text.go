package nlp

import (
	"regexp"
	"strings"
)

// Abbreviations are removed before splitting so their dots are not
// mistaken for sentence breaks.
var abbreviations = strings.NewReplacer(
	"e.g.", "", "e.g", "", "eg.", "",
	"i.e.", "", "i.e", "", "ie.", "",
	"a.k.a.", "", "a.k.a", "",
	"dr.", "", "miss.", "", "ms.", "", "mrs.", "", "mr.", "",
)

var separators = regexp.MustCompile(`\. |- |; |\? |\* |! `)

// SplitOnPunctuation splits text on separating punctuation followed by a
// space and drops empty fragments.
func SplitOnPunctuation(text string) []string {
	text = abbreviations.Replace(text)
	var fragments []string
	for _, f := range separators.Split(text, -1) {
		if f != "" {
			fragments = append(fragments, f)
		}
	}
	return fragments
}

// HasSeparatingPunctuation reports whether text carries on after a
// separator. Trailing punctuation alone does not count.
func HasSeparatingPunctuation(text string) bool {
	fragments := SplitOnPunctuation(text)
	for i := 1; i < len(fragments); i++ {
		if len(fragments[i]) > 0 && len(fragments[i-1]) > 0 {
			return true
		}
	}
	return false
}

var nonLetters = regexp.MustCompile(`[^a-zA-Z\s]`)

// StripPunctuation keeps only ASCII letters and whitespace
func StripPunctuation(text string) string {
	return nonLetters.ReplaceAllString(text, "")
}

// Quoted spans. Single quotes must not follow a letter so apostrophes in
// "user's" or "can't" are not taken as openers.
var (
	doubleQuoted = regexp.MustCompile(`"[^"“”‘’']+"`)
	curlyQuoted  = regexp.MustCompile(`[“”][^"“”‘’']+[“”]`)
	singleQuoted = regexp.MustCompile(`(^|[^A-Za-z])[‘’'][^"“”‘’']+[‘’']`)
)

// RemoveQuotes removes every quoted span, delimiters included, then
// collapses double spaces and trims. Applying it twice gives the same
// result as applying it once.
func RemoveQuotes(text string) string {
	for {
		next := doubleQuoted.ReplaceAllString(text, "")
		next = curlyQuoted.ReplaceAllString(next, "")
		next = singleQuoted.ReplaceAllString(next, "${1}")
		for strings.Contains(next, "  ") {
			next = strings.ReplaceAll(next, "  ", " ")
		}
		next = strings.TrimSpace(next)
		if next == text {
			return next
		}
		text = next
	}
}

var references = regexp.MustCompile(`\[\d+\]`)

// RemoveReferences strips citation markers such as [1] or [23]
func RemoveReferences(text string) string {
	return references.ReplaceAllString(text, "")
}
