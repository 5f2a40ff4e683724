package nlp

import "strings"

var (
	listIndicators   = []string{", ", " or ", " and "}
	listConjunctions = map[string]bool{"and": true, "or": true}
)

// Noun phrases closer than this many characters may belong to one list.
// Small overlaps are allowed for re-tokenised text.
const (
	minPhraseGap = -5
	maxPhraseGap = 10
)

// ListDetector finds enumerations of noun phrases or actions in a chunk
type ListDetector struct {
	p *Processor
}

// NewListDetector creates a detector using p for tagging
func NewListDetector(p *Processor) *ListDetector {
	return &ListDetector{p: p}
}

// HasList reports whether the chunk enumerates two or more noun phrases
// separated by a comma, "or" or "and". Quoted text is ignored.
//
// Phrase positions come from the first occurrence of each phrase in the
// text, so a repeated phrase can be placed at the wrong occurrence.
func (d *ListDetector) HasList(chunk *string) bool {
	if chunk == nil {
		return false
	}
	text := RemoveQuotes(*chunk)
	phrases := NounPhrases(d.p.Tag(text))
	return hasList(text, potentialLists(text, phrases))
}

// potentialLists groups noun phrases that sit close together in text
func potentialLists(text string, phrases []string) [][]string {
	var groups [][]string
	counter := 0

	for _, phrase := range phrases {
		curr := strings.Index(text, phrase)
		if curr < 0 {
			continue
		}
		at := indexOf(phrases, phrase)
		if at+1 >= len(phrases) {
			continue
		}
		next := phrases[at+1]
		nextPos := strings.Index(text, next)
		if nextPos < 0 {
			continue
		}

		diff := nextPos - (curr + len(phrase))
		if diff >= minPhraseGap && diff < maxPhraseGap {
			if counter < len(groups) {
				groups[counter] = appendMissing(groups[counter], phrase)
			} else {
				groups = append(groups, []string{phrase})
			}
			groups[counter] = appendMissing(groups[counter], next)
		} else if counter < len(groups) {
			counter++
		}
	}
	return groups
}

// hasList checks the text between consecutive members of each group for a
// list indicator
func hasList(text string, groups [][]string) bool {
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		for i, item := range group {
			start := strings.Index(text, item)
			if start < 0 || i+1 >= len(group) {
				continue
			}
			end := start + len(item)
			next := strings.Index(text, group[i+1])
			if next < 0 || next <= end {
				continue
			}
			between := text[end:next]
			for _, ind := range listIndicators {
				if strings.Contains(between, ind) {
					return true
				}
			}
		}
	}
	return false
}

// HasListOfVerbs reports the pattern <verb> and/or <verb>, such as
// "create and edit". The first word may also be an ambivalent word.
func (d *ListDetector) HasListOfVerbs(chunk *string) bool {
	if chunk == nil {
		return false
	}
	tokens := d.p.Tag(*chunk)
	for i := 0; i+2 < len(tokens); i++ {
		if !d.p.IsVerb(tokens[i]) && !d.p.IsAmbivalent(tokens[i].Word) {
			continue
		}
		if listConjunctions[tokens[i+1].Word] && d.p.IsVerb(tokens[i+2]) {
			return true
		}
	}
	return false
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func appendMissing(list []string, s string) []string {
	if indexOf(list, s) >= 0 {
		return list
	}
	return append(list, s)
}
