// Package ambiguity flags wording that leaves a requirement open to
// interpretation. The same checks run on user stories and acceptance criteria.
package ambiguity

import (
	"strings"

	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/nlp"
	"github.com/ppiankov/storylint/internal/wordlist"
)

const (
	than          = "than"
	thanLookahead = 4
	termPadding   = " "
)

var (
	comparativeExceptions = map[string]bool{"lower": true}
	superlativeExceptions = map[string]bool{"least": true, "greatest": true}
	anaphoraExceptions    = map[string]bool{"my": true, "i": true, "me": true, "our": true, "offline": true}
)

// Detector runs the six ambiguity checks
type Detector struct {
	p     *nlp.Processor
	words wordlist.Store
}

// New creates a detector using the processor's tagger and word lists
func New(p *nlp.Processor) *Detector {
	return &Detector{
		p:     p,
		words: p.WordLists(),
	}
}

// Check scans the quote-stripped lowercase text of a and records one
// Ambiguity message per positive check
func (d *Detector) Check(a model.Artifact) {
	text := nlp.RemoveQuotes(a.LowerText())
	tokens := d.p.Tag(text)

	// 1. Subjectivity
	comparatives, superlatives := Subjective(tokens)
	if len(superlatives) > 0 {
		a.AddDefect(model.CategoryAmbiguity, model.MsgSuperlatives(superlatives))
	}
	if len(comparatives) > 0 {
		a.AddDefect(model.CategoryAmbiguity, model.MsgComparatives(comparatives))
	}

	// 2. Vagueness
	if found := d.Terms(text, wordlist.VagueTerms); len(found) > 0 {
		a.AddDefect(model.CategoryAmbiguity, model.MsgVagueTerms(found))
	}

	// 3. Non-commitment
	if found := d.Terms(text, wordlist.EscapeClauses); len(found) > 0 {
		a.AddDefect(model.CategoryAmbiguity, model.MsgEscapeClauses(found))
	}

	// 4. Anaphora
	if found := Anaphora(tokens); len(found) > 0 {
		a.AddDefect(model.CategoryAmbiguity, model.MsgAnaphora(found))
	}

	// 5. Quantifiers
	if found := d.Terms(text, wordlist.Quantifiers); len(found) > 0 {
		a.AddDefect(model.CategoryAmbiguity, model.MsgQuantifiers(found))
	}

	// 6. Weakness
	if found := d.WeakVerbs(tokens); len(found) > 0 {
		a.AddDefect(model.CategoryAmbiguity, model.MsgWeakVerbs(found))
	}
}

// Subjective returns comparative and superlative words. A comparative
// followed by "than" within four tokens names its baseline and is allowed.
func Subjective(tokens []nlp.Token) (comparatives, superlatives []string) {
	for i, tok := range tokens {
		switch {
		case nlp.IsComparative(tok) && !thanFollows(tokens, i) && !comparativeExceptions[tok.Word]:
			comparatives = append(comparatives, tok.Word)
		case nlp.IsSuperlative(tok) && !superlativeExceptions[tok.Word]:
			superlatives = append(superlatives, tok.Word)
		}
	}
	return comparatives, superlatives
}

func thanFollows(tokens []nlp.Token, i int) bool {
	end := min(i+1+thanLookahead, len(tokens))
	for _, tok := range tokens[i+1 : end] {
		if tok.Word == than {
			return true
		}
	}
	return false
}

// Terms returns the entries of a term list that occur in text as whole
// space-delimited phrases, in list order. Terms at the very start or end
// of text are not matched.
func (d *Detector) Terms(text, list string) []string {
	var found []string
	for _, term := range d.words.Get(list) {
		if strings.Contains(text, termPadding+term+termPadding) {
			found = append(found, term)
		}
	}
	return found
}

// Anaphora returns personal and possessive pronouns that do not refer to
// the writer
func Anaphora(tokens []nlp.Token) []string {
	var found []string
	for _, tok := range tokens {
		if nlp.IsAnaphora(tok) && !anaphoraExceptions[tok.Word] {
			found = append(found, tok.Word)
		}
	}
	return found
}

// WeakVerbs returns verbs and modals from the weak_verbs list
func (d *Detector) WeakVerbs(tokens []nlp.Token) []string {
	var found []string
	for _, tok := range tokens {
		if !d.p.IsVerb(tok) && !d.p.IsModal(tok) {
			continue
		}
		if wordlist.Contains(d.words, wordlist.WeakVerbs, tok.Word) {
			found = append(found, tok.Word)
		}
	}
	return found
}
