package nlp

import "github.com/ppiankov/storylint/internal/wordlist"

// Penn Treebank tag classes
var (
	nounTags        = tagSet("NN", "NNS", "NNP", "NNPS")
	verbTags        = tagSet("VB", "VBD", "VBG", "VBN", "VBP", "VBZ")
	comparativeTags = tagSet("JJR", "RBR")
	superlativeTags = tagSet("JJS", "RBS")
	anaphoraTags    = tagSet("PRP", "PRP$")
)

const (
	properNounTag = "NNP"
	modalTag      = "MD"
)

func tagSet(tags ...string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return set
}

// Classifier decides noun and verb membership using tags corrected by the
// exception word lists:
//   - verb_exceptions always count as nouns and never as verbs
//   - noun_exceptions are not nouns when "i" is being ignored
//   - verb_noun_exceptions may swing between noun and verb
type Classifier struct {
	words wordlist.Store
}

// NewClassifier creates a classifier over the given word lists
func NewClassifier(words wordlist.Store) *Classifier {
	return &Classifier{words: words}
}

// IsNoun reports whether the token counts as a noun
func (c *Classifier) IsNoun(tok Token, ignoreI bool) bool {
	forced := wordlist.Contains(c.words, wordlist.VerbExceptions, tok.Word)
	isNoun := nounTags[tok.Tag] || forced
	if ignoreI {
		isNoun = (isNoun && !wordlist.Contains(c.words, wordlist.NounExceptions, tok.Word)) || forced
	}
	return isNoun
}

// IsVerb reports whether the token counts as a verb
func (c *Classifier) IsVerb(tok Token) bool {
	return verbTags[tok.Tag] && !wordlist.Contains(c.words, wordlist.VerbExceptions, tok.Word)
}

func (c *Classifier) IsModal(tok Token) bool {
	return tok.Tag == modalTag
}

func (c *Classifier) IsProperNoun(tok Token) bool {
	return tok.Tag == properNounTag
}

func IsComparative(tok Token) bool { return comparativeTags[tok.Tag] }

func IsSuperlative(tok Token) bool { return superlativeTags[tok.Tag] }

func IsAnaphora(tok Token) bool { return anaphoraTags[tok.Tag] }

// IsAmbivalent reports whether the word is on the noun/verb ambivalent list
func (c *Classifier) IsAmbivalent(word string) bool {
	return wordlist.Contains(c.words, wordlist.VerbNounExceptions, word)
}

// IsPotentialNounOrVerb reports whether an ambivalent word is currently
// counted as a noun or a verb and so could be counted as the other.
func (c *Classifier) IsPotentialNounOrVerb(tok Token) bool {
	return c.IsAmbivalent(tok.Word) && (c.IsNoun(tok, false) || c.IsVerb(tok))
}

// HasRequired reports whether tokens hold at least minVerbs verbs and
// minNouns nouns. A nil slice means the chunk is absent and passes both.
//
// When exactly one side falls short, surplus tokens on the other side may
// cover the deficit if enough of them are ambivalent words.
func (c *Classifier) HasRequired(tokens []Token, minNouns, minVerbs int, ignoreI bool) (verbsOK, nounsOK bool) {
	if tokens == nil {
		return true, true
	}

	var verbs, nouns []Token
	for _, tok := range tokens {
		if c.IsNoun(tok, ignoreI) {
			nouns = append(nouns, tok)
		} else if c.IsVerb(tok) {
			verbs = append(verbs, tok)
		}
	}

	verbsOK = len(verbs) >= minVerbs
	nounsOK = len(nouns) >= minNouns
	if verbsOK != nounsOK {
		if verbsOK {
			nounsOK = c.coversDeficit(verbs, nouns, minNouns, minVerbs)
		} else {
			verbsOK = c.coversDeficit(nouns, verbs, minVerbs, minNouns)
		}
	}
	return verbsOK, nounsOK
}

// coversDeficit checks whether spare tokens in found could stand in for
// the ones missing from short.
func (c *Classifier) coversDeficit(found, short []Token, minShort, minFound int) bool {
	missing := minShort - len(short)
	spare := len(found) - minFound
	if missing > spare {
		return false
	}

	ambivalent := 0
	for _, tok := range found {
		if c.IsPotentialNounOrVerb(tok) {
			ambivalent++
		}
	}
	return ambivalent >= missing
}
