package nlp

import (
	"strings"
	"unicode"
)

// LexiconTagger is a dependency-free tagger built from a closed-class
// lexicon, a small verb list and suffix heuristics, corrected by a second
// pass of context rules. It is far less accurate than ProseTagger but is
// deterministic and fast, which suits offline use and large batches.
type LexiconTagger struct {
	lexicon map[string]string
	verbs   map[string]bool
}

// NewLexiconTagger creates a tagger with the built-in lexicon
func NewLexiconTagger() *LexiconTagger {
	t := &LexiconTagger{
		lexicon: make(map[string]string),
		verbs:   make(map[string]bool),
	}
	t.loadDefaultLexicon()
	return t
}

// Tag processes text in two passes:
// 1. Baseline: lexicon lookup and suffix heuristics
// 2. Reinforcement: contextual correction rules
func (t *LexiconTagger) Tag(text string) ([]Token, error) {
	words := Tokenize(text)
	tokens := make([]Token, len(words))

	for i, w := range words {
		tokens[i] = Token{Word: w, Tag: t.lookupBaseline(w)}
	}

	for i := 1; i < len(tokens); i++ {
		prev := tokens[i-1]
		prevLower := strings.ToLower(prev.Word)
		cur := tokens[i].Tag

		switch {
		// "the [view]", "my [account]"
		case isModifier(prev.Tag) && (cur == "VB" || cur == "VBP"):
			tokens[i].Tag = "NN"
		// "the [views]"
		case isModifier(prev.Tag) && cur == "VBZ":
			tokens[i].Tag = "NNS"
		// "can [export]"
		case prev.Tag == "MD" && (cur == "NN" || cur == "VBP"):
			tokens[i].Tag = "VB"
		// "want to [register]"
		case prev.Tag == "TO" && (cur == "NN" || cur == "VBP"):
			tokens[i].Tag = "VB"
		// "i [see]"
		case isSubjectPronoun(prevLower) && cur == "VB":
			tokens[i].Tag = "VBP"
		}
	}

	return tokens, nil
}

func (t *LexiconTagger) lookupBaseline(word string) string {
	lower := strings.ToLower(word)

	if tag, ok := t.lexicon[lower]; ok {
		return tag
	}
	if t.verbs[lower] {
		return "VB"
	}
	return t.inferTag(word, lower)
}

func (t *LexiconTagger) inferTag(word, lower string) string {
	r := []rune(word)
	if len(r) == 1 && (unicode.IsPunct(r[0]) || unicode.IsSymbol(r[0])) {
		return word
	}
	if isNumber(lower) {
		return "CD"
	}
	if unicode.IsUpper(r[0]) {
		return "NNP"
	}

	// Inflections of known verbs
	for _, s := range []struct{ suffix, tag string }{
		{"ies", "VBZ"}, {"es", "VBZ"}, {"s", "VBZ"},
		{"ied", "VBN"}, {"ed", "VBN"}, {"d", "VBN"},
		{"ing", "VBG"},
	} {
		if stem, ok := strings.CutSuffix(lower, s.suffix); ok && stem != "" {
			if strings.HasPrefix(s.suffix, "ie") {
				stem += "y"
			}
			if t.verbs[stem] || t.verbs[stem+"e"] {
				return s.tag
			}
		}
	}

	switch {
	case strings.HasSuffix(lower, "ly"):
		return "RB"
	case strings.HasSuffix(lower, "ing"):
		return "VBG"
	case strings.HasSuffix(lower, "ed"):
		return "VBN"
	case hasAnySuffix(lower, "ness", "tion", "sion", "ment", "ity", "ance", "ence", "ship", "ism", "ist", "er", "or"):
		return "NN"
	case hasAnySuffix(lower, "ful", "less", "ous", "ive", "able", "ible", "al", "ic"):
		return "JJ"
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(lower) > 3:
		return "NNS"
	}
	return "NN"
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func isNumber(s string) bool {
	for _, c := range s {
		if !unicode.IsDigit(c) && c != '.' && c != ',' {
			return false
		}
	}
	return s != ""
}

func isModifier(tag string) bool {
	switch tag {
	case "DT", "PRP$", "JJ", "POS":
		return true
	}
	return false
}

func isSubjectPronoun(s string) bool {
	switch s {
	case "i", "we", "you", "they":
		return true
	}
	return false
}

func (t *LexiconTagger) add(tag string, words ...string) {
	for _, w := range words {
		t.lexicon[w] = tag
	}
}

func (t *LexiconTagger) loadDefaultLexicon() {
	t.add("DT", "the", "a", "an", "this", "these", "those", "every", "each", "all", "some", "any", "no", "both", "another")
	t.add("PRP$", "my", "your", "his", "her", "its", "our", "their")
	t.add("PRP", "i", "you", "he", "she", "it", "we", "they", "me", "him", "us", "them",
		"myself", "yourself", "himself", "herself", "itself", "ourselves", "themselves")
	t.add("IN", "in", "on", "at", "for", "with", "by", "from", "of", "about", "into", "through",
		"during", "before", "after", "above", "below", "between", "under", "over", "against",
		"among", "around", "behind", "near", "within", "without", "across", "along", "upon",
		"so", "that", "as", "than", "if", "because", "while", "since", "until", "unless", "whether", "like", "via")
	t.add("TO", "to")
	t.add("CC", "and", "or", "but", "nor", "&", "+")
	t.add("MD", "can", "could", "will", "would", "shall", "should", "may", "might", "must")
	t.add("VBZ", "is", "has", "does")
	t.add("VBP", "are", "am", "have", "do", "want", "need")
	t.add("VBD", "was", "were", "had", "did")
	t.add("VB", "be")
	t.add("VBN", "been", "given", "taken", "shown", "seen", "done", "logged", "signed")
	t.add("VBG", "being")
	t.add("WRB", "when", "where", "how", "why")
	t.add("WDT", "which", "whatever")
	t.add("WP", "who", "whom", "what")
	t.add("RB", "then", "not", "'t", "also", "very", "too", "only", "just", "now", "always", "never",
		"often", "again", "already", "still", "there", "here", "immediately", "automatically")
	t.add("POS", "'s")
	t.add("JJ", "able", "new", "main", "good", "bad", "easy", "simple", "fast", "quick", "slow",
		"large", "small", "big", "high", "low", "old", "same", "different", "other", "own",
		"available", "valid", "invalid", "correct", "incorrect", "empty", "full", "current", "previous", "next")
	t.add("JJR", "better", "faster", "easier", "larger", "smaller", "bigger", "higher", "lower",
		"greater", "quicker", "slower", "simpler", "more", "less", "fewer")
	t.add("JJS", "best", "fastest", "easiest", "largest", "smallest", "biggest", "highest", "lowest",
		"greatest", "quickest", "slowest", "simplest", "most", "least", "fewest")

	for _, v := range []string{
		"access", "add", "appear", "book", "browse", "buy", "cancel", "change", "check", "choose",
		"click", "close", "complete", "confirm", "connect", "contain", "create", "delete",
		"display", "download", "edit", "enter", "export", "filter", "find", "get", "go", "import",
		"include", "keep", "know", "load", "log", "login", "make", "manage", "match", "navigate",
		"open", "order", "pay", "print", "read", "receive", "redesign", "register", "remove",
		"reset", "return", "save", "search", "see", "select", "send", "set", "share", "show",
		"sign", "sort", "submit", "track", "update", "upload", "use", "verify", "view", "write",
	} {
		t.verbs[v] = true
	}
}

var _ Tagger = (*LexiconTagger)(nil)
