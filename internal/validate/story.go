package validate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/nlp"
)

// Format prefixes a uniform story follows once punctuation is stripped
const (
	uniformRolePrefix  = "as"
	uniformMeansPrefix = "i want"
	uniformEndsPrefix  = "so that"
)

// minEndsWords counts the "so that" indicator itself
const minEndsWords = 3

// conjunctions split role and means chunks for the atomic check
var conjunctions = []string{"and", "or", "&", "+", "/", "<", ">"}

// StoryValidator runs the structural checks on an extracted user story
type StoryValidator struct {
	p     *nlp.Processor
	lists *nlp.ListDetector
}

// NewStoryValidator creates a new story validator
func NewStoryValidator(p *nlp.Processor) *StoryValidator {
	return &StoryValidator{
		p:     p,
		lists: nlp.NewListDetector(p),
	}
}

// Validate applies every story check in order. Stories that failed
// extraction should not be passed in.
func (v *StoryValidator) Validate(story *model.UserStory) {
	v.WellFormed(story)
	v.Atomic(story)
	v.Minimal(story)
	v.FullSentence(story)
	v.Uniform(story)
}

// WellFormed checks that the means starts with "i"
func (v *StoryValidator) WellFormed(story *model.UserStory) {
	if chunkReportedMissing(story.Defects(), model.CategoryWellFormed, model.MsgMissingMeans) {
		return
	}
	if !startsWithI(story.Means) {
		story.AddDefect(model.CategoryWellFormed, model.MsgMeansNotStartingI)
	}
}

func startsWithI(means *string) bool {
	if means == nil {
		return false
	}
	words := strings.Fields(*means)
	return len(words) > 0 && strings.ToLower(words[0]) == "i"
}

// Atomic flags roles and means that join two complete chunks with a
// conjunction, and means that list several actions
func (v *StoryValidator) Atomic(story *model.UserStory) {
	if v.validPartCount(story.Role, v.validRole) > 1 {
		story.AddDefect(model.CategoryAtomic, model.MsgMoreThanOneRole)
	}
	if v.validPartCount(story.Means, v.validMeans) > 1 {
		story.AddDefect(model.CategoryAtomic, model.MsgMoreThanOneMeans)
	}
	if v.lists.HasListOfVerbs(story.Means) {
		story.AddDefect(model.CategoryAtomic, model.MsgListOfVerbsInMeans)
	}
}

// validPartCount splits a chunk on conjunctions and counts the parts that
// would stand on their own
func (v *StoryValidator) validPartCount(chunk *string, valid func([]nlp.Token) bool) int {
	if chunk == nil {
		return 0
	}
	n := 0
	for _, part := range splitOnConjunctions(*chunk) {
		if isConjunction(part) {
			continue
		}
		if valid(v.p.Tag(part)) {
			n++
		}
	}
	return n
}

func (v *StoryValidator) validRole(tokens []nlp.Token) bool {
	return endsWithNoun(v.p, tokens)
}

func (v *StoryValidator) validMeans(tokens []nlp.Token) bool {
	verbsOK, nounsOK := v.p.HasRequired(tokens, 1, 1, true)
	return verbsOK && nounsOK
}

// splitOnConjunctions cuts text at every conjunction that is not part of
// a longer word and returns the trimmed, non-empty pieces
func splitOnConjunctions(text string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(text); {
		conj := conjunctionAt(text, i)
		if conj == "" {
			i++
			continue
		}
		parts = appendTrimmed(parts, text[start:i])
		i += len(conj)
		start = i
	}
	return appendTrimmed(parts, text[start:])
}

// conjunctionAt returns the conjunction starting at byte i when it has no
// word character directly on either side
func conjunctionAt(text string, i int) string {
	if r, _ := utf8.DecodeLastRuneInString(text[:i]); i > 0 && isWordRune(r) {
		return ""
	}
	for _, c := range conjunctions {
		if !strings.HasPrefix(text[i:], c) {
			continue
		}
		end := i + len(c)
		if r, _ := utf8.DecodeRuneInString(text[end:]); end < len(text) && isWordRune(r) {
			continue
		}
		return c
	}
	return ""
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func appendTrimmed(parts []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		return append(parts, s)
	}
	return parts
}

func isConjunction(s string) bool {
	for _, c := range conjunctions {
		if s == c {
			return true
		}
	}
	return false
}

// Minimal flags text after separating punctuation and bracketed asides.
// Quoted text is not scanned.
func (v *StoryValidator) Minimal(story *model.UserStory) {
	text := nlp.RemoveQuotes(story.LowerText())
	if nlp.HasSeparatingPunctuation(text) {
		story.AddDefect(model.CategoryMinimal, model.MsgSeparatingPunct)
	}
	if len(nlp.BracketContents(text)) > 0 {
		story.AddDefect(model.CategoryMinimal, model.MsgBracketsInStory)
	}
}

// FullSentence checks the means has two verbs and a noun, the role ends in
// a noun and the ends has some words after its indicator
func (v *StoryValidator) FullSentence(story *model.UserStory) {
	d := story.Defects()

	if story.MeansPOS != nil && !chunkReportedMissing(d, model.CategoryWellFormed, model.MsgMissingMeans) {
		verbsOK, nounsOK := v.p.HasRequired(story.MeansPOS, 1, 2, true)
		if !verbsOK {
			story.AddDefect(model.CategoryFullSentence, model.MsgMeansMissingVerb)
		}
		if !nounsOK {
			story.AddDefect(model.CategoryFullSentence, model.MsgMeansMissingNoun)
		}
	}

	if !endsWithNoun(v.p, story.RolePOS) && !chunkReportedMissing(d, model.CategoryWellFormed, model.MsgMissingRole) {
		story.AddDefect(model.CategoryFullSentence, model.MsgRoleNotEndingNoun)
	}

	if story.Ends != nil && len(strings.Fields(*story.Ends)) < minEndsWords {
		story.AddDefect(model.CategoryFullSentence, model.MsgEndsMissingWords)
	}
}

// endsWithNoun reports whether the last token is a noun, not counting "i"
func endsWithNoun(p *nlp.Processor, tokens []nlp.Token) bool {
	return len(tokens) > 0 && p.IsNoun(tokens[len(tokens)-1], true)
}

// Uniform checks each chunk starts with its indicator and that a story
// with a role starts with it
func (v *StoryValidator) Uniform(story *model.UserStory) {
	if !followsFormat(story) {
		story.AddDefect(model.CategoryUniform, model.MsgNotUniform)
	}
}

func followsFormat(story *model.UserStory) bool {
	hasPrefix := func(chunk *string, prefix string) bool {
		return chunk == nil || *chunk == "" || strings.HasPrefix(nlp.StripPunctuation(*chunk), prefix)
	}

	if !hasPrefix(story.Role, uniformRolePrefix) ||
		!hasPrefix(story.Means, uniformMeansPrefix) ||
		!hasPrefix(story.Ends, uniformEndsPrefix) {
		return false
	}
	if story.Role != nil && *story.Role != "" &&
		!strings.HasPrefix(nlp.StripPunctuation(story.LowerText()), uniformRolePrefix) {
		return false
	}
	return true
}
