package extract

import (
	"strings"

	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/nlp"
)

// User story indicators, matched against the lowercased text
const (
	roleIndicator          = "as a"
	personaIndicator       = "as"
	meansIndicator         = "i want"
	endsIndicator          = "so that"
	potentialEndsIndicator = "so"
)

// Minimum counts a means must reach before a standalone "so" may start
// potential ends
const (
	potentialEndsNouns = 1
	potentialEndsVerbs = 2
)

// StoryExtractor splits user stories into role, means and ends
type StoryExtractor struct {
	p *nlp.Processor
}

// NewStoryExtractor creates a new story extractor
func NewStoryExtractor(p *nlp.Processor) *StoryExtractor {
	return &StoryExtractor{p: p}
}

// Extract builds a story from raw text and locates its chunks. The second
// result is false when indicator counts, ordering or length make chunking
// meaningless; the story then carries only those defects.
func (e *StoryExtractor) Extract(text string) (*model.UserStory, bool) {
	story := model.NewUserStory(text)

	counted := checkStoryCounts(story)
	ordered := checkStoryOrdering(story)
	sized := checkStoryLength(story)
	if !counted || !ordered || !sized {
		return story, false
	}

	e.splitChunks(story)

	story.RolePOS = e.p.TagChunk(story.Role)
	story.MeansPOS = e.p.TagChunk(story.Means)
	story.EndsPOS = e.p.TagChunk(story.Ends)

	return story, true
}

// checkStoryCounts allows at most one means and one ends indicator
func checkStoryCounts(story *model.UserStory) bool {
	lower := story.LowerText()
	oneMeans := strings.Count(lower, meansIndicator) <= 1
	oneEnds := strings.Count(lower, endsIndicator) <= 1

	if !oneMeans {
		story.AddDefect(model.CategoryAtomic, model.MsgMoreThanOneMeans)
	}
	if !oneEnds {
		story.AddDefect(model.CategoryAtomic, model.MsgMoreThanOneEnds)
	}
	return oneMeans && oneEnds
}

// checkStoryOrdering requires role, means and ends indicators, where
// present, to appear in that order
func checkStoryOrdering(story *model.UserStory) bool {
	lower := story.LowerText()
	if !inOrder(
		strings.Index(lower, roleIndicator),
		strings.Index(lower, meansIndicator),
		strings.Index(lower, endsIndicator),
	) {
		story.AddDefect(model.CategoryWellFormed, model.MsgBadOrdering)
		return false
	}
	return true
}

func checkStoryLength(story *model.UserStory) bool {
	if len(strings.Split(story.LowerText(), " ")) > model.MaxStoryWords {
		story.AddDefect(model.CategoryLength, model.MsgTooLong)
		return false
	}
	return true
}

// inOrder reports whether the indicator positions that are present
// (not -1) are strictly increasing
func inOrder(first, second, third int) bool {
	before := func(a, b int) bool {
		return a == -1 || b == -1 || a < b
	}
	return before(first, second) && before(second, third) && before(first, third)
}

func (e *StoryExtractor) splitChunks(story *model.UserStory) {
	lower := story.LowerText()
	hasRole := strings.Contains(lower, roleIndicator)
	hasMeans := strings.Contains(lower, meansIndicator)

	if hasRole && !hasMeans {
		e.findPotentialMeans(story)
		return
	}
	e.extractRole(story)
	e.extractMeans(story)
	e.extractEnds(story)
}

func (e *StoryExtractor) extractRole(story *model.UserStory) {
	lower := story.LowerText()
	rolePos := strings.Index(lower, roleIndicator)
	meansPos := strings.Index(lower, meansIndicator)
	endsPos := strings.Index(lower, endsIndicator)

	var role string
	switch {
	case rolePos != -1 && meansPos != -1:
		role = slice(lower, rolePos, meansPos)
	case rolePos != -1 && endsPos != -1:
		role = slice(lower, rolePos, endsPos)
	case rolePos != -1:
		role = lower[rolePos:]
	default:
		role = e.findPersonaRole(story.Text)
		if role == "" {
			story.AddDefect(model.CategoryWellFormed, model.MsgMissingRole)
		}
	}
	story.Role = model.StrPtr(strings.ToLower(strings.TrimSpace(role)))
}

// findPersonaRole handles named personas ("As Alice, I want ..."): it
// returns the text up to the first proper noun directly after "as". The
// original casing is tagged so proper nouns are still recognisable.
func (e *StoryExtractor) findPersonaRole(text string) string {
	tokens := e.p.Tag(text)
	for i := 1; i < len(tokens); i++ {
		if e.p.IsProperNoun(tokens[i]) && strings.ToLower(tokens[i-1].Word) == personaIndicator {
			return strings.Join(nlp.Words(tokens[:i+1]), " ")
		}
	}
	return ""
}

func (e *StoryExtractor) extractMeans(story *model.UserStory) {
	lower := story.LowerText()
	meansPos := strings.Index(lower, meansIndicator)
	endsPos := strings.Index(lower, endsIndicator)

	if meansPos == -1 {
		story.AddDefect(model.CategoryWellFormed, model.MsgMissingMeans)
		return
	}

	end := len(lower)
	if endsPos != -1 {
		end = endsPos
	}
	story.Means = model.StrPtr(strings.TrimSpace(slice(lower, meansPos, end)))
}

// extractEnds sets the ends chunk and returns the text found by the ends
// indicator, or "" when it had to be guessed or is missing
func (e *StoryExtractor) extractEnds(story *model.UserStory) string {
	lower := story.LowerText()
	endsPos := strings.Index(lower, endsIndicator)

	if endsPos != -1 {
		ends := strings.TrimSpace(lower[endsPos:])
		story.Ends = model.StrPtr(ends)
		return ends
	}

	var ends string
	if story.Means != nil {
		ends = e.findPotentialEnds(story)
	}
	if ends == "" {
		story.AddDefect(model.CategoryWellFormed, model.MsgMissingEnds)
	}
	story.Ends = model.StrPtr(ends)
	return ""
}

// findPotentialEnds looks for a standalone "so" once the means has two
// verbs and a noun. On success the means is cut short before "so".
func (e *StoryExtractor) findPotentialEnds(story *model.UserStory) string {
	words := strings.Fields(*story.Means)

	nouns, verbs, position := 0, 0, 0
	for _, tok := range e.p.TagChunk(story.Means) {
		if e.p.IsNoun(tok, true) {
			nouns++
		}
		if e.p.IsVerb(tok) {
			verbs++
		}
		if verbs >= potentialEndsVerbs && nouns >= potentialEndsNouns {
			break
		}
		position++
	}
	if position+1 >= len(words) {
		return ""
	}

	rest := words[position+1:]
	start := indexOf(rest, potentialEndsIndicator)
	if start == -1 {
		return ""
	}

	story.PotentialEnds = true
	story.Means = model.StrPtr(strings.Join(words[:start+position+1], " "))
	return strings.Join(rest[start:], " ")
}

// findPotentialMeans handles stories with a role but no "i want": the role
// runs to the end of the first noun phrase and whatever follows is taken
// as the means if it has a verb and a noun.
func (e *StoryExtractor) findPotentialMeans(story *model.UserStory) {
	text := e.removeEnds(story)
	tokens := e.p.Tag(nlp.StripPunctuation(text))
	words := strings.Fields(text)

	found := false
	if len(tokens) > 0 {
		end := e.endOfFirstNoun(tokens, words)
		role := strings.Join(words[:min(end, len(words))], " ")
		words = words[min(end, len(words)):]
		tokens = tokens[min(end, len(tokens)):]

		verbsOK, nounsOK := e.p.HasRequired(tokens, 1, 1, false)
		found = verbsOK && nounsOK
		if found {
			story.Role = model.StrPtr(role)
			story.Means = model.StrPtr(strings.Join(words, " "))
			story.PotentialMeans = true
		} else {
			story.Role = model.StrPtr(strings.TrimSpace(role + " " + strings.Join(words, " ")))
		}
	}
	if !found {
		story.AddDefect(model.CategoryWellFormed, model.MsgMissingMeans)
	}
}

// removeEnds extracts the ends and returns the remaining story text
func (e *StoryExtractor) removeEnds(story *model.UserStory) string {
	text := story.LowerText()
	if ends := e.extractEnds(story); ends != "" {
		text = strings.ReplaceAll(text, ends, "")
	}
	return strings.TrimSpace(text)
}

// endOfFirstNoun returns the 1-based position where the leading noun
// phrase ends. From the first noun it reads ahead until the previous word
// carries a comma or the next word is "i". Tokens come from the
// punctuation-stripped text, words from the raw text.
func (e *StoryExtractor) endOfFirstNoun(tokens []nlp.Token, words []string) int {
	pos := 0
	for pos < len(tokens) {
		if !e.p.IsNoun(tokens[pos], true) {
			pos++
			continue
		}
		for marker := pos; marker < len(tokens); marker++ {
			if strings.Contains(wordAt(words, marker-1), ",") || tokens[marker].Word == "i" {
				pos = marker - 1
				break
			}
		}
		break
	}
	return pos + 1
}

// wordAt indexes words like a sequence that wraps once from the end, so -1
// is the last word. Out of range yields "".
func wordAt(words []string, i int) string {
	if i < 0 {
		i += len(words)
	}
	if i < 0 || i >= len(words) {
		return ""
	}
	return words[i]
}

// slice returns s[start:end], or "" when the bounds are reversed
func slice(s string, start, end int) string {
	if end < start {
		return ""
	}
	return s[start:end]
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
