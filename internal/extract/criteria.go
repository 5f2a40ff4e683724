package extract

import (
	"strings"

	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/nlp"
)

// Acceptance criteria indicators, matched against the lowercased text
const (
	contextIndicator = "given"
	eventIndicator   = "when"
	outcomeIndicator = "then"
	andIndicator     = " and "
)

// CriteriaExtractor splits acceptance criteria into context, event and outcome
type CriteriaExtractor struct {
	p *nlp.Processor
}

// NewCriteriaExtractor creates a new criteria extractor
func NewCriteriaExtractor(p *nlp.Processor) *CriteriaExtractor {
	return &CriteriaExtractor{p: p}
}

// Extract builds a criterion at batch position number and locates its
// chunks. The second result is false when indicator ordering or counts
// rule out chunking.
func (e *CriteriaExtractor) Extract(text string, number int) (*model.AcceptanceCriteria, bool) {
	ac := model.NewAcceptanceCriteria(text, number)

	// Indicators inside quotes or brackets do not count
	scan := withoutBracketContents(nlp.RemoveQuotes(ac.LowerText()))

	ordered := checkCriteriaOrdering(ac, scan)
	single := checkCriteriaCounts(ac, scan)
	if !ordered || !single {
		return ac, false
	}

	e.splitChunks(ac)

	ac.ContextPOS = e.p.TagChunk(ac.Context)
	ac.EventPOS = e.p.TagChunk(ac.Event)
	ac.OutcomePOS = e.p.TagChunk(ac.Outcome)

	ac.ContextClauses = e.andClauses(ac.Context)
	ac.EventClauses = e.andClauses(ac.Event)
	ac.OutcomeClauses = e.andClauses(ac.Outcome)

	return ac, true
}

func checkCriteriaOrdering(ac *model.AcceptanceCriteria, scan string) bool {
	if !inOrder(
		strings.Index(scan, contextIndicator),
		strings.Index(scan, eventIndicator),
		strings.Index(scan, outcomeIndicator),
	) {
		ac.AddDefect(model.CategoryIntegrous, model.MsgOutOfOrder)
		return false
	}
	return true
}

// checkCriteriaCounts allows each indicator at most once. Counting is by
// substring, so "whenever" counts as "when".
func checkCriteriaCounts(ac *model.AcceptanceCriteria, scan string) bool {
	oneContext := strings.Count(scan, contextIndicator) <= 1
	oneEvent := strings.Count(scan, eventIndicator) <= 1
	oneOutcome := strings.Count(scan, outcomeIndicator) <= 1

	if !oneContext {
		ac.AddDefect(model.CategoryEssential, model.MsgMoreThanOneContext)
	}
	if !oneEvent {
		ac.AddDefect(model.CategoryEssential, model.MsgMoreThanOneEvent)
	}
	if !oneOutcome {
		ac.AddDefect(model.CategoryEssential, model.MsgMoreThanOneOutcome)
	}
	return oneContext && oneEvent && oneOutcome
}

// withoutBracketContents deletes every bracketed text from text
func withoutBracketContents(text string) string {
	for _, item := range nlp.BracketContents(text) {
		text = strings.ReplaceAll(text, item, "")
	}
	return text
}

func (e *CriteriaExtractor) splitChunks(ac *model.AcceptanceCriteria) {
	lower := ac.LowerText()
	contextPos := strings.Index(lower, contextIndicator)
	eventPos := strings.Index(lower, eventIndicator)
	outcomePos := strings.Index(lower, outcomeIndicator)

	var context string
	switch {
	case contextPos != -1 && eventPos != -1:
		context = slice(lower, contextPos, eventPos)
	case contextPos != -1 && outcomePos != -1:
		context = slice(lower, contextPos, outcomePos)
	case contextPos != -1:
		context = lower[contextPos:]
	default:
		ac.AddDefect(model.CategoryIntegrous, model.MsgMissingContext)
	}
	ac.Context = chunk(context)

	var event string
	switch {
	case eventPos != -1 && outcomePos != -1:
		event = slice(lower, eventPos, outcomePos)
	case eventPos != -1:
		event = lower[eventPos:]
	default:
		ac.AddDefect(model.CategoryIntegrous, model.MsgMissingEvent)
	}
	ac.Event = chunk(event)

	if outcomePos != -1 {
		ac.Outcome = chunk(lower[outcomePos:])
	} else {
		ac.AddDefect(model.CategoryIntegrous, model.MsgMissingOutcome)
	}
}

func chunk(s string) *string {
	return model.StrPtr(strings.TrimSpace(strings.ToLower(s)))
}

// andClauses splits a chunk on " and ". A piece without a verb and a noun
// is glued onto the clause before it. A complete piece following an
// incomplete one is also emitted joined to it, so the incomplete text can
// appear in two clauses.
func (e *CriteriaExtractor) andClauses(c *string) []string {
	if c == nil {
		return []string{}
	}

	parts := strings.Split(*c, andIndicator)
	clauses := make([]string, 0, len(parts))
	prev, prevComplete := parts[0], false

	for _, part := range parts {
		verbsOK, nounsOK := e.p.HasRequired(e.p.TagChunk(&part), 1, 1, false)
		if verbsOK && nounsOK {
			if !prevComplete && prev != part {
				clauses = append(clauses, prev+andIndicator+part)
			} else {
				clauses = append(clauses, part)
			}
			prev, prevComplete = part, true
			continue
		}

		if len(clauses) > 0 {
			clauses[len(clauses)-1] += andIndicator + part
		} else {
			clauses = append(clauses, part)
		}
		prev, prevComplete = part, false
	}
	return clauses
}
