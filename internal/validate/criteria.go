package validate

import (
	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/nlp"
)

// CriteriaValidator runs the structural checks on an extracted acceptance criterion
type CriteriaValidator struct {
	p     *nlp.Processor
	lists *nlp.ListDetector
}

// NewCriteriaValidator creates a new criteria validator
func NewCriteriaValidator(p *nlp.Processor) *CriteriaValidator {
	return &CriteriaValidator{
		p:     p,
		lists: nlp.NewListDetector(p),
	}
}

// Validate applies every criteria check in order
func (v *CriteriaValidator) Validate(ac *model.AcceptanceCriteria) {
	v.Integrous(ac)
	v.Essential(ac)
	v.Singular(ac)
}

// Integrous requires a verb and a noun in every present chunk. The context
// needs a second verb because "given" is tagged as one.
func (v *CriteriaValidator) Integrous(ac *model.AcceptanceCriteria) {
	checks := []struct {
		chunk    *string
		tokens   []nlp.Token
		minVerbs int
		message  string
	}{
		{ac.Context, ac.ContextPOS, 2, model.MsgContextMissingNounOrVerb},
		{ac.Event, ac.EventPOS, 1, model.MsgEventMissingNounOrVerb},
		{ac.Outcome, ac.OutcomePOS, 1, model.MsgOutcomeMissingNounOrVerb},
	}
	for _, c := range checks {
		if c.chunk == nil {
			continue
		}
		verbsOK, nounsOK := v.p.HasRequired(c.tokens, 1, c.minVerbs, false)
		if !verbsOK || !nounsOK {
			ac.AddDefect(model.CategoryIntegrous, c.message)
		}
	}
}

// Essential flags more than one sentence and bracketed asides. Quoted text
// is ignored.
func (v *CriteriaValidator) Essential(ac *model.AcceptanceCriteria) {
	text := nlp.RemoveQuotes(ac.LowerText())
	if nlp.HasSeparatingPunctuation(text) {
		ac.AddDefect(model.CategoryEssential, model.MsgACSeparatingPunct)
	}
	if len(nlp.BracketContents(text)) > 0 {
		ac.AddDefect(model.CategoryEssential, model.MsgInfoInBrackets)
	}
}

// Singular flags a list in any AND-clause or a list of actions in any chunk.
// One message covers the whole criterion.
func (v *CriteriaValidator) Singular(ac *model.AcceptanceCriteria) {
	if v.hasList(ac.Context, ac.ContextClauses) ||
		v.hasList(ac.Event, ac.EventClauses) ||
		v.hasList(ac.Outcome, ac.OutcomeClauses) {
		ac.AddDefect(model.CategorySingular, model.MsgListInAC)
	}
}

func (v *CriteriaValidator) hasList(chunk *string, clauses []string) bool {
	for _, clause := range clauses {
		if v.lists.HasList(&clause) {
			return true
		}
	}
	return v.lists.HasListOfVerbs(chunk)
}
