package model

import (
	"strings"

	"github.com/ppiankov/storylint/internal/nlp"
)

// AcceptanceCriteria is one Given/When/Then criterion within a batch
type AcceptanceCriteria struct {
	Text      string
	lowerText string

	// Number is the zero-based position in the submitted batch
	Number int

	Context *string
	Event   *string
	Outcome *string

	ContextPOS []nlp.Token
	EventPOS   []nlp.Token
	OutcomePOS []nlp.Token

	// AND-clauses derived from each chunk
	ContextClauses []string
	EventClauses   []string
	OutcomeClauses []string

	defects Defects
}

// NewAcceptanceCriteria creates a criterion at a batch position
func NewAcceptanceCriteria(text string, number int) *AcceptanceCriteria {
	return &AcceptanceCriteria{
		Text:      text,
		lowerText: strings.ToLower(text),
		Number:    number,
	}
}

func (a *AcceptanceCriteria) LowerText() string { return a.lowerText }

func (a *AcceptanceCriteria) AddDefect(category Category, message string) {
	a.defects.Add(category, message)
}

func (a *AcceptanceCriteria) Defects() *Defects { return &a.defects }

var (
	_ Artifact = (*UserStory)(nil)
	_ Artifact = (*AcceptanceCriteria)(nil)
)
