package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/storylint/internal/extract"
	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/nlp"
	"github.com/ppiankov/storylint/internal/testutil"
)

func extractCriterion(t *testing.T, p *nlp.Processor, text string) *model.AcceptanceCriteria {
	t.Helper()
	ac, ok := extract.NewCriteriaExtractor(p).Extract(text, 0)
	require.True(t, ok, "criterion %q should be processable", text)
	return ac
}

func TestCriteriaValidator_QuotedLabel(t *testing.T) {
	p := testutil.Processor(nil, nil)
	ac := extractCriterion(t, p, `Given I connect to the system's main URL, when I see the home page, then it includes a button labelled "Register".`)

	NewCriteriaValidator(p).Validate(ac)

	assert.Zero(t, ac.Defects().Len(), "unexpected defects: %v", ac.Defects().List())
}

func TestCriteriaValidator_Integrous(t *testing.T) {
	p := testutil.Processor(nil, nil)
	v := NewCriteriaValidator(p)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "complete chunks",
			text: "Given I open the page when I click the button then I see the form",
		},
		{
			name: "context needs a second verb",
			text: "Given a page when I click the button then I see the form",
			want: []string{model.MsgContextMissingNounOrVerb},
		},
		{
			name: "outcome without object",
			text: "Given I open the page when I click the button then it closes",
			want: []string{model.MsgOutcomeMissingNounOrVerb},
		},
		{
			name: "missing chunk is not checked",
			text: "Given I open the page then I see the form",
			want: []string{model.MsgMissingEvent},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac := extractCriterion(t, p, tt.text)
			v.Integrous(ac)
			assert.Equal(t, tt.want, ac.Defects().Get(model.CategoryIntegrous))
		})
	}
}

func TestCriteriaValidator_Essential(t *testing.T) {
	p := testutil.Processor(nil, nil)
	v := NewCriteriaValidator(p)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "one sentence",
			text: "Given I open the page when I click the button then I see the form.",
		},
		{
			name: "second sentence",
			text: "Given I open the page when I click the button then I see the form. It closes later",
			want: []string{model.MsgACSeparatingPunct},
		},
		{
			name: "bracketed aside",
			text: "Given I open the page when I click the button (the blue one) then I see the form",
			want: []string{model.MsgInfoInBrackets},
		},
		{
			name: "punctuation inside quotes",
			text: `Given I open the page when I click the button then I see "Done. Thanks (bye)"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac := extractCriterion(t, p, tt.text)
			v.Essential(ac)
			assert.Equal(t, tt.want, ac.Defects().Get(model.CategoryEssential))
		})
	}
}

func TestCriteriaValidator_Singular(t *testing.T) {
	p := testutil.Processor(nil, nil)
	v := NewCriteriaValidator(p)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"no list", "Given I open the page when I click the button then I see the form", false},
		{"noun list", "Given I open the page when I click the button then I see apples, bananas and cherries", true},
		{"verb list", "Given I open the page when I create and delete the page then I see it", true},
		{"complete and clauses", "Given I open the page when I click the button then I see the page and I click the link", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac := extractCriterion(t, p, tt.text)
			v.Singular(ac)
			if tt.want {
				assert.Equal(t, []string{model.MsgListInAC}, ac.Defects().Get(model.CategorySingular))
			} else {
				assert.False(t, ac.Defects().Has(model.CategorySingular))
			}
		})
	}
}
