package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/testutil"
)

func newCriteriaExtractor() *CriteriaExtractor {
	return NewCriteriaExtractor(testutil.Processor(nil, nil))
}

func TestCriteriaExtractor_QuotedLabel(t *testing.T) {
	ac, ok := newCriteriaExtractor().Extract(`Given I connect to the system's main URL, when I see the home page, then it includes a button labelled "Register".`, 2)
	if !ok {
		t.Fatal("Expected criterion to be processable")
	}

	if ac.Number != 2 {
		t.Errorf("Expected number 2, got %d", ac.Number)
	}
	assertChunk(t, "context", ac.Context, "given i connect to the system's main url,")
	assertChunk(t, "event", ac.Event, "when i see the home page,")
	assertChunk(t, "outcome", ac.Outcome, `then it includes a button labelled "register".`)
	assertDefects(t, ac.Defects(), nil)

	if len(ac.ContextClauses) != 1 || len(ac.EventClauses) != 1 || len(ac.OutcomeClauses) != 1 {
		t.Errorf("Expected one clause per chunk, got %v %v %v", ac.ContextClauses, ac.EventClauses, ac.OutcomeClauses)
	}
	if ac.OutcomePOS[len(ac.OutcomePOS)-1].Word != "register" {
		t.Errorf("Expected outcome tags without punctuation, got %v", ac.OutcomePOS)
	}
}

func TestCriteriaExtractor_ShortCircuits(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []model.Defect
	}{
		{
			name: "out of order",
			text: "When I click the button, given a page, then I see it",
			want: []model.Defect{{Title: model.CategoryIntegrous, Descriptions: []string{model.MsgOutOfOrder}}},
		},
		{
			name: "two outcomes",
			text: "Given a page when I click the button then I see it then it closes",
			want: []model.Defect{{Title: model.CategoryEssential, Descriptions: []string{model.MsgMoreThanOneOutcome}}},
		},
		{
			name: "substring counts as indicator",
			text: "Given a page when I click whenever then I see it",
			want: []model.Defect{{Title: model.CategoryEssential, Descriptions: []string{model.MsgMoreThanOneEvent}}},
		},
		{
			name: "ordering and counts both reported",
			text: "Then I see it when I click given a page given a user",
			want: []model.Defect{
				{Title: model.CategoryIntegrous, Descriptions: []string{model.MsgOutOfOrder}},
				{Title: model.CategoryEssential, Descriptions: []string{model.MsgMoreThanOneContext}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac, ok := newCriteriaExtractor().Extract(tt.text, 0)
			if ok {
				t.Fatal("Expected extraction to short-circuit")
			}
			if ac.Context != nil || ac.Event != nil || ac.Outcome != nil {
				t.Error("Expected no chunks after short-circuit")
			}
			assertDefects(t, ac.Defects(), tt.want)
		})
	}
}

func TestCriteriaExtractor_IndicatorsInBracketsAndQuotes(t *testing.T) {
	tests := []string{
		"Given a page (when loaded) when I click the button then I see it",
		`Given a page with the text "then what" when I click the button then I see it`,
	}
	for _, text := range tests {
		if _, ok := newCriteriaExtractor().Extract(text, 0); !ok {
			t.Errorf("Expected indicators inside brackets or quotes to be ignored for %q", text)
		}
	}
}

func TestCriteriaExtractor_MissingChunks(t *testing.T) {
	ac, ok := newCriteriaExtractor().Extract("Given a page then I see it", 0)
	if !ok {
		t.Fatal("Expected criterion to be processable")
	}

	assertChunk(t, "context", ac.Context, "given a page")
	assertChunk(t, "event", ac.Event, "")
	assertChunk(t, "outcome", ac.Outcome, "then i see it")
	if ac.EventPOS != nil {
		t.Errorf("Expected no event tags, got %v", ac.EventPOS)
	}
	if len(ac.EventClauses) != 0 {
		t.Errorf("Expected no event clauses, got %v", ac.EventClauses)
	}
	assertDefects(t, ac.Defects(), []model.Defect{
		{Title: model.CategoryIntegrous, Descriptions: []string{model.MsgMissingEvent}},
	})

	ac, _ = newCriteriaExtractor().Extract("The page is shown", 1)
	assertDefects(t, ac.Defects(), []model.Defect{
		{Title: model.CategoryIntegrous, Descriptions: []string{
			model.MsgMissingContext, model.MsgMissingEvent, model.MsgMissingOutcome,
		}},
	})
}

func TestCriteriaExtractor_AndClauses(t *testing.T) {
	e := newCriteriaExtractor()

	tests := []struct {
		name  string
		chunk string
		want  []string
	}{
		{
			name:  "two complete clauses",
			chunk: "then i see the page and i click the button",
			want:  []string{"then i see the page", "i click the button"},
		},
		{
			name:  "incomplete piece merges back",
			chunk: "then i see the red and blue buttons",
			want:  []string{"then i see the red and blue buttons"},
		},
		{
			name:  "incomplete lead repeats",
			chunk: "then red and i see the page",
			want:  []string{"then red", "then red and i see the page"},
		},
		{
			name:  "no conjunction",
			chunk: "when i click the button",
			want:  []string{"when i click the button"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunk := tt.chunk
			if diff := cmp.Diff(tt.want, e.andClauses(&chunk)); diff != "" {
				t.Errorf("andClauses(%q) mismatch (-want +got):\n%s", tt.chunk, diff)
			}
		})
	}

	if got := e.andClauses(nil); got == nil || len(got) != 0 {
		t.Errorf("Expected empty clauses for absent chunk, got %#v", got)
	}
}

func TestWithoutBracketContents(t *testing.T) {
	got := withoutBracketContents("given a page (when loaded) then done")
	want := "given a page () then done"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
