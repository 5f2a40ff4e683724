package ambiguity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/nlp"
	"github.com/ppiankov/storylint/internal/testutil"
	"github.com/ppiankov/storylint/internal/wordlist"
)

func check(d *Detector, text string) []string {
	story := model.NewUserStory(text)
	d.Check(story)
	return story.Defects().Get(model.CategoryAmbiguity)
}

func TestDetector_AllChecksInOrder(t *testing.T) {
	d := New(testutil.Processor(nil, nil))

	got := check(d, "The best page should load faster and it is easy if possible for all users")

	assert.Equal(t, []string{
		model.MsgSuperlatives([]string{"best"}),
		model.MsgComparatives([]string{"faster"}),
		model.MsgVagueTerms([]string{"easy"}),
		model.MsgEscapeClauses([]string{"if possible"}),
		model.MsgAnaphora([]string{"it"}),
		model.MsgQuantifiers([]string{"all"}),
		model.MsgWeakVerbs([]string{"should"}),
	}, got)
}

func TestDetector_CleanText(t *testing.T) {
	d := New(testutil.Processor(nil, nil))

	got := check(d, "As a user, I want to login to my account so that I can access my data.")

	assert.Empty(t, got)
}

func TestDetector_QuotedTextIgnored(t *testing.T) {
	d := New(testutil.Processor(nil, nil))

	got := check(d, `Given I open the page when I click the button then I see "it is the best page for all"`)

	assert.Empty(t, got)
}

func TestSubjective(t *testing.T) {
	tagger := testutil.NewTagger(map[string]string{"most": "RBS"})
	tag := func(text string) []nlp.Token {
		tokens, _ := tagger.Tag(text)
		return tokens
	}

	tests := []struct {
		name             string
		text             string
		wantComparatives []string
		wantSuperlatives []string
	}{
		{"comparative", "the page is faster", []string{"faster"}, nil},
		{"baseline named", "the page is faster than the old one", nil, nil},
		{"baseline within four words", "it loads better on a phone than before", nil, nil},
		{"baseline too far", "it loads better on a big old phone than before", []string{"better"}, nil},
		{"comparative exception", "a lower price", nil, nil},
		{"superlative", "the best page and the fastest form", nil, []string{"best", "fastest"}},
		{"superlative exceptions", "at least the greatest", nil, nil},
		{"adverb superlative", "the most used page", nil, []string{"most"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comparatives, superlatives := Subjective(tag(tt.text))
			assert.Equal(t, tt.wantComparatives, comparatives)
			assert.Equal(t, tt.wantSuperlatives, superlatives)
		})
	}
}

func TestDetector_Terms(t *testing.T) {
	d := New(testutil.Processor(nil, map[string][]string{
		wordlist.VagueTerms: {"easy", "user-friendly", "as needed"},
	}))

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single word", "an easy page for users", []string{"easy"}},
		{"phrase", "load data as needed by the page", []string{"as needed"}},
		{"list order", "a user-friendly and easy page", []string{"easy", "user-friendly"}},
		{"substring of a word", "an easygoing page", nil},
		{"term at the end", "the page is easy", nil},
		{"term at the start", "easy page for users", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Terms(tt.text, wordlist.VagueTerms))
		})
	}
}

func TestAnaphora(t *testing.T) {
	tokens := []nlp.Token{
		{Word: "i", Tag: "PRP"},
		{Word: "want", Tag: "VBP"},
		{Word: "my", Tag: "PRP$"},
		{Word: "page", Tag: "NN"},
		{Word: "so", Tag: "IN"},
		{Word: "she", Tag: "PRP"},
		{Word: "sees", Tag: "VBZ"},
		{Word: "its", Tag: "PRP$"},
		{Word: "offline", Tag: "PRP"},
		{Word: "our", Tag: "PRP$"},
		{Word: "me", Tag: "PRP"},
	}

	assert.Equal(t, []string{"she", "its"}, Anaphora(tokens))
}

func TestDetector_WeakVerbs(t *testing.T) {
	d := New(testutil.Processor(map[string]string{"hope": "NN"}, nil))
	tag := func(text string) []nlp.Token {
		return d.p.Tag(text)
	}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"modal", "the page should load", []string{"should"}},
		{"verb", "the page will support uploads", []string{"support"}},
		{"noun use ignored", "the page shows hope", nil},
		{"strong verbs", "the page shows the form", nil},
		{"repeated", "it might load and might close", []string{"might", "might"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.WeakVerbs(tag(tt.text)))
		})
	}
}
