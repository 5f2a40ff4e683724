package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/nlp"
)

// Runs the reference stories and criteria through the default runtime:
// prose tagger, built-in word lists and the memory tag cache.
func TestDefaultRuntime_ReferenceExamples(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the prose model")
	}

	rt, err := Build(context.Background(), model.DefaultConfig(), nil)
	require.NoError(t, err)
	defer rt.Close()

	t.Run("well-formed story", func(t *testing.T) {
		result := rt.Analyser.AnalyseUserStory("As a user, I want to be able to login to my account so that I can access my account.")
		for _, c := range []model.Category{
			model.CategoryWellFormed, model.CategoryAtomic, model.CategoryMinimal,
			model.CategoryFullSentence, model.CategoryUniform, model.CategoryLength,
		} {
			assert.False(t, result.Defects.Has(c), "unexpected %s defects: %v", c, result.Defects.Get(c))
		}
	})

	t.Run("two roles", func(t *testing.T) {
		result := rt.Analyser.AnalyseUserStory("As a user and as a developer I want to redesign the page so that it matches the new styles.")
		assert.Equal(t, []string{model.MsgMoreThanOneRole}, result.Defects.Get(model.CategoryAtomic))
	})

	t.Run("quoted label in criterion", func(t *testing.T) {
		report := rt.Analyser.AnalyseAcceptanceCriteria([]string{
			`Given I connect to the system's main URL, when I see the home page, then it includes a button labelled "Register".`,
		}, 0)
		require.Len(t, report.Items, 1)
		d := report.Items[0].Defects
		for _, c := range []model.Category{model.CategoryIntegrous, model.CategoryEssential, model.CategorySingular} {
			assert.False(t, d.Has(c), "unexpected %s defects: %v", c, d.Get(c))
		}
	})

	t.Run("duplicates differing in case and spacing", func(t *testing.T) {
		report := rt.Analyser.AnalyseAcceptanceCriteria([]string{
			"Given I open the page when I click the button then I see the form",
			"given i open the page  when I CLICK the button then i see the form",
		}, 0)
		require.NotNil(t, report.Unique)
		require.Len(t, report.Unique.Groups, 1)
		assert.Equal(t, []int{0, 1}, report.Unique.Groups[0].Indices)
	})

	t.Run("list of nouns", func(t *testing.T) {
		lists := nlp.NewListDetector(rt.Processor)
		withList := "apple, banana and cherry"
		withoutList := "apple banana cherry"
		assert.True(t, lists.HasList(&withList))
		assert.False(t, lists.HasList(&withoutList))
	})
}
