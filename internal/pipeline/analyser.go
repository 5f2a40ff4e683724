package pipeline

import (
	"go.uber.org/zap"

	"github.com/ppiankov/storylint/internal/ambiguity"
	"github.com/ppiankov/storylint/internal/extract"
	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/nlp"
	"github.com/ppiankov/storylint/internal/validate"
)

// Analyser runs extraction, structural validation and ambiguity detection
// over single stories and batches of acceptance criteria. It is safe for
// concurrent use once built.
type Analyser struct {
	stories           *extract.StoryExtractor
	criteria          *extract.CriteriaExtractor
	storyValidator    *validate.StoryValidator
	criteriaValidator *validate.CriteriaValidator
	ambiguity         *ambiguity.Detector
	logger            *zap.Logger
}

// NewAnalyser creates an analyser over p. A nil logger discards output.
func NewAnalyser(p *nlp.Processor, logger *zap.Logger) *Analyser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyser{
		stories:           extract.NewStoryExtractor(p),
		criteria:          extract.NewCriteriaExtractor(p),
		storyValidator:    validate.NewStoryValidator(p),
		criteriaValidator: validate.NewCriteriaValidator(p),
		ambiguity:         ambiguity.New(p),
		logger:            logger,
	}
}

// AnalyseUserStory reports every defect found in one story. A story whose
// indicators rule out chunking skips structural validation but is still
// checked for ambiguity.
func (a *Analyser) AnalyseUserStory(text string) *model.StoryResult {
	// 1. Extract chunks
	story, ok := a.stories.Extract(text)

	// 2. Validate structure
	if ok {
		a.storyValidator.Validate(story)
	} else {
		a.logger.Debug("story not chunked, skipping structural checks",
			zap.Strings("categories", categoryNames(story.Defects())))
	}

	// 3. Detect ambiguity
	a.ambiguity.Check(story)

	return model.NewStoryResult(0, story)
}

// AnalyseAcceptanceCriteria analyses each criterion in order and then the
// batch for duplicates. storyNumber is carried into the report unchanged.
func (a *Analyser) AnalyseAcceptanceCriteria(texts []string, storyNumber int) *model.CriteriaReport {
	batch := make([]*model.AcceptanceCriteria, 0, len(texts))
	report := &model.CriteriaReport{
		StoryNumber: storyNumber,
		Items:       make([]model.CriteriaItem, 0, len(texts)),
	}

	for i, text := range texts {
		ac, ok := a.criteria.Extract(text, i)
		if ok {
			a.criteriaValidator.Validate(ac)
		} else {
			a.logger.Debug("criterion not chunked, skipping structural checks",
				zap.Int("number", i+1),
				zap.Strings("categories", categoryNames(ac.Defects())))
		}
		a.ambiguity.Check(ac)

		batch = append(batch, ac)
		report.Items = append(report.Items, model.NewCriteriaItem(ac))
	}

	// Uniqueness needs the whole batch
	report.Unique = validate.UniqueBlock(batch)

	return report
}

func categoryNames(d *model.Defects) []string {
	names := make([]string, 0, d.Len())
	for _, c := range d.Categories() {
		names = append(names, string(c))
	}
	return names
}
