package worker

import (
	"context"
	"fmt"
	"sort"

	"github.com/ppiankov/storylint/internal/model"
)

// StoryAnalyser analyses a single user story
type StoryAnalyser interface {
	AnalyseUserStory(text string) *model.StoryResult
}

// StoryJob analyses one story from a batch
type StoryJob struct {
	Index    int
	Source   string
	Text     string
	Analyser StoryAnalyser
	Limiter  *Limiter
}

// Execute executes the story job. A panic in the analyser is reported as
// the outcome's error.
func (j *StoryJob) Execute(ctx context.Context) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = &StoryOutcome{
				Index:  j.Index,
				Source: j.Source,
				Error:  fmt.Errorf("story %d: analyser panic: %v", j.Index+1, r),
			}
		}
	}()

	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Source); err != nil {
			return &StoryOutcome{
				Index:  j.Index,
				Source: j.Source,
				Error:  fmt.Errorf("story %d: %w", j.Index+1, err),
			}
		}
	}

	result := j.Analyser.AnalyseUserStory(j.Text)
	result.Index = j.Index

	return &StoryOutcome{
		Index:  j.Index,
		Source: j.Source,
		Result: result,
	}
}

// StoryOutcome represents the result of a story job
type StoryOutcome struct {
	Index  int
	Source string
	Result *model.StoryResult
	Error  error
}

// GetError returns the error from the story outcome
func (r *StoryOutcome) GetError() error {
	return r.Error
}

// BatchProcessor analyses many stories concurrently
type BatchProcessor struct {
	analyser    StoryAnalyser
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor. A requestsPerSecond of
// zero or less disables throttling.
func NewBatchProcessor(analyser StoryAnalyser, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	b := &BatchProcessor{
		analyser:    analyser,
		concurrency: concurrency,
	}
	if requestsPerSecond > 0 {
		b.limiter = NewLimiter(requestsPerSecond, burst)
	}
	return b
}

// SetSourceRate throttles stories from one source independently of the
// default rate. Other sources stay unthrottled when the default is zero.
func (b *BatchProcessor) SetSourceRate(source string, requestsPerSecond float64, burst int) {
	if b.limiter == nil {
		b.limiter = NewLimiter(0, burst)
	}
	b.limiter.SetSourceRate(source, requestsPerSecond, burst)
}

// ProcessStories analyses texts read from source and returns one outcome
// per text in input order
func (b *BatchProcessor) ProcessStories(ctx context.Context, source string, texts []string) []*StoryOutcome {
	if len(texts) == 0 {
		return []*StoryOutcome{}
	}

	pool := NewPoolWithContext(ctx, b.concurrency)
	pool.Start()

	for i, text := range texts {
		pool.Submit(&StoryJob{
			Index:    i,
			Source:   source,
			Text:     text,
			Analyser: b.analyser,
			Limiter:  b.limiter,
		})
	}

	results := pool.Wait()

	outcomes := make([]*StoryOutcome, 0, len(texts))
	for _, result := range results {
		outcomes = append(outcomes, result.(*StoryOutcome))
	}
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Index < outcomes[j].Index
	})

	// Stories dropped by cancellation are reported rather than omitted
	if len(outcomes) < len(texts) {
		outcomes = fillMissing(outcomes, source, len(texts), ctx.Err())
	}

	return outcomes
}

func fillMissing(outcomes []*StoryOutcome, source string, total int, cause error) []*StoryOutcome {
	if cause == nil {
		cause = context.Canceled
	}
	byIndex := make(map[int]*StoryOutcome, len(outcomes))
	for _, o := range outcomes {
		byIndex[o.Index] = o
	}
	filled := make([]*StoryOutcome, total)
	for i := range filled {
		if o, ok := byIndex[i]; ok {
			filled[i] = o
			continue
		}
		filled[i] = &StoryOutcome{
			Index:  i,
			Source: source,
			Error:  fmt.Errorf("story %d: %w", i+1, cause),
		}
	}
	return filled
}
