package score

import (
	"fmt"

	"github.com/ppiankov/storylint/internal/model"
)

// Share of affected artifacts at which a category signal escalates
const (
	defaultWarningRatio  = 0.2
	defaultCriticalRatio = 0.5
)

// Scorer summarises defects across a run and generates signals
type Scorer struct {
	warningRatio  float64
	criticalRatio float64
}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{
		warningRatio:  defaultWarningRatio,
		criticalRatio: defaultCriticalRatio,
	}
}

// Summarise scores a report with the default thresholds
func Summarise(report *model.Report) model.Summary {
	return NewScorer().Calculate(report)
}

// tally counts messages per category for one artifact
type tally map[model.Category]int

func tallyDefects(d *model.Defects) tally {
	t := make(tally, d.Len())
	for _, c := range d.Categories() {
		t[c] = len(d.Get(c))
	}
	return t
}

// Calculate counts clean artifacts and emits one signal per category that
// occurred. Duplicate criteria count against every member of their group.
func (s *Scorer) Calculate(report *model.Report) model.Summary {
	var tallies []tally

	// 1. Stories
	for _, story := range report.Stories {
		tallies = append(tallies, tallyDefects(&story.Defects))
	}

	// 2. Acceptance criteria, with the batch-level uniqueness block
	if report.Criteria != nil {
		offset := len(tallies)
		for i := range report.Criteria.Items {
			tallies = append(tallies, tallyDefects(&report.Criteria.Items[i].Defects))
		}
		if block := report.Criteria.Unique; block != nil {
			for _, group := range block.Groups {
				for _, idx := range group.Indices {
					if offset+idx < len(tallies) {
						tallies[offset+idx][model.CategoryUnique]++
					}
				}
			}
		}
	}

	summary := model.Summary{
		Artifacts: len(tallies),
		Signals:   []model.Signal{},
	}
	for _, t := range tallies {
		if len(t) == 0 {
			summary.Clean++
		}
		for _, n := range t {
			summary.Messages += n
		}
	}
	summary.Index = cleanIndex(summary.Clean, summary.Artifacts)

	// 3. One signal per category, in report order
	for _, category := range model.Categories {
		if signal, ok := s.categorySignal(category, tallies); ok {
			summary.Signals = append(summary.Signals, signal)
		}
	}

	return summary
}

// cleanIndex is the clean artifact percentage; an empty run is fully clean
func cleanIndex(clean, total int) int {
	if total == 0 {
		return 100
	}
	return clean * 100 / total
}

func (s *Scorer) categorySignal(category model.Category, tallies []tally) (model.Signal, bool) {
	affected, messages := 0, 0
	for _, t := range tallies {
		if n := t[category]; n > 0 {
			affected++
			messages += n
		}
	}
	if affected == 0 {
		return model.Signal{}, false
	}

	ratio := float64(affected) / float64(len(tallies))
	severity := model.SeverityInfo
	if ratio >= s.criticalRatio {
		severity = model.SeverityCritical
	} else if ratio >= s.warningRatio {
		severity = model.SeverityWarning
	}

	return model.Signal{
		Category:    category,
		Severity:    severity,
		Description: fmt.Sprintf("%s: %d/%d artifacts (%.0f%%)", category, affected, len(tallies), ratio*100),
		Data: map[string]interface{}{
			"affected": affected,
			"total":    len(tallies),
			"messages": messages,
			"ratio":    ratio,
		},
	}, true
}
