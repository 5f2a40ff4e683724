package model

import (
	"fmt"
	"time"
)

// StoryResult is the outward view of an analysed user story
type StoryResult struct {
	Index          int     `json:"index" yaml:"index"` // Position in the input, zero-based
	Text           string  `json:"text" yaml:"text"`
	Role           *string `json:"role" yaml:"role"`
	Means          *string `json:"means" yaml:"means"`
	Ends           *string `json:"ends" yaml:"ends"`
	PotentialMeans bool    `json:"potential_means,omitempty" yaml:"potential_means,omitempty"`
	PotentialEnds  bool    `json:"potential_ends,omitempty" yaml:"potential_ends,omitempty"`
	Defects        Defects `json:"defects" yaml:"defects"`
}

// NewStoryResult snapshots a story after analysis
func NewStoryResult(index int, s *UserStory) *StoryResult {
	return &StoryResult{
		Index:          index,
		Text:           s.Text,
		Role:           s.Role,
		Means:          s.Means,
		Ends:           s.Ends,
		PotentialMeans: s.PotentialMeans,
		PotentialEnds:  s.PotentialEnds,
		Defects:        *s.Defects(),
	}
}

// CriteriaItem is the outward view of one analysed acceptance criterion
type CriteriaItem struct {
	Title   string  `json:"title" yaml:"title"` // "AC n", 1-based
	Text    string  `json:"text" yaml:"text"`
	Defects Defects `json:"defects" yaml:"defects"`
}

// NewCriteriaItem snapshots a criterion after analysis
func NewCriteriaItem(ac *AcceptanceCriteria) CriteriaItem {
	return CriteriaItem{
		Title:   CriteriaTitle(ac.Number),
		Text:    ac.Text,
		Defects: *ac.Defects(),
	}
}

// CriteriaTitle names a criterion by its zero-based batch position
func CriteriaTitle(number int) string {
	return fmt.Sprintf("AC %d", number+1)
}

// DuplicateGroup lists every zero-based position sharing the same normalised text
type DuplicateGroup struct {
	Text    string `json:"text" yaml:"text"`
	Indices []int  `json:"indices" yaml:"indices"`
}

// UniqueBlock trails a criteria report when the batch has duplicates
type UniqueBlock struct {
	Title   Category         `json:"title" yaml:"title"`
	Defects []string         `json:"defects" yaml:"defects"`
	Groups  []DuplicateGroup `json:"groups" yaml:"groups"`
}

// CriteriaReport is the result of analysing a batch of acceptance criteria
type CriteriaReport struct {
	StoryNumber int            `json:"us_number,omitempty" yaml:"us_number,omitempty"`
	Items       []CriteriaItem `json:"items" yaml:"items"`
	Unique      *UniqueBlock   `json:"unique,omitempty" yaml:"unique,omitempty"`
}

// Summary aggregates defect counts across a run
type Summary struct {
	Index     int      `json:"index" yaml:"index"` // Clean artifact percentage (0-100)
	Artifacts int      `json:"artifacts" yaml:"artifacts"`
	Clean     int      `json:"clean" yaml:"clean"`
	Messages  int      `json:"messages" yaml:"messages"`
	Signals   []Signal `json:"signals" yaml:"signals"`
}

// Signal reports how widespread one defect category is
type Signal struct {
	Category    Category               `json:"category" yaml:"category"`
	Severity    SignalSeverity         `json:"severity" yaml:"severity"`
	Description string                 `json:"description" yaml:"description"`
	Data        map[string]interface{} `json:"data,omitempty" yaml:"data,omitempty"`
}

// SignalSeverity indicates how much of the run a category affects
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)

// Report is everything a single storylint run produced
type Report struct {
	Source    string          `json:"source,omitempty" yaml:"source,omitempty"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
	Stories   []*StoryResult  `json:"stories,omitempty" yaml:"stories,omitempty"`
	Failures  []Failure       `json:"failures,omitempty" yaml:"failures,omitempty"`
	Criteria  *CriteriaReport `json:"criteria,omitempty" yaml:"criteria,omitempty"`
	Summary   Summary         `json:"summary" yaml:"summary"`
}

// Failure records an input item that could not be analysed
type Failure struct {
	Index int    `json:"index" yaml:"index"`
	Error string `json:"error" yaml:"error"`
}
