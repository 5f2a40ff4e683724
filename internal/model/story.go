package model

import (
	"strings"

	"github.com/ppiankov/storylint/internal/nlp"
)

// Artifact is anything the ambiguity detector can inspect and annotate
type Artifact interface {
	LowerText() string
	AddDefect(category Category, message string)
	Defects() *Defects
}

// UserStory is a single "As a <role>, I want <means> so that <ends>" story
// as it moves through extraction and validation.
type UserStory struct {
	Text      string
	lowerText string

	// Chunks stay nil until extracted
	Role  *string
	Means *string
	Ends  *string

	// Tagged chunk tokens, nil when the chunk is absent
	RolePOS  []nlp.Token
	MeansPOS []nlp.Token
	EndsPOS  []nlp.Token

	// Set when the chunk was found by fallback heuristics instead of an indicator
	PotentialMeans bool
	PotentialEnds  bool

	defects Defects
}

// NewUserStory creates a story from raw text
func NewUserStory(text string) *UserStory {
	return &UserStory{
		Text:      text,
		lowerText: strings.ToLower(text),
	}
}

func (s *UserStory) LowerText() string { return s.lowerText }

func (s *UserStory) AddDefect(category Category, message string) {
	s.defects.Add(category, message)
}

func (s *UserStory) Defects() *Defects { return &s.defects }

// Chunk returns the chunk text or "" when absent
func Chunk(c *string) string {
	if c == nil {
		return ""
	}
	return *c
}

// StrPtr returns a pointer to s, or nil when s is empty
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
