package nlp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
)

// ProseTagger tags with the averaged perceptron model bundled in prose.
// Text is segmented into sentences before tagging. The model is loaded on
// first use and shared by every later call; it is read-only once loaded.
type ProseTagger struct {
	once  sync.Once
	model *prose.Model
	err   error
}

// NewProseTagger creates a prose-backed tagger
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// loadModel builds a throwaway document to obtain prose's default model
func (p *ProseTagger) loadModel() (*prose.Model, error) {
	p.once.Do(func() {
		seed, err := prose.NewDocument("storylint",
			prose.WithSegmentation(false),
			prose.WithTagging(true),
			prose.WithExtraction(false))
		if err != nil {
			p.err = fmt.Errorf("prose: load model: %w", err)
			return
		}
		p.model = seed.Model
	})
	return p.model, p.err
}

func (p *ProseTagger) Tag(text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return []Token{}, nil
	}

	model, err := p.loadModel()
	if err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text,
		prose.UsingModel(model),
		prose.WithSegmentation(true),
		prose.WithTagging(true),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("prose: %w", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, t := range proseTokens {
		tokens = append(tokens, Token{Word: t.Text, Tag: t.Tag})
	}
	return tokens, nil
}
