package nlp

import (
	"go.uber.org/zap"

	"github.com/ppiankov/storylint/internal/wordlist"
)

// Processor pairs a tagger with the word-list aware classifier. Tagging
// failures are logged and produce no tokens rather than an error, so one
// bad chunk never aborts an analysis.
type Processor struct {
	*Classifier
	tagger Tagger
	words  wordlist.Store
	logger *zap.Logger
}

// NewProcessor creates a processor. A nil logger discards output.
func NewProcessor(tagger Tagger, words wordlist.Store, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		Classifier: NewClassifier(words),
		tagger:     tagger,
		words:      words,
		logger:     logger,
	}
}

// WordLists returns the lists the processor classifies with
func (p *Processor) WordLists() wordlist.Store {
	return p.words
}

// Tag tags text as-is. The result is never nil.
func (p *Processor) Tag(text string) []Token {
	tokens, err := p.tagger.Tag(text)
	if err != nil {
		p.logger.Warn("tagging failed, treating text as untagged",
			zap.String("text", text),
			zap.Error(err))
		return []Token{}
	}
	if tokens == nil {
		return []Token{}
	}
	return tokens
}

// TagChunk tags a chunk after stripping punctuation. It returns nil only
// when the chunk itself is absent, so callers can tell "missing" from
// "present but empty".
func (p *Processor) TagChunk(chunk *string) []Token {
	if chunk == nil {
		return nil
	}
	return p.Tag(StripPunctuation(*chunk))
}
