package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ppiankov/storylint/internal/cache"
	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/nlp"
	"github.com/ppiankov/storylint/internal/wordlist"
)

// Tagger kinds accepted in tagger.kind
const (
	TaggerProse   = "prose"
	TaggerLexicon = "lexicon"
)

// ErrUnknownTagger is returned for an unsupported tagger.kind
var ErrUnknownTagger = errors.New("unknown tagger")

// Runtime holds an analyser together with the resources it owns
type Runtime struct {
	Analyser  *Analyser
	Processor *nlp.Processor
	Words     wordlist.Store

	closers []func() error
}

// Build wires word lists, tagger and cache from cfg into an analyser.
// The watcher started for wordlists.watch stops when ctx is done or the
// runtime is closed.
func Build(ctx context.Context, cfg *model.Config, logger *zap.Logger) (*Runtime, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rt := &Runtime{}

	// 1. Word lists
	words, err := rt.buildWordLists(ctx, cfg.WordLists, logger)
	if err != nil {
		return nil, err
	}
	rt.Words = words

	// 2. Tagger
	tagger, err := NewTagger(cfg.Tagger.Kind)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}

	// 3. Tag cache
	if cfg.Cache.Enabled {
		c := cache.New(cache.Options{
			MemoryTTL: cfg.Cache.MemoryTTL,
			DiskDir:   cfg.Cache.DiskDir,
			DiskTTL:   cfg.Cache.DiskTTL,
		})
		tagger = nlp.NewCachedTagger(tagger, c, cfg.Tagger.Kind, 0, logger.Named("cache"))
	}

	rt.Processor = nlp.NewProcessor(tagger, words, logger.Named("nlp"))
	rt.Analyser = NewAnalyser(rt.Processor, logger.Named("analyser"))

	logger.Debug("analyser ready",
		zap.String("tagger", cfg.Tagger.Kind),
		zap.Bool("cache", cfg.Cache.Enabled),
		zap.String("wordlists", cfg.WordLists.Dir))

	return rt, nil
}

func (rt *Runtime) buildWordLists(ctx context.Context, cfg model.WordListConfig, logger *zap.Logger) (wordlist.Store, error) {
	if cfg.Dir == "" {
		store, err := wordlist.NewDefaultStore()
		if err != nil {
			return nil, fmt.Errorf("load built-in word lists: %w", err)
		}
		return store, nil
	}

	store := wordlist.NewFileStore(cfg.Dir, logger.Named("wordlist"))
	rt.closers = append(rt.closers, store.Close)

	if cfg.Watch {
		if err := store.Watch(ctx); err != nil {
			_ = rt.Close()
			return nil, fmt.Errorf("watch word lists: %w", err)
		}
	}
	return store, nil
}

// NewTagger creates the tagger named by kind. An empty kind means prose.
func NewTagger(kind string) (nlp.Tagger, error) {
	switch kind {
	case "", TaggerProse:
		return nlp.NewProseTagger(), nil
	case TaggerLexicon:
		return nlp.NewLexiconTagger(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTagger, kind)
	}
}

// Close releases the word-list watcher, if any
func (rt *Runtime) Close() error {
	var errs []error
	for _, closeFn := range rt.closers {
		errs = append(errs, closeFn())
	}
	rt.closers = nil
	return errors.Join(errs...)
}
