package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/nlp"
	"github.com/ppiankov/storylint/internal/wordlist"
)

func TestBuild_Defaults(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Tagger.Kind = TaggerLexicon

	rt, err := Build(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer rt.Close()

	require.NotNil(t, rt.Analyser)
	assert.IsType(t, &wordlist.MemoryStore{}, rt.Words)
	assert.NotEmpty(t, rt.Words.Get(wordlist.WeakVerbs))

	result := rt.Analyser.AnalyseUserStory("As a user, I want to login so that I can work")
	require.NotNil(t, result)
	require.NotNil(t, result.Role)
	assert.Equal(t, "as a user,", *result.Role)
}

func TestBuild_FileWordListsWatched(t *testing.T) {
	dir := t.TempDir()
	_, err := wordlist.WriteDefaults(dir, false)
	require.NoError(t, err)

	cfg := model.DefaultConfig()
	cfg.Tagger.Kind = TaggerLexicon
	cfg.Cache.Enabled = false
	cfg.WordLists.Dir = dir
	cfg.WordLists.Watch = true

	rt, err := Build(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.IsType(t, &wordlist.FileStore{}, rt.Words)
	assert.Contains(t, rt.Words.Get(wordlist.VerbExceptions), "login")
	assert.NoError(t, rt.Close())
}

func TestBuild_DiskCache(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Tagger.Kind = TaggerLexicon
	cfg.Cache.DiskDir = t.TempDir()

	rt, err := Build(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer rt.Close()

	first := rt.Processor.Tag("I want to login")
	second := rt.Processor.Tag("I want to login")
	assert.Equal(t, first, second)
}

func TestBuild_UnknownTagger(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Tagger.Kind = "brill"

	_, err := Build(context.Background(), cfg, nil)
	assert.True(t, errors.Is(err, ErrUnknownTagger))
}

func TestBuild_WatchMissingDir(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Tagger.Kind = TaggerLexicon
	cfg.WordLists.Dir = t.TempDir() + "/missing"
	cfg.WordLists.Watch = true

	_, err := Build(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestNewTagger(t *testing.T) {
	tagger, err := NewTagger("")
	require.NoError(t, err)
	assert.IsType(t, &nlp.ProseTagger{}, tagger)

	tagger, err = NewTagger(TaggerLexicon)
	require.NoError(t, err)
	assert.IsType(t, &nlp.LexiconTagger{}, tagger)
}
