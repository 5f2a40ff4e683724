package nlp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProseTagger_Empty(t *testing.T) {
	tokens, err := NewProseTagger().Tag("   ")
	require.NoError(t, err)
	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)
}

func TestProseTagger_Tag(t *testing.T) {
	tokens, err := NewProseTagger().Tag("I want to login")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, []string{"I", "want", "to", "login"}, Words(tokens))

	for _, tok := range tokens {
		assert.NotEmpty(t, tok.Tag, "token %q has no tag", tok.Word)
	}
	assert.Equal(t, "TO", tokens[2].Tag)
}

func TestProseTagger_ModelLoadedOnce(t *testing.T) {
	tagger := NewProseTagger()

	first, err := tagger.Tag("I want to login")
	require.NoError(t, err)
	model := tagger.model
	require.NotNil(t, model)

	second, err := tagger.Tag("I want to login")
	require.NoError(t, err)
	assert.Same(t, model, tagger.model, "second call must reuse the loaded model")
	assert.Equal(t, first, second)

	loaded, err := tagger.loadModel()
	require.NoError(t, err)
	assert.Same(t, model, loaded)
}

func TestProseTagger_Concurrent(t *testing.T) {
	tagger := NewProseTagger()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tagger.Tag("As a user, I want to upload a file")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestProcessor_TagChunk(t *testing.T) {
	p := newTestProcessor(nil)

	assert.Nil(t, p.TagChunk(nil))

	empty := ""
	got := p.TagChunk(&empty)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	chunk := "i want to login, now!"
	assert.Equal(t, []string{"i", "want", "to", "login", "now"}, Words(p.TagChunk(&chunk)))
}
