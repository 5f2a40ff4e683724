package wordlist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParse(t *testing.T) {
	input := "# header\nLogin\n\n  email  \n#skip\nsign up\n"
	words, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"login", "email", "sign up"}, words)
}

func TestDefaults_AllListsPresent(t *testing.T) {
	lists, err := Defaults()
	require.NoError(t, err)
	for _, name := range Names {
		assert.NotEmpty(t, lists[name], "built-in list %s should not be empty", name)
	}
}

func TestAppendable(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{NounExceptions, true},
		{VerbExceptions, true},
		{VerbNounExceptions, true},
		{VagueTerms, false},
		{EscapeClauses, false},
		{Quantifiers, false},
		{WeakVerbs, false},
		{"colours", false},
	}
	for _, tt := range tests {
		if got := Appendable(tt.name); got != tt.want {
			t.Errorf("Appendable(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMemoryStore_Append(t *testing.T) {
	s := NewMemoryStore(map[string][]string{VerbExceptions: {"login"}})

	before := s.Get(VerbExceptions)
	require.NoError(t, s.Append(VerbExceptions, " Checkout "))

	assert.Equal(t, []string{"login"}, before, "earlier Get result must not change")
	assert.Equal(t, []string{"login", "checkout"}, s.Get(VerbExceptions))
	assert.True(t, Contains(s, VerbExceptions, "checkout"))
}

func TestMemoryStore_AppendErrors(t *testing.T) {
	s := NewMemoryStore(nil)

	err := s.Append(VagueTerms, "nice")
	assert.True(t, errors.Is(err, ErrReadOnlyList), "expected ErrReadOnlyList, got %v", err)

	err = s.Append("colours", "red")
	assert.True(t, errors.Is(err, ErrUnknownList), "expected ErrUnknownList, got %v", err)
}

func TestFileStore_MissingFilesAreEmpty(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := NewFileStore(t.TempDir(), zap.New(core))

	for _, name := range Names {
		assert.Empty(t, s.Get(name))
	}
	assert.Equal(t, len(Names), logs.FilterMessage("word list unavailable, using empty list").Len())
}

func TestFileStore_AppendPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName(NounExceptions))
	require.NoError(t, os.WriteFile(path, []byte("i\nme"), 0644))

	s := NewFileStore(dir, nil)
	assert.Equal(t, []string{"i", "me"}, s.Get(NounExceptions))

	require.NoError(t, s.Append(NounExceptions, "Myself"))
	assert.Equal(t, []string{"i", "me", "myself"}, s.Get(NounExceptions))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "i\nme\nmyself\n", string(data))

	reloaded := NewFileStore(dir, nil)
	assert.Equal(t, []string{"i", "me", "myself"}, reloaded.Get(NounExceptions))
}

func TestFileStore_AppendReadOnly(t *testing.T) {
	s := NewFileStore(t.TempDir(), nil)
	err := s.Append(WeakVerbs, "should")
	assert.ErrorIs(t, err, ErrReadOnlyList)
}

func TestFileStore_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName(VagueTerms))
	require.NoError(t, os.WriteFile(path, []byte("easy\n"), 0644))

	s := NewFileStore(dir, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Watch(ctx))
	defer func() { _ = s.Close() }()

	require.NoError(t, os.WriteFile(path, []byte("easy\nintuitive\n"), 0644))

	assert.Eventually(t, func() bool {
		return Contains(s, VagueTerms, "intuitive")
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWriteDefaults(t *testing.T) {
	dir := t.TempDir()
	written, err := WriteDefaults(dir, false)
	require.NoError(t, err)
	assert.Len(t, written, len(Names))

	// Second run keeps existing files
	written, err = WriteDefaults(dir, false)
	require.NoError(t, err)
	assert.Empty(t, written)

	s := NewFileStore(dir, nil)
	defaults, err := Defaults()
	require.NoError(t, err)
	assert.Equal(t, defaults[WeakVerbs], s.Get(WeakVerbs))
}
