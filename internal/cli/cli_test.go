package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/storylint/internal/cache"
	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/wordlist"
)

func TestResolveList(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"noun", wordlist.NounExceptions},
		{"Verb", wordlist.VerbExceptions},
		{" ambivalent ", wordlist.VerbNounExceptions},
		{"vague_terms", wordlist.VagueTerms},
	}
	for _, tt := range tests {
		got, err := resolveList(tt.arg)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := resolveList("adjective")
	assert.ErrorIs(t, err, wordlist.ErrUnknownList)
}

func TestReadInputs(t *testing.T) {
	batch, err := readInputs([]string{"one", "two"}, "")
	require.NoError(t, err)
	assert.Equal(t, "args", batch.Source)
	assert.Equal(t, []string{"one", "two"}, batch.Items)

	_, err = readInputs(nil, "")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "criteria.yaml")
	require.NoError(t, os.WriteFile(path, []byte("us_number: 7\ncriteria:\n  - given a when b then c\n"), 0644))

	_, err = readInputs([]string{"x"}, path)
	assert.Error(t, err, "arguments and --file are exclusive")

	batch, err = readInputs(nil, path)
	require.NoError(t, err)
	assert.Equal(t, 7, batch.StoryNumber)
	assert.Equal(t, []string{"given a when b then c"}, batch.Items)
}

func TestStrictCheck(t *testing.T) {
	clean := &model.Report{Summary: model.Summary{Artifacts: 2, Clean: 2}}
	dirty := &model.Report{Summary: model.Summary{Artifacts: 2, Clean: 1}}
	failed := &model.Report{
		Summary:  model.Summary{Artifacts: 1, Clean: 1},
		Failures: []model.Failure{{Index: 1, Error: "story 2: context canceled"}},
	}

	assert.NoError(t, strictCheck(false, dirty))
	assert.NoError(t, strictCheck(true, clean))
	assert.ErrorIs(t, strictCheck(true, dirty), ErrDefectsFound)
	assert.ErrorIs(t, strictCheck(true, failed), ErrDefectsFound)
}

func TestWriteReport(t *testing.T) {
	report := &model.Report{Source: "args", Summary: model.Summary{Index: 100}}

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, "json", "", report))
	assert.Contains(t, buf.String(), `"source": "args"`)

	path := filepath.Join(t.TempDir(), "report.md")
	buf.Reset()
	require.NoError(t, writeReport(&buf, "markdown", path, report))
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Storylint Report")

	assert.Error(t, writeReport(&buf, "pdf", "", report))
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, writeDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg model.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, *model.DefaultConfig(), cfg)

	assert.Error(t, writeDefaultConfig(path), "existing file must not be overwritten")
}

type echoAnalyser struct{}

func (echoAnalyser) AnalyseUserStory(text string) *model.StoryResult {
	return &model.StoryResult{Text: text}
}

func TestAnalyseStories_SourceRate(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Concurrency.Workers = 1
	cfg.RateLimiting.Sources = []model.SourceRate{{Path: "slow.txt", RequestsPerSecond: 0.001, BurstSize: 1}}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	texts := []string{"one", "two"}
	report := analyseStories(ctx, echoAnalyser{}, cfg, filepath.Join("backlog", "slow.txt"), texts, zap.NewNop())
	require.Len(t, report.Stories, 1)
	assert.Equal(t, "one", report.Stories[0].Text)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 1, report.Failures[0].Index)

	report = analyseStories(context.Background(), echoAnalyser{}, cfg, "fast.txt", texts, zap.NewNop())
	assert.Len(t, report.Stories, 2)
	assert.Empty(t, report.Failures)
}

func TestClearCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tags")
	cfg := model.CacheConfig{Enabled: true, MemoryTTL: time.Minute, DiskDir: dir, DiskTTL: time.Hour}

	disk := cache.NewDiskCache(dir, time.Hour)
	key := cache.CacheKey("prose:i want to login")
	require.NoError(t, disk.Set(key, []byte("[]"), 0))
	_, found := disk.Get(key)
	require.True(t, found)

	require.NoError(t, clearCache(cfg))

	_, found = disk.Get(key)
	assert.False(t, found)
}
