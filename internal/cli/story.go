package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/pipeline"
	"github.com/ppiankov/storylint/internal/score"
	"github.com/ppiankov/storylint/internal/worker"
)

var (
	storyFile    string
	storyOut     string
	storyTimeout time.Duration
	storyStrict  bool
)

// storyCmd represents the story command
var storyCmd = &cobra.Command{
	Use:   "story [text...]",
	Short: "Analyse one or more user stories",
	Long: `Story checks user stories of the form
"As a <role>, I want <means>, so that <ends>".

Each argument is one story. With --file, stories are read one per line
(.txt, .md), from a YAML or JSON list, or from the list items of an HTML
page. Several stories are analysed concurrently.

Example:
  storylint story "As a visitor, I want to register, so that I can post"
  storylint story --file backlog.yaml -o markdown --out report.md
  storylint story --file backlog.txt --workers 8 --strict`,
	RunE: runStory,
}

func init() {
	rootCmd.AddCommand(storyCmd)

	defaults := model.DefaultConfig()

	storyCmd.Flags().StringVarP(&storyFile, "file", "f", "", "read stories from a file")
	storyCmd.Flags().StringVar(&storyOut, "out", "", "write the report to a file instead of stdout")
	storyCmd.Flags().DurationVar(&storyTimeout, "timeout", 5*time.Minute, "overall analysis timeout")
	storyCmd.Flags().BoolVar(&storyStrict, "strict", false, "exit with an error when any story has defects")

	// Batch flags
	storyCmd.Flags().Int("workers", defaults.Concurrency.Workers, "number of concurrent workers")
	storyCmd.Flags().Float64("rps", defaults.RateLimiting.RequestsPerSecond, "stories per second (0 = unlimited)")

	_ = viper.BindPFlag("concurrency.workers", storyCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("rate_limiting.requests_per_second", storyCmd.Flags().Lookup("rps"))
}

func runStory(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	batch, err := readInputs(args, storyFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), storyTimeout)
	defer cancel()

	rt, err := pipeline.Build(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build analyser: %w", err)
	}
	defer func() { _ = rt.Close() }()

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Analysing %d stories from %s with %d workers...\n",
			len(batch.Items), batch.Source, cfg.Concurrency.Workers)
	}

	report := analyseStories(ctx, rt.Analyser, cfg, batch.Source, batch.Items, logger)

	if err := writeReport(cmd.OutOrStdout(), cfg.Output.Format, storyOut, report); err != nil {
		return err
	}
	if storyOut != "" {
		fmt.Fprintf(os.Stderr, "✓ %s (index: %d/100)\n", storyOut, report.Summary.Index)
	}

	return strictCheck(storyStrict, report)
}

// analyseStories runs every story through the batch processor and collects
// the results in input order
func analyseStories(ctx context.Context, analyser worker.StoryAnalyser, cfg *model.Config, source string, texts []string, logger *zap.Logger) *model.Report {
	processor := worker.NewBatchProcessor(
		analyser,
		cfg.Concurrency.Workers,
		cfg.RateLimiting.RequestsPerSecond,
		cfg.RateLimiting.BurstSize,
	)
	if sr, ok := cfg.RateLimiting.SourceRate(source); ok {
		burst := sr.BurstSize
		if burst <= 0 {
			burst = cfg.RateLimiting.BurstSize
		}
		processor.SetSourceRate(source, sr.RequestsPerSecond, burst)
		logger.Debug("source rate override",
			zap.String("source", source),
			zap.Float64("rps", sr.RequestsPerSecond),
			zap.Int("burst", burst))
	}

	report := &model.Report{
		Source:    source,
		CreatedAt: time.Now().UTC(),
		Stories:   make([]*model.StoryResult, 0, len(texts)),
	}

	for _, outcome := range processor.ProcessStories(ctx, source, texts) {
		if err := outcome.GetError(); err != nil {
			logger.Warn("story not analysed", zap.Int("index", outcome.Index), zap.Error(err))
			report.Failures = append(report.Failures, model.Failure{Index: outcome.Index, Error: err.Error()})
			continue
		}
		report.Stories = append(report.Stories, outcome.Result)
	}

	report.Summary = score.Summarise(report)
	return report
}
