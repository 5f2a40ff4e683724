package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/pipeline"
	"github.com/ppiankov/storylint/internal/score"
)

var (
	acFile        string
	acOut         string
	acStoryNumber int
	acStrict      bool
)

// acCmd represents the ac command
var acCmd = &cobra.Command{
	Use:   "ac [criterion...]",
	Short: "Analyse a batch of acceptance criteria",
	Long: `AC checks acceptance criteria of the form
"Given <context> when <event> then <outcome>".

The arguments (or the items of --file) form one batch: every criterion is
checked on its own, and the batch as a whole is checked for duplicates.
A YAML or JSON file may carry the story number as us_number.

Example:
  storylint ac "Given a cart when I pay then I get a receipt" "Given ..."
  storylint ac --file criteria.yaml -o json
  storylint ac --file criteria.txt --story-number 12`,
	RunE: runAC,
}

func init() {
	rootCmd.AddCommand(acCmd)

	acCmd.Flags().StringVarP(&acFile, "file", "f", "", "read criteria from a file")
	acCmd.Flags().StringVar(&acOut, "out", "", "write the report to a file instead of stdout")
	acCmd.Flags().IntVar(&acStoryNumber, "story-number", 0, "story the criteria belong to (overrides us_number)")
	acCmd.Flags().BoolVar(&acStrict, "strict", false, "exit with an error when any criterion has defects")
}

func runAC(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	batch, err := readInputs(args, acFile)
	if err != nil {
		return err
	}
	if acStoryNumber > 0 {
		batch.StoryNumber = acStoryNumber
	}

	rt, err := pipeline.Build(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("build analyser: %w", err)
	}
	defer func() { _ = rt.Close() }()

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Analysing %d acceptance criteria from %s...\n", len(batch.Items), batch.Source)
	}

	report := &model.Report{
		Source:    batch.Source,
		CreatedAt: time.Now().UTC(),
		Criteria:  rt.Analyser.AnalyseAcceptanceCriteria(batch.Items, batch.StoryNumber),
	}
	report.Summary = score.Summarise(report)

	if err := writeReport(cmd.OutOrStdout(), cfg.Output.Format, acOut, report); err != nil {
		return err
	}
	if acOut != "" {
		fmt.Fprintf(os.Stderr, "✓ %s (index: %d/100)\n", acOut, report.Summary.Index)
	}

	return strictCheck(acStrict, report)
}
