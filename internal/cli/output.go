package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ppiankov/storylint/internal/ingest"
	"github.com/ppiankov/storylint/internal/model"
	"github.com/ppiankov/storylint/internal/pipeline"
)

const rule = "═══════════════════════════════════════════════════════════"

// ErrDefectsFound is returned under --strict when any artifact has a defect
var ErrDefectsFound = errors.New("defects found")

// readInputs returns the artifacts named on the command line, or the
// contents of file when one is given
func readInputs(args []string, file string) (*ingest.Batch, error) {
	if file != "" {
		if len(args) > 0 {
			return nil, errors.New("pass texts as arguments or --file, not both")
		}
		batch, err := ingest.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read inputs: %w", err)
		}
		return batch, nil
	}

	if len(args) == 0 {
		return nil, errors.New("nothing to analyse: pass texts as arguments or use --file")
	}
	return &ingest.Batch{Source: "args", Items: args}, nil
}

// writeReport renders report in format to path, or to w when path is empty
func writeReport(w io.Writer, format, path string, report *model.Report) (err error) {
	renderer, err := pipeline.NewRenderer(format)
	if err != nil {
		return err
	}

	if path == "" {
		return renderer.Render(w, report)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close report file: %w", closeErr)
		}
	}()

	return renderer.Render(f, report)
}

// strictCheck turns a report with defects into ErrDefectsFound
func strictCheck(strict bool, report *model.Report) error {
	if !strict {
		return nil
	}
	if report.Summary.Clean < report.Summary.Artifacts || len(report.Failures) > 0 {
		return fmt.Errorf("%w: %d of %d artifacts clean", ErrDefectsFound, report.Summary.Clean, report.Summary.Artifacts)
	}
	return nil
}

func printBanner(w io.Writer, title string) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}
