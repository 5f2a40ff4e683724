package validate

import "github.com/ppiankov/storylint/internal/model"

// chunkReportedMissing reports whether extraction already recorded message,
// a missing-chunk defect, under category. Checks on that chunk stay quiet
// so the same gap is not reported twice.
func chunkReportedMissing(d *model.Defects, category model.Category, message string) bool {
	return d.Contains(category, message)
}
