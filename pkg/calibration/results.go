package calibration

import (
	"fmt"
	"strings"
)

// records the outcome of calibrating a single line
type LineResult struct {
	Number int    // 1-based position of the line in its document
	Text   string // the line as read
	First  int    // first digit found
	Last   int    // last digit found
	Value  int    // First*10+Last
	Err    error  // ErrNoValue when the line was skipped
}

// Skipped reports whether the line did not contribute to the total.
func (lr *LineResult) Skipped() bool {
	return lr.Err != nil
}

func (lr *LineResult) String() string {
	if lr.Skipped() {
		return fmt.Sprintf("line %d: %q skipped: %v", lr.Number, lr.Text, lr.Err)
	}
	return fmt.Sprintf("line %d: %q first=%d last=%d value=%d", lr.Number, lr.Text, lr.First, lr.Last, lr.Value)
}

// Report sums the calibration values of a document.
type Report struct {
	Mode    Mode
	Results []*LineResult // in document order
	Total   int           // sum of the values of the lines that were not skipped
	Skipped int           // number of lines without value
}

func (r *Report) String() string {
	var sb strings.Builder
	for _, result := range r.Results {
		sb.WriteString(result.String())
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%s: total=%d lines=%d skipped=%d", r.Mode, r.Total, len(r.Results), r.Skipped)
	return sb.String()
}
