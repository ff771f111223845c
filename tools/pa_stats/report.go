package pa_stats

import (
	"fmt"
	"io"
	"strconv"
)

// NotAvailable is printed in place of a fraction over zero reads.
const NotAvailable = "N/A"

// FormatFraction renders a fraction with the shortest exact decimal, or N/A.
func FormatFraction(f float64, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// PrintSummary writes the human-readable report. The first three lines are
// the headline statistics; the rest describe the colors-per-read distribution.
func PrintSummary(w io.Writer, s Summary) error {
	fp, okp := s.FractionPositive()
	fu, oku := s.FractionUniquePositive()

	lines := []string{
		fmt.Sprintf("Number of reads: %d", s.NReads),
		fmt.Sprintf("Fraction of positive reads: %s", FormatFraction(fp, okp)),
		fmt.Sprintf("Fraction of unique positive reads: %s", FormatFraction(fu, oku)),
		fmt.Sprintf("Max color id: %d", s.MaxColorID),
	}
	if s.NReads > 0 {
		lines = append(lines,
			fmt.Sprintf("Colors per read: mean %.3f, sd %.3f, median %.1f, p95 %.1f",
				s.MeanColors, s.StdDevColors, s.MedianColors, s.P95Colors),
			fmt.Sprintf("Distinct color sets: %d", s.DistinctColorSets),
		)
	}
	if s.NSkippedLines > 0 {
		lines = append(lines, fmt.Sprintf("Skipped malformed lines: %d", s.NSkippedLines))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
