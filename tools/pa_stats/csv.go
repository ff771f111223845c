package pa_stats

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// WriteCSVReport writes a header plus one summary row to <prefix>.csv and
// returns the file name.
func WriteCSVReport(prefix string, s Summary) (string, error) {
	fp, okp := s.FractionPositive()
	fu, oku := s.FractionUniquePositive()

	headers := []string{
		"TotalReads", "PositiveReads", "UniquePositiveReads",
		"FractionPositive", "FractionUniquePositive", "MaxColorID",
		"ColorTokens", "MeanColors", "StdDevColors", "MedianColors", "P95Colors",
		"DistinctColorSets", "SkippedLines",
	}
	values := []string{
		strconv.FormatUint(s.NReads, 10),
		strconv.FormatUint(s.NPositiveReads, 10),
		strconv.FormatUint(s.NUniquePositiveReads, 10),
		FormatFraction(fp, okp),
		FormatFraction(fu, oku),
		strconv.FormatUint(s.MaxColorID, 10),
		strconv.FormatUint(s.NColorTokens, 10),
		fmt.Sprintf("%.4f", s.MeanColors),
		fmt.Sprintf("%.4f", s.StdDevColors),
		fmt.Sprintf("%.1f", s.MedianColors),
		fmt.Sprintf("%.1f", s.P95Colors),
		strconv.FormatUint(s.DistinctColorSets, 10),
		strconv.FormatUint(s.NSkippedLines, 10),
	}

	name := prefix + ".csv"
	return name, writeCSV(name, [][]string{headers, values})
}

// WritePerColorCSV writes one row per color seen, ordered by color id, to
// <prefix>_per_color.csv and returns the file name.
func WritePerColorCSV(prefix string, s Summary) (string, error) {
	ids := make([]uint64, 0, len(s.ColorReads))
	for id := range s.ColorReads {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rows := make([][]string, 0, len(ids)+1)
	rows = append(rows, []string{"ColorID", "Reads", "FractionOfReads"})
	for _, id := range ids {
		n := s.ColorReads[id]
		f, ok := fraction(n, s.NReads)
		rows = append(rows, []string{
			strconv.FormatUint(id, 10),
			strconv.FormatUint(n, 10),
			FormatFraction(f, ok),
		})
	}

	name := prefix + "_per_color.csv"
	return name, writeCSV(name, rows)
}

func writeCSV(name string, rows [][]string) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "creating CSV")
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	return f.Close()
}
