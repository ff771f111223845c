package pa_stats

import (
	"encoding/binary"
	"io"
	"math"
	"slices"
	"sort"

	"github.com/influxdata/tdigest"
	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"
	"gonum.org/v1/gonum/stat"

	"pseudoaln_buddy_go/logging"
	common "pseudoaln_buddy_go/utils"
)

// maxSkipWarnings caps per-line warnings in lenient mode; the total is still counted.
const maxSkipWarnings = 10

// RunningStats is the fold over all parsed lines.
// NUniquePositiveReads <= NPositiveReads <= NReads always holds.
type RunningStats struct {
	NReads               uint64
	NPositiveReads       uint64
	NUniquePositiveReads uint64
	MaxColorID           uint64 // 0 when no color was seen
}

// Add folds one read with the given colors into the counters.
func (s *RunningStats) Add(colors []uint64) {
	s.NReads++
	if len(colors) > 0 {
		s.NPositiveReads++
	}
	if len(colors) == 1 {
		s.NUniquePositiveReads++
	}
	for _, c := range colors {
		if c > s.MaxColorID {
			s.MaxColorID = c
		}
	}
}

// Options controls a single stats pass.
type Options struct {
	// SkipMalformed counts and skips bad lines instead of aborting.
	SkipMalformed bool
	// Compression of the colors-per-read t-digest; <= 0 means 100.
	Compression float64
	// Log receives lenient-mode warnings. May be nil.
	Log *logging.Logger
}

// Accumulator streams reads into RunningStats plus the distribution data
// the reports need. It is not safe for concurrent use.
type Accumulator struct {
	RunningStats

	colorTokens uint64
	skipped     uint64
	setSizes    map[int]uint64
	colorReads  map[uint64]uint64
	colorSets   map[uint64]struct{}
	digest      *tdigest.TDigest

	scratch []uint64
	keyBuf  []byte
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator(compression float64) *Accumulator {
	if compression <= 0 {
		compression = 100
	}
	return &Accumulator{
		setSizes:   make(map[int]uint64),
		colorReads: make(map[uint64]uint64),
		colorSets:  make(map[uint64]struct{}),
		digest:     tdigest.NewWithCompression(compression),
	}
}

// Add folds one read. colors is only read, never retained.
func (a *Accumulator) Add(colors []uint64) {
	a.RunningStats.Add(colors)
	a.colorTokens += uint64(len(colors))
	a.setSizes[len(colors)]++
	a.digest.Add(float64(len(colors)), 1)
	if len(colors) == 0 {
		return
	}

	// Colors of a read form a set: order and repeats do not matter
	a.scratch = append(a.scratch[:0], colors...)
	slices.Sort(a.scratch)
	a.scratch = slices.Compact(a.scratch)

	a.keyBuf = a.keyBuf[:0]
	for _, c := range a.scratch {
		a.colorReads[c]++
		a.keyBuf = binary.LittleEndian.AppendUint64(a.keyBuf, c)
	}
	a.colorSets[xxh3.Hash(a.keyBuf)] = struct{}{}
}

// Skip records a malformed line dropped in lenient mode.
func (a *Accumulator) Skip() {
	a.skipped++
}

// Summary computes the final statistics. The accumulator may keep being used.
func (a *Accumulator) Summary() Summary {
	s := Summary{
		RunningStats:      a.RunningStats,
		NColorTokens:      a.colorTokens,
		NSkippedLines:     a.skipped,
		DistinctColorSets: uint64(len(a.colorSets)),
		SetSizes:          make(map[int]uint64, len(a.setSizes)),
		ColorReads:        make(map[uint64]uint64, len(a.colorReads)),
	}
	for k, v := range a.setSizes {
		s.SetSizes[k] = v
	}
	for k, v := range a.colorReads {
		s.ColorReads[k] = v
	}
	if s.NReads == 0 {
		return s
	}

	sizes, weights := histogramXY(a.setSizes)
	s.MeanColors, s.StdDevColors = stat.MeanStdDev(sizes, weights)
	if s.NReads < 2 || math.IsNaN(s.StdDevColors) {
		s.StdDevColors = 0
	}
	s.MedianColors = a.digest.Quantile(0.5)
	s.P95Colors = a.digest.Quantile(0.95)
	return s
}

// histogramXY flattens a size histogram into sorted values and their weights.
func histogramXY(h map[int]uint64) ([]float64, []float64) {
	keys := make([]int, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	xs := make([]float64, len(keys))
	ws := make([]float64, len(keys))
	for i, k := range keys {
		xs[i] = float64(k)
		ws[i] = float64(h[k])
	}
	return xs, ws
}

// Summary is the result of a completed pass.
type Summary struct {
	RunningStats

	NColorTokens      uint64
	NSkippedLines     uint64
	DistinctColorSets uint64

	// SetSizes maps colors-per-read to the number of reads with that many.
	SetSizes map[int]uint64
	// ColorReads maps a color id to the number of reads containing it.
	ColorReads map[uint64]uint64

	MeanColors   float64
	StdDevColors float64
	MedianColors float64
	P95Colors    float64
}

// FractionPositive is NPositiveReads/NReads; ok is false when there are no reads.
func (s Summary) FractionPositive() (float64, bool) {
	return fraction(s.NPositiveReads, s.NReads)
}

// FractionUniquePositive is NUniquePositiveReads/NReads; ok is false when there are no reads.
func (s Summary) FractionUniquePositive() (float64, bool) {
	return fraction(s.NUniquePositiveReads, s.NReads)
}

// RequireReads returns ErrEmptyInput when the fractions are undefined.
func (s Summary) RequireReads() error {
	if s.NReads == 0 {
		return ErrEmptyInput
	}
	return nil
}

func fraction(part, total uint64) (float64, bool) {
	if total == 0 {
		return 0, false
	}
	return float64(part) / float64(total), true
}

// Compute runs one strict (or, with SkipMalformed, lenient) pass over r.
// On error no statistics are returned.
func Compute(r io.Reader, opts Options) (Summary, error) {
	acc := NewAccumulator(opts.Compression)
	var colors []uint64

	err := common.StreamLines(r, func(lineNo int, line []byte) error {
		var err error
		_, colors, err = ParseLine(line, colors)
		if err != nil {
			var mle *MalformedLineError
			if errors.As(err, &mle) {
				mle.Line = lineNo
				mle.Text = string(line)
			}
			if !opts.SkipMalformed {
				return err
			}
			acc.Skip()
			if opts.Log != nil && acc.skipped <= maxSkipWarnings {
				opts.Log.Warn("skipping %v", err)
				if acc.skipped == maxSkipWarnings {
					opts.Log.Warn("further malformed lines will be skipped silently")
				}
			}
			return nil
		}
		acc.Add(colors)
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return acc.Summary(), nil
}

// ComputeFile opens path (plain or gzip) and runs Compute over it.
func ComputeFile(path string, opts Options) (Summary, error) {
	rc, err := common.OpenInput(path)
	if err != nil {
		return Summary{}, errors.Wrapf(ErrInputUnavailable, "%s (%v)", path, errors.Cause(err))
	}
	defer rc.Close()

	s, err := Compute(rc, opts)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "%s", path)
	}
	return s, nil
}
