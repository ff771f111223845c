package pa_stats

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"pseudoaln_buddy_go/config"
	"pseudoaln_buddy_go/logging"
	common "pseudoaln_buddy_go/utils"
)

// NewCommand returns the "stats" subcommand. logger is called at run time so
// the root command's --verbose flag has been parsed by then.
func NewCommand(logger func() *logging.Logger) *cobra.Command {
	var (
		input      string
		configPath string
		flagOpts   = config.DefaultOptions()
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Prints statistics from a pseudoalignment output file",
		Long: `Prints statistics from a pseudoalignment output file.

Each input line is "<read_id> <color_1> ... <color_k>". The report goes to
stderr: number of reads, fraction of positive reads (at least one color) and
fraction of unique positive reads (exactly one color). Fractions over an empty
file are reported as N/A.

Example:
  pseudoaln_buddy stats -i sample.aln.gz --csv --plot -o sample`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Load(configPath)
			if err != nil {
				return err
			}
			applyChanged(cmd, &opts, flagOpts)
			if err := opts.Validate(); err != nil {
				return err
			}
			return Run(cmd.ErrOrStderr(), input, opts, logger())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "Pseudoalignment file (plain or gzip)")
	f.StringVarP(&flagOpts.ColorNames, "color-names", "c", "", "A file with one color name per line in the same order as in the index")
	f.BoolVar(&flagOpts.SkipMalformed, "skip-malformed", false, "Skip and count malformed lines instead of aborting")
	f.StringVarP(&flagOpts.OutPrefix, "out-prefix", "o", flagOpts.OutPrefix, "Prefix for report files")
	f.BoolVar(&flagOpts.CSV, "csv", false, "Write summary statistics to <prefix>.csv")
	f.BoolVar(&flagOpts.PerColor, "per-color", false, "Write per-color read counts to <prefix>_per_color.csv")
	f.BoolVar(&flagOpts.Plot, "plot", false, "Write the colors-per-read histogram to <prefix>_set_sizes.svg")
	f.Float64Var(&flagOpts.Compression, "tdigest-compression", flagOpts.Compression, "Accuracy of the median/p95 estimate")
	f.StringVar(&configPath, "config", "", "YAML file with default option values")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// applyChanged copies every explicitly set flag over the config file values.
func applyChanged(cmd *cobra.Command, dst *config.Options, src config.Options) {
	changed := cmd.Flags().Changed
	if changed("color-names") {
		dst.ColorNames = src.ColorNames
	}
	if changed("skip-malformed") {
		dst.SkipMalformed = src.SkipMalformed
	}
	if changed("out-prefix") {
		dst.OutPrefix = src.OutPrefix
	}
	if changed("csv") {
		dst.CSV = src.CSV
	}
	if changed("per-color") {
		dst.PerColor = src.PerColor
	}
	if changed("plot") {
		dst.Plot = src.Plot
	}
	if changed("tdigest-compression") {
		dst.Compression = src.Compression
	}
}

// Run computes the statistics for input, prints them to w and writes the
// requested report files. Nothing is printed when the pass fails.
func Run(w io.Writer, input string, opts config.Options, log *logging.Logger) error {
	if log == nil {
		log = logging.New(nil, false)
	}

	if opts.ColorNames != "" {
		// Accepted for compatibility; names never enter the statistics
		if err := common.CheckReadable(opts.ColorNames, "color names"); err != nil {
			log.Warn("%v", err)
		} else {
			log.Debug("color names file %s accepted but not used", opts.ColorNames)
		}
	}

	log.Debug("reading %s", input)
	s, err := ComputeFile(input, Options{
		SkipMalformed: opts.SkipMalformed,
		Compression:   opts.Compression,
		Log:           log,
	})
	if err != nil {
		return err
	}

	if err := PrintSummary(w, s); err != nil {
		return errors.Wrap(err, "printing summary")
	}

	if opts.CSV {
		name, err := WriteCSVReport(opts.OutPrefix, s)
		if err != nil {
			return errors.Wrap(err, "failed to write CSV")
		}
		log.Info("Wrote pseudoalignment statistics to CSV file: %s", name)
	}
	if opts.PerColor {
		name, err := WritePerColorCSV(opts.OutPrefix, s)
		if err != nil {
			return errors.Wrap(err, "failed to write per-color CSV")
		}
		log.Info("Wrote per-color read counts to CSV file: %s", name)
	}
	if opts.Plot {
		if s.NReads == 0 {
			log.Warn("no reads, skipping colors-per-read plot")
		} else {
			name, err := WriteSetSizePlot(opts.OutPrefix, s)
			if err != nil {
				return errors.Wrap(err, "failed to write plot")
			}
			log.Info("Wrote colors-per-read plot: %s", name)
		}
	}
	return nil
}
