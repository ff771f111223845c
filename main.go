package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pseudoaln_buddy_go/benchmark"
	"pseudoaln_buddy_go/config"
	"pseudoaln_buddy_go/logging"
	"pseudoaln_buddy_go/tools/pa_stats"
	"pseudoaln_buddy_go/tools/sanity_check"
)

const helpText = `pseudoaln_buddy - Pseudoalignment toolkit
Usage:
  pseudoaln_buddy <tool> [options]

Tools:
  stats		Summary statistics of a pseudoalignment file
  check		Run diagnostic test

Global Flags:
  -h, --help		Show this help message
  -v, --version		Show version information
  --verbose		Print debug diagnostics

Benchmarking:
  --benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information
`

func versionMenu() string {
	var b strings.Builder
	fmt.Fprintln(&b, "pseudoaln_buddy - Version Information Menu")
	fmt.Fprintln(&b, "Central Executable:")
	fmt.Fprintf(&b, "\tpseudoaln_buddy:\t%s\n", config.Main_version)
	fmt.Fprintf(&b, "\nModular tools:\n")
	fmt.Fprintf(&b, "\tStats:\t\t\t%s\n", config.PA_Stats)
	fmt.Fprintf(&b, "\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Fprintf(&b, "\tBenchmark:\t\t%s\n", config.Benchmark)
	return b.String()
}

// newRootCmd builds the tool tree. Diagnostics and reports go to stderr.
func newRootCmd(stderr io.Writer) *cobra.Command {
	var (
		verbose      bool
		benchmarking bool
		log          = logging.New(stderr, false)
	)

	root := &cobra.Command{
		Use:           "pseudoaln_buddy",
		Short:         "Pseudoalignment toolkit",
		Version:       config.Main_version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.New(stderr, verbose)
		},
	}
	root.SetErr(stderr)
	root.SetHelpTemplate(`{{if .HasParent}}{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}{{.UsageString}}{{else}}` + helpText + `{{end}}`)
	root.SetVersionTemplate(versionMenu())
	root.Flags().BoolP("version", "v", false, "Show version information")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print debug diagnostics")
	root.PersistentFlags().BoolVar(&benchmarking, "benchmark", false, "Report resource usage of the tool run")

	root.AddCommand(
		pa_stats.NewCommand(func() *logging.Logger { return log }),
		sanity_check.NewCommand(),
	)
	for _, c := range root.Commands() {
		wrapBenchmark(c, &benchmarking)
	}
	return root
}

// wrapBenchmark runs the tool inside benchmark.Run when --benchmark is set.
func wrapBenchmark(c *cobra.Command, on *bool) {
	run := c.RunE
	if run == nil {
		return
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		if !*on {
			return run(cmd, args)
		}
		label := "pseudoaln_buddy " + cmd.Name()
		if rest := cmd.Flags().Args(); len(rest) > 0 {
			label += " " + strings.Join(rest, " ")
		}
		cmd.Flags().Visit(func(f *pflag.Flag) {
			label += " --" + f.Name + "=" + f.Value.String()
		})
		return benchmark.Run(cmd.ErrOrStderr(), label, func() error { return run(cmd, args) })
	}
}

// Main controller
func main() {
	root := newRootCmd(os.Stderr)
	if err := root.Execute(); err != nil {
		logging.New(os.Stderr, false).Error("%v", err)
		os.Exit(1)
	}
}
