package sanity_check

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pseudoaln_buddy_go/config" // Version control file
)

// Run performs a simple sanity check to ensure the binary is
// running properly, printing a helpful message and version number.
func Run(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Successfully running pseudoaln_buddy! (%s)\n", config.Main_version)
	return err
}

// NewCommand returns the "check" subcommand.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run diagnostic test",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.OutOrStdout())
		},
	}
}
