package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaid/pkg/buildinfo"
)

// newVersionCmd creates the version command. It prints the same fields
// as --version, one per line, for easy machine consumption.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printKeyValue("version", buildinfo.Version)
			printKeyValue("commit", buildinfo.Commit)
			printKeyValue("built", buildinfo.Date)
		},
	}
}
