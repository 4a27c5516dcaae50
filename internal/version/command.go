package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AttachCobraVersionCommand adds a `version` subcommand to a tool's root command.
// The line starts with the root command's name so the three tools can be told apart.
func AttachCobraVersionCommand(root *cobra.Command) {
	var short bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the tool version.",
		Long:  "Print the tool name and release tag, and unless --short is given the commit and build time taken from -ldflags.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), Line(root.Name(), short))
		},
	}

	versionCmd.Flags().BoolVarP(&short, "short", "s", false, "print only the release tag")

	root.AddCommand(versionCmd)
}
