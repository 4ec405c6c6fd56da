package cmd

import (
	"fmt"

	"mdbundle/pkg/version"

	"github.com/spf13/cobra"
)

// newVersionCmd builds the version command. The --short flag allows users
// to retrieve a concise version string.
func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of mdbundle",
		Long:  `Display the current version information of the mdbundle CLI tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}

			v := version.Get()

			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v.Version)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), v.String())
			}

			return nil
		},
	}

	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")

	return versionCmd
}
