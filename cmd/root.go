package cmd

import (
	"mdbundle/pkg/bundle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the root command. The transform runs directly on the
// root command: the CLI surface is just the input directory and the
// output file.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	var args bundle.Arguments

	rootCmd := &cobra.Command{
		Use:   "mdbundle",
		Short: "mdbundle is a CLI tool for concatenating Markdown files",
		Long: `mdbundle recursively scans a directory for Markdown files and writes
their contents, separated by per-file banners, into a single output file,
designed for workflows like preparing a notes vault as one LLM prompt.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return bundle.Run(args, logger)
		},
	}

	rootCmd.Flags().StringVarP(&args.InputDir, "input", "i", ".", "directory to scan for .md files")
	rootCmd.Flags().StringVarP(&args.OutputFile, "output", "o", "combined.md", "output file path")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command with the provided logger and returns any
// error for main to report.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}
