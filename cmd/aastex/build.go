package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build [manifest]",
	Short: "Write the .tex file for a paper",
	Long: `Build the paper described by the manifest and write its LaTeX source.
Without an argument the nearest aastex.yaml (or .yml/.json) above the current
directory is used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := openProject(args)
		if err != nil {
			fatal("Failed to open project", err)
		}

		out, err := p.Generate()
		if err != nil {
			fatal("Failed to build paper", err)
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default from the manifest)")
}
