package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [manifest]",
	Short: "Print the outline of a paper as JSON",
	Long:  `Build the paper in memory and print its state: class, packages, variables, labels and element counts.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := openProject(args)
		if err != nil {
			fatal("Failed to open project", err)
		}
		doc, err := p.Build()
		if err != nil {
			fatal("Failed to build paper", err)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]any{
			"component": doc.ComponentType(),
			"manifest":  p.ManifestPath,
			"output":    p.Output(),
			"state":     doc.State(),
		}); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
