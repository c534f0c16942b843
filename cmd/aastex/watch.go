package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"

	"github.com/aretw0/aastex"
)

var watchCmd = &cobra.Command{
	Use:   "watch [manifest]",
	Short: "Rebuild the paper whenever its inputs change",
	Long: `Build the paper, then rebuild it each time the manifest or one of the
images it includes changes. Stops on interrupt.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := openProject(args)
		if err != nil {
			fatal("Failed to open project", err)
		}

		ctx := lifecycle.NewSignalContext(context.Background())
		err = p.Watch(ctx, func(r aastex.BuildResult) {
			if r.Err != nil {
				return // logged by the project
			}
			if r.Trigger != "" {
				slog.Info("rebuilt", "trigger", r.Trigger)
			}
			fmt.Println(r.Output)
		})
		if err != nil {
			fatal("Watch failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default from the manifest)")
}
