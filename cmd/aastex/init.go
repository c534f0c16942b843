package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/aastex"
)

var force bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter aastex.yaml",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		} else if cwd, err := os.Getwd(); err == nil {
			dir = cwd
		}

		path, err := aastex.Init(dir, force)
		if err != nil {
			fatal("Failed to initialize paper", err)
		}
		fmt.Println("Created", path)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing manifest")
}
