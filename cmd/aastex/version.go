package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/aastex"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of aastex",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aastex version %s\n", strings.TrimSpace(aastex.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
