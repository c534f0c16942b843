package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/aastex"
)

var (
	verbose bool
	output  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aastex",
	Short: "Generate LaTeX for AAS journal articles",
	Long: `aastex turns a paper manifest (aastex.yaml) into LaTeX source for the
aastex631 class: title, authors, acronyms, abstract, sections, figures and
generated values kept as macros.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// openProject loads the manifest named by args, or the nearest one above the
// working directory.
func openProject(args []string, extra ...aastex.Option) (*aastex.Project, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	opts := []aastex.Option{aastex.WithLogger(slog.Default())}
	if output != "" {
		opts = append(opts, aastex.WithOutput(output))
	}
	return aastex.Open(path, append(opts, extra...)...)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
