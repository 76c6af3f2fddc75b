/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for the DateSense format detector.
Provides the detect command plus catalog and rule listings, with
configuration management and structured logging.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/datesense/cmd/datesense/commands"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logFormat  string
	logColors  bool

	// Detect configuration
	inputFile           string
	escapePercent       bool
	blankIfUnrecognized bool
	showScores          bool
	verboseScores       bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "datesense",
		Short: "DateSense - date/time format detection from sample strings",
		Long: `DateSense infers the strptime-style format string shared by a set of
identically-formatted date strings. Feed it samples, get back a format
specification usable by any strptime-style parser - or an explicit
"unrecognized" result when the samples defy interpretation.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().BoolVar(&logColors, "log-colors", true, "Colorize log output")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_colors", rootCmd.PersistentFlags().Lookup("log-colors"))

	// Add detect command
	detectCmd := &cobra.Command{
		Use:   "detect [samples...]",
		Short: "Detect the date format shared by sample strings",
		Long: `Detect the directive-based format string that would parse the given
sample date strings. Samples are taken from the command line, from a file
(one sample per line), or from standard input. More samples with distinct
values mean less ambiguity. Unrecognized input prints nothing and exits
cleanly.`,
		RunE: commands.RunDetect,
	}

	// Add detect command flags
	detectCmd.Flags().StringVar(&inputFile, "input", "", "File containing samples, one per line ('-' for stdin)")
	detectCmd.Flags().BoolVar(&escapePercent, "escape-percent", true, "Escape literal '%' characters as '%%'")
	detectCmd.Flags().BoolVar(&blankIfUnrecognized, "blank-if-unrecognized", true, "Print nothing when no format is recognized")
	detectCmd.Flags().BoolVar(&showScores, "show-scores", false, "Print the best-scoring candidates per position")
	detectCmd.Flags().BoolVar(&verboseScores, "verbose-scores", false, "Print all candidates per position sorted by score")

	viper.BindPFlag("input", detectCmd.Flags().Lookup("input"))
	viper.BindPFlag("escape_percent", detectCmd.Flags().Lookup("escape-percent"))
	viper.BindPFlag("blank_if_unrecognized", detectCmd.Flags().Lookup("blank-if-unrecognized"))
	viper.BindPFlag("show_scores", detectCmd.Flags().Lookup("show-scores"))
	viper.BindPFlag("verbose_scores", detectCmd.Flags().Lookup("verbose-scores"))

	rootCmd.AddCommand(detectCmd)

	// Add list-directives command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list-directives",
		Short: "List the default directive catalogs",
		Long: `List the numeric and alphabetical directive options DateSense recognizes
by default, with their value ranges, word sets and commonality weights.`,
		Run: commands.ListDirectives,
	})

	// Add list-rules command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list-rules",
		Short: "List the default formatting rules",
		Long: `List the default rule set applied during detection, in application
order, with a description of each rule type's behavior.`,
		Run: commands.ListRules,
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
