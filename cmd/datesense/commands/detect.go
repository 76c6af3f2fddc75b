/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detect.go
Description: Detect command for the DateSense CLI. Gathers sample date
strings from arguments, a file or standard input, runs the detection
pipeline and prints the inferred format string.
*/

package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/datesense/pkg/detect"
)

// RunDetect executes the detect command
func RunDetect(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return err
	}
	logger, err := SetupLogging()
	if err != nil {
		return err
	}

	samples, err := gatherSamples(args)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no samples provided: pass samples as arguments, or use --input")
	}

	result := detect.DetectWithConfig(samples, detect.Config{
		Logger: logger.GetLogger(),
	})

	format := result.FormatString(viper.GetBool("escape_percent"), viper.GetBool("blank_if_unrecognized"))
	if format == "" {
		logger.LogUnrecognized(result.ID, len(samples), nil)
	} else {
		logger.LogDetection(result.ID, len(samples), format, nil)
	}

	fmt.Fprintln(cmd.OutOrStdout(), format)

	if viper.GetBool("verbose_scores") {
		fmt.Fprintln(cmd.OutOrStdout(), result.LongDebugString(", ", "\n"))
	} else if viper.GetBool("show_scores") {
		fmt.Fprintln(cmd.OutOrStdout(), result.ShortDebugString(", ", "\n"))
	}

	return nil
}

// gatherSamples collects sample strings from the command line, a file, or
// standard input. Blank lines are skipped.
func gatherSamples(args []string) ([]string, error) {
	samples := append([]string{}, args...)

	input := viper.GetString("input")
	if input == "" {
		return samples, nil
	}

	var reader io.Reader
	if input == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			samples = append(samples, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}
	return samples, nil
}
