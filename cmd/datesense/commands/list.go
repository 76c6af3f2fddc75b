/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: list.go
Description: Listing commands for the DateSense CLI. Print the default
directive catalogs and the default rule set with descriptions.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kleascm/datesense/pkg/catalog"
	"github.com/kleascm/datesense/pkg/rules"
)

// ListDirectives prints the default directive catalogs
func ListDirectives(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Numeric directives:")
	for _, opt := range catalog.DefaultNumericOptions() {
		min, max := opt.Range()
		fmt.Fprintf(out, "  %s  range %d-%d  commonality %d\n", opt.Directive(), min, max, opt.Commonality())
	}

	fmt.Fprintln(out, "\nWord directives:")
	for _, opt := range catalog.DefaultWordOptions() {
		fmt.Fprintf(out, "  %s  words %s  commonality %d\n", opt.Directive(), strings.Join(opt.Words(), ","), opt.Commonality())
	}

	fmt.Fprintf(out, "\nTimezone offset directive: %s\n", catalog.DefaultTimezoneDirective())
}

// ListRules prints the default rule set in application order
func ListRules(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Default rules, in application order:")
	for i, rule := range rules.DefaultRules() {
		fmt.Fprintf(out, "  %2d. %s - %s\n", i+1, rule.Name(), rule.Description())
	}
}
