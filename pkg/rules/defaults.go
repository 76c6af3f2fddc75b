/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: defaults.go
Description: Default formatting rules for the DateSense format detector.
Suitable for most any English-language date format. Rules are applied in the
order listed: delimiters and likely ranges first, then layout patterns, then
mutual exclusions over the pattern-adjusted scores.
*/

package rules

import "github.com/kleascm/datesense/pkg/model"

// DefaultRules returns the default set of formatting rules
func DefaultRules() []model.Rule {
	return []model.Rule{
		// Days, months and years are usually delimited by '-' or '/'.
		NewDelimiterRule([]string{"%d", "%m", "%y", "%Y"}, []string{"-", "/"}, 2, 0),
		// ISO 8601 date directives should always be adjacent to '-' (or sometimes 'W').
		NewDelimiterRule([]string{"%G", "%g", "%V", "%u", "%j"}, []string{"-", "W"}, 2, -3),
		// Hours, minutes and seconds are usually delimited by ':'.
		NewDelimiterRule([]string{"%H", "%I", "%M", "%S"}, []string{":"}, 2, 0),

		// The year is probably between 1000 and 3000.
		NewLikelyRangeRule([]string{"%Y", "%G"}, 1000, 3000, 1, -1),
		// The century is probably between 10 and 30.
		NewLikelyRangeRule([]string{"%C"}, 10, 30, 0, -1),
		// Seconds can be 60 or 61 due to leap seconds, but that's very rare.
		NewLikelyRangeRule([]string{"%S"}, 0, 59, 0, -1),

		// hh:mm:ss
		NewPatternRule([][]string{{"%H", "%I"}, {":"}, {"%M"}, {":"}, {"%S"}}, 1, 0, 3, 0),
		// hh:mm
		NewPatternRule([][]string{{"%H", "%I"}, {":"}, {"%M"}}, 1, 0, 1, 0),
		// 12-hour time trailed by an AM/PM marker
		NewPatternRule([][]string{{"%I"}, {"%M"}, {"%p"}}, 4, 0, 3, 0),
		// Timezone name plus offset
		NewPatternRule([][]string{{"%Z"}, {"%z"}}, 1, 0, 2, 0),
		// American order - month, day, year
		NewPatternRule([][]string{{"%m", "%b", "%B"}, {"%d"}, {"%y", "%Y"}}, 2, 0, 4, 0),
		// European order - day, month, year
		NewPatternRule([][]string{{"%d"}, {"%m", "%b", "%B"}, {"%y", "%Y"}}, 2, 0, 3, 0),
		// Word month followed by the day
		NewPatternRule([][]string{{"%B", "%b"}, {" "}, {"%d"}}, 1, 0, 2, 0),
		// Day followed by a word month
		NewPatternRule([][]string{{"%d"}, {" "}, {"%B", "%b"}}, 1, 0, 2, 0),
		// YYYY-MM-DD
		NewPatternRule([][]string{{"%Y"}, {"-"}, {"%m"}, {"-"}, {"%d"}}, 1, 0, 4, 0),
		// The word "day" typically precedes the day.
		NewPatternRule([][]string{{"day"}, {"%d"}}, 4, 0, 2, 0),
		// The word "month" typically precedes the month.
		NewPatternRule([][]string{{"month"}, {"%m", "%b", "%B"}}, 4, 0, 2, 0),
		// The word "year" typically precedes the year.
		NewPatternRule([][]string{{"year"}, {"%Y", "%y"}}, 4, 0, 2, 0),
		// The word "time" typically precedes the time.
		NewPatternRule([][]string{{"time"}, {"%H", "%I"}}, 4, 0, 2, 0),
		// ISO 8601 date formats often include W%V.
		NewPatternRule([][]string{{"W"}, {"%V"}}, 1, 0, 2, 0),
		// ISO 8601 date with week number and weekday
		NewPatternRule([][]string{{"%G", "%g"}, {"-"}, {"W"}, {"%V"}, {"-"}, {"%u"}}, 1, 0, 4, 0),
		// ISO 8601 week
		NewPatternRule([][]string{{"%G", "%g"}, {"-"}, {"W"}, {"%V"}}, 1, 0, 3, 0),
		// ISO 8601 ordinal date
		NewPatternRule([][]string{{"%G", "%g"}, {"-"}, {"%j"}}, 1, 0, 2, 0),

		// 24-hour and 12-hour time don't mix.
		NewMutualExclusionRule([][]string{{"%H"}, {"%I", "%p"}}, 0, -2),
		// No more than one year directive.
		NewMutualExclusionRule([][]string{{"%Y"}, {"%y"}, {"%G"}, {"%g"}}, 0, -2),
		// No sense in both a 4-digit year and a century.
		NewMutualExclusionRule([][]string{{"%Y", "%G"}, {"%C"}}, 0, -2),
		// No more than one month directive.
		NewMutualExclusionRule([][]string{{"%B"}, {"%b"}, {"%m"}}, 0, -2),
		// No more than one weekday directive.
		NewMutualExclusionRule([][]string{{"%A"}, {"%a"}, {"%u"}, {"%w"}}, 0, -2),
		// No more than one week of year directive.
		NewMutualExclusionRule([][]string{{"%V"}, {"%U"}, {"%W"}}, 0, -2),
	}
}
