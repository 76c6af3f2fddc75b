/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: defaults.go
Description: Default directive catalogs for the DateSense format detector.
Covers the strptime directives recognized by POSIX and the common scripting
runtimes, with English word lists for the alphabetical directives.
*/

package catalog

// TimezoneDirective is the default directive for numeric UTC offset tokens
// like +0100 and -0300
const TimezoneDirective = "%z"

// DefaultNumericOptions returns the default set of numeric directive options
func DefaultNumericOptions() []*NumericOption {
	return []*NumericOption{
		// Common numeric date directives
		NewNumericOption("%y", Common, 0, 99),   // 2-digit year
		NewNumericOption("%Y", Common, 0, 9999), // 4-digit year
		NewNumericOption("%m", Common, 1, 12),   // month as a number
		NewNumericOption("%d", Common, 1, 31),   // day of the month
		// Common numeric time directives
		NewNumericOption("%H", Common, 0, 23), // 24-hour
		NewNumericOption("%I", Common, 1, 12), // 12-hour
		NewNumericOption("%M", Common, 0, 59), // minutes
		NewNumericOption("%S", Common, 0, 61), // seconds, leap seconds included
		// ISO 8601 numeric date directives
		NewNumericOption("%g", Uncommon, 0, 99),   // 2-digit ISO week-numbering year
		NewNumericOption("%G", Uncommon, 0, 9999), // 4-digit ISO week-numbering year
		NewNumericOption("%V", Uncommon, 1, 53),   // ISO 8601 week of the year
		NewNumericOption("%u", Uncommon, 1, 7),    // weekday as a number (1-7)
		// Uncommon numeric directives
		NewNumericOption("%C", Uncommon, 0, 99),  // 2-digit century
		NewNumericOption("%w", Uncommon, 0, 6),   // weekday as a number (0-6)
		NewNumericOption("%j", Uncommon, 1, 366), // day of the year
		NewNumericOption("%W", Uncommon, 0, 53),  // week of the year, first Monday
		NewNumericOption("%U", Uncommon, 0, 53),  // week of the year, first Sunday
	}
}

// DefaultWordOptions returns the default set of alphabetical directive
// options. The %Z timezone name list is nowhere near complete; callers with
// exotic inputs can supply their own.
func DefaultWordOptions() []*WordOption {
	return []*WordOption{
		NewWordOption("%b", Common, "jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"),
		NewWordOption("%B", Common, "january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"),
		NewWordOption("%p", Common, "am", "pm"),
		NewWordOption("%a", Uncommon, "sun", "mon", "tue", "wed", "thu", "fri", "sat"),
		NewWordOption("%A", Uncommon, "sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"),
		NewWordOption("%Z", Uncommon, "utc", "gmt"),
	}
}

// DefaultTimezoneDirective returns the default timezone offset directive
func DefaultTimezoneDirective() string {
	return TimezoneDirective
}
