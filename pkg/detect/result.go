/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: result.go
Description: Detection result for the DateSense format detector. Wraps the
processed candidate model and exposes the assembled format string plus the
short and long score dumps.
*/

package detect

import "github.com/kleascm/datesense/pkg/model"

// Result is the outcome of one detection session
type Result struct {
	// ID uniquely identifies the detection session in logs and reports
	ID string

	model *model.Model
}

// FormatString renders the detected format. With escapePercent set, literal
// '%' characters are doubled to '%%'. With blankIfUnrecognized set, an
// empty string is returned when no directive was detected or some position
// ended up with no candidates at all.
func (r *Result) FormatString(escapePercent, blankIfUnrecognized bool) string {
	return r.model.FormatString(escapePercent, blankIfUnrecognized)
}

// String renders the detected format with the default flags
func (r *Result) String() string {
	return r.FormatString(true, true)
}

// ShortDebugString returns the tied best-scoring candidates per position,
// one position per posDelim-separated line
func (r *Result) ShortDebugString(tokDelim, posDelim string) string {
	return r.model.ShortDebugString(tokDelim, posDelim)
}

// LongDebugString returns all candidates per position sorted by descending
// score, one position per posDelim-separated line
func (r *Result) LongDebugString(tokDelim, posDelim string) string {
	return r.model.LongDebugString(tokDelim, posDelim)
}

// Model returns the underlying candidate model for callers that want to
// inspect or post-process scores directly
func (r *Result) Model() *model.Model {
	return r.model
}
