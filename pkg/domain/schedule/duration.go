package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// durationPattern matches content duration strings like "1 week", "3 weeks".
var durationPattern = regexp.MustCompile(`(\d+)\s*week`)

// HoursPerContentWeek converts authored "weeks of content" into an hour
// estimate. One authored week is modeled as 7 person-hours of effort,
// independent of the learner's actual weekly budget.
const HoursPerContentWeek = 7

// ContentDuration is the parsed effort estimate of a topic.
type ContentDuration struct {
	raw   string
	hours int
}

// ParseContentDuration parses a duration string against the grammar
// "<int> week" / "<int> weeks". Strings that do not match default to one
// content week (7 hours); malformed input is a fallback, not an error.
func ParseContentDuration(s string) ContentDuration {
	m := durationPattern.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return ContentDuration{raw: s, hours: HoursPerContentWeek}
	}
	weeks, err := strconv.Atoi(m[1])
	if err != nil {
		return ContentDuration{raw: s, hours: HoursPerContentWeek}
	}
	return ContentDuration{raw: s, hours: weeks * HoursPerContentWeek}
}

// Hours returns the estimated effort in hours.
func (d ContentDuration) Hours() int {
	return d.hours
}

// String returns the original duration string.
func (d ContentDuration) String() string {
	return d.raw
}
