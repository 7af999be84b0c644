package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// recurrenceRule is a tagged variant: either a literal rule string or a
// function computed from the match. Dispatch walks the ordered slice and
// the first matching pattern wins, so precedence lives in the list order,
// not in the patterns themselves.
type recurrenceRule struct {
	re      *regexp.Regexp
	literal string
	compute func(match []string, now time.Time) string
}

var recurrenceRules = []recurrenceRule{
	// Weekday conjunctions must outrank the single-weekday form.
	{
		re: regexp.MustCompile(`(?i)\bevery\s+(?:` + weekdayPat + `)(?:\s+and\s+(?:` + weekdayPat + `))+\b`),
		compute: func(match []string, _ time.Time) string {
			var codes []string
			for _, day := range weekdayTokenRe.FindAllString(match[0], -1) {
				codes = append(codes, weekdayCodes[strings.ToLower(day)])
			}
			return "FREQ=WEEKLY;BYDAY=" + strings.Join(codes, ",")
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bevery\s+(` + weekdayPat + `)\s+until\s+(\d{1,2}/\d{1,2}(?:/\d{2,4})?)\b`),
		compute: func(match []string, now time.Time) string {
			until := parseUntilDate(match[2], now)
			if until == "" {
				return ""
			}
			return fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s;UNTIL=%s", weekdayCodes[strings.ToLower(match[1])], until)
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bevery\s+(` + weekdayPat + `)\b`),
		compute: func(match []string, _ time.Time) string {
			return "FREQ=WEEKLY;BYDAY=" + weekdayCodes[strings.ToLower(match[1])]
		},
	},
	{re: regexp.MustCompile(`(?i)\bevery\s+week(?:ly)?\b`), literal: "FREQ=WEEKLY"},
	{re: regexp.MustCompile(`(?i)\bevery\s+day\b|\bdaily\b`), literal: "FREQ=DAILY"},
	{re: regexp.MustCompile(`(?i)\bevery\s+month\b|\bmonthly\b`), literal: "FREQ=MONTHLY"},
	{re: regexp.MustCompile(`(?i)\bevery\s+year\b|\byearly\b|\bannually\b`), literal: "FREQ=YEARLY"},
}

// extractRecurrence synthesizes an RRULE-style string from recurrence
// cues, or "" when none are present. The literal word "every" gates the
// catalog scan entirely.
func extractRecurrence(text string, now time.Time) string {
	if !everyRe.MatchString(text) {
		return ""
	}
	for _, rule := range recurrenceRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		out := rule.literal
		if rule.compute != nil {
			out = rule.compute(m, now)
		}
		if out == "" {
			return ""
		}
		// Every emitted rule must round-trip through rrule.
		if _, err := rrule.StrToRRule(out); err != nil {
			return ""
		}
		return out
	}
	return ""
}

// parseUntilDate renders an m/d[/yy[yy]] date as the 23:59:59Z UNTIL
// stamp. Without an explicit year the date is assumed this year, or next
// year if it has already passed.
func parseUntilDate(s string, now time.Time) string {
	parts := strings.Split(s, "/")
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return ""
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return ""
	}
	var year int
	if len(parts) == 3 {
		year, err = strconv.Atoi(parts[2])
		if err != nil {
			return ""
		}
		if year < 100 {
			year += 2000
		}
	} else {
		year = now.Year()
		target := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
		if target.Before(now) {
			year++
		}
	}
	return fmt.Sprintf("%d%02d%02dT235959Z", year, month, day)
}
