package nlp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wassupdoc/alfred-natural-calendar/pkg/terrors"
)

// extractBaseDate resolves relative-date cues into a calendar date carrying
// now's wall-clock time. Priority: "tomorrow", then "next week", then the
// first weekday mention (always a future occurrence, never same-day), then
// today. Only the first cue in that order is honored.
func extractBaseDate(text string, now time.Time) time.Time {
	if tomorrowRe.MatchString(text) {
		return now.AddDate(0, 0, 1)
	}
	if nextWeekRe.MatchString(text) {
		return now.AddDate(0, 0, 7)
	}
	if day := weekdayTokenRe.FindString(text); day != "" {
		target := weekdayIndex[strings.ToLower(day)]
		ahead := (target - int(now.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		return now.AddDate(0, 0, ahead)
	}
	return now
}

// extractTime combines the base date with a parsed time-of-day. "now" and
// "in N minutes/hours" short-circuit to offsets from the current instant.
// A time pattern without a meridiem never matches; the base date at its
// current wall-clock time is returned unchanged in that case.
func extractTime(text string, base, now time.Time) (time.Time, error) {
	if nowRe.MatchString(text) {
		return now.Truncate(time.Minute), nil
	}
	if m := relativeTimeRe.FindStringSubmatch(text); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: relative time: %w", terrors.ErrParse, err)
		}
		unit := time.Minute
		if strings.HasPrefix(strings.ToLower(m[2]), "hour") {
			unit = time.Hour
		}
		return now.Truncate(time.Minute).Add(time.Duration(amount) * unit), nil
	}
	if m := timeRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		var minute int
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		hour = applyMeridiem(hour, m[3])
		if hour > 23 || minute > 59 {
			return time.Time{}, fmt.Errorf("%w: impossible time of day '%s'", terrors.ErrValue, strings.TrimSpace(m[0]))
		}
		return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location()), nil
	}
	return base.Truncate(time.Minute), nil
}

// applyMeridiem converts a 12-hour clock value to 24-hour form. An empty
// meridiem leaves the hour untouched.
func applyMeridiem(hour int, meridiem string) int {
	m := strings.ToLower(whitespaceRe.ReplaceAllString(meridiem, ""))
	switch {
	case strings.HasPrefix(m, "p") && hour != 12:
		return hour + 12
	case strings.HasPrefix(m, "a") && hour == 12:
		return 0
	}
	return hour
}

// extractDateRange handles "from <date> to <date>" expressions. Both sides
// resolve against the current year, advanced a year when already past; an
// end before the start is pushed forward (a year within the same month, a
// month and then possibly a year across months) until the range is valid.
// Malformed dates are treated as "no range found", never an error.
func extractDateRange(text string, now time.Time) (start, end time.Time, ok bool) {
	m := dateRangeRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, time.Time{}, false
	}
	start, err := parseFlexibleDate(m[1], now)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = parseFlexibleDate(m[2], now)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		if start.Month() == end.Month() {
			end = end.AddDate(1, 0, 0)
		} else {
			end = end.AddDate(0, 1, 0)
			if end.Before(start) {
				end = end.AddDate(1, 0, 0)
			}
		}
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, true
}

// parseFlexibleDate accepts "m/d", "m/d/yy", "m/d/yyyy" and "<month name>
// <day>" forms. The produced datetime carries now's wall-clock time with
// zero seconds.
func parseFlexibleDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	var year, month, day int
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 2 && len(parts) != 3 {
			return time.Time{}, fmt.Errorf("%w: date '%s'", terrors.ErrParse, s)
		}
		var err error
		month, err = strconv.Atoi(parts[0])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: month '%s'", terrors.ErrParse, parts[0])
		}
		day, err = strconv.Atoi(parts[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: day '%s'", terrors.ErrParse, parts[1])
		}
		if len(parts) == 3 {
			year, err = strconv.Atoi(parts[2])
			if err != nil {
				return time.Time{}, fmt.Errorf("%w: year '%s'", terrors.ErrParse, parts[2])
			}
			if year < 100 {
				year += 2000
			}
		}
	} else {
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return time.Time{}, fmt.Errorf("%w: date '%s'", terrors.ErrParse, s)
		}
		m, err := parseMonthName(fields[0])
		if err != nil {
			return time.Time{}, err
		}
		month = int(m)
		day, err = strconv.Atoi(fields[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: day '%s'", terrors.ErrParse, fields[1])
		}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: date '%s' out of range", terrors.ErrValue, s)
	}
	explicitYear := year != 0
	if year == 0 {
		year = now.Year()
	}
	t := time.Date(year, time.Month(month), day, now.Hour(), now.Minute(), 0, 0, now.Location())
	if t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: invalid calendar date '%s'", terrors.ErrValue, s)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if !explicitYear && date.Before(today) {
		t = t.AddDate(1, 0, 0)
	}
	return t, nil
}

func parseMonthName(name string) (time.Month, error) {
	for _, layout := range []string{"January", "Jan"} {
		if t, err := time.Parse(layout, name); err == nil {
			return t.Month(), nil
		}
	}
	return 0, fmt.Errorf("%w: month '%s'", terrors.ErrParse, name)
}
