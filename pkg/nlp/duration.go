package nlp

import "strconv"

// extractDuration returns the event length in minutes. A time-range
// expression wins; a missing meridiem on one side inherits the other
// side's. A negative span wraps across midnight (+24h); a span that is
// still non-positive falls back to the default. Explicit "for N
// days/hours/minutes" phrases are checked next, longest unit first.
func extractDuration(text string) int {
	if m := timeRangeRe.FindStringSubmatch(text); m != nil {
		startHour, _ := strconv.Atoi(m[1])
		endHour, _ := strconv.Atoi(m[4])
		var startMin, endMin int
		if m[2] != "" {
			startMin, _ = strconv.Atoi(m[2])
		}
		if m[5] != "" {
			endMin, _ = strconv.Atoi(m[5])
		}
		startMeridiem, endMeridiem := m[3], m[6]
		if startMeridiem == "" {
			startMeridiem = endMeridiem
		}
		if endMeridiem == "" {
			endMeridiem = startMeridiem
		}
		startTotal := applyMeridiem(startHour, startMeridiem)*60 + startMin
		endTotal := applyMeridiem(endHour, endMeridiem)*60 + endMin
		if endTotal < startTotal {
			endTotal += 24 * 60
		}
		if d := endTotal - startTotal; d > 0 {
			return d
		}
		return defaultDurationMin
	}
	if m := forDaysRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n * 24 * 60
		}
	}
	if m := forHoursRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n * 60
		}
	}
	if m := forMinsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return defaultDurationMin
}
