package nlp

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

type alertUnit int

const (
	alertMinutes alertUnit = iota
	alertHours
	alertNaturalHour
	alertNaturalHalf
)

// alertPatterns covers the three surface orders (N unit alert, alert N
// unit before, with N unit alert) plus the natural-language hour phrases.
// The half-hour phrase must precede the bare-hour one: extractAlerts
// consumes matched spans, and "half an hour" contains "an hour".
var alertPatterns = []struct {
	re   *regexp.Regexp
	unit alertUnit
}{
	{regexp.MustCompile(`(?i)(\d+)\s*min(?:ute)?s?\s*(?:alert|reminder)`), alertMinutes},
	{regexp.MustCompile(`(?i)(\d+)\s*hours?\s*(?:alert|reminder)`), alertHours},
	{regexp.MustCompile(`(?i)(?:alert|remind)\s+(\d+)\s*min(?:ute)?s?\s*before`), alertMinutes},
	{regexp.MustCompile(`(?i)(?:alert|remind)\s+(\d+)\s*hours?\s*before`), alertHours},
	{regexp.MustCompile(`(?i)with\s+(\d+)\s*min(?:ute)?s?\s*(?:alert|reminder)`), alertMinutes},
	{regexp.MustCompile(`(?i)with\s+(\d+)\s*hours?\s*(?:alert|reminder)`), alertHours},
	{regexp.MustCompile(`(?i)(?:with\s+)?half\s*(?:an?\s*)?hour\s*(?:alert|reminder|before)`), alertNaturalHalf},
	{regexp.MustCompile(`(?i)(?:with\s+)?an?\s+hour\s*(?:alert|reminder|before)`), alertNaturalHour},
}

// extractAlerts collects every alert cue into a set of minute offsets, so
// duplicate phrasings collapse, and returns them ascending. Each pattern's
// matched spans are removed from the text before the next pattern runs, so
// no substring feeds two cues. Absent any cue the result is exactly [15].
func extractAlerts(text string) []int {
	seen := make(map[int]bool)
	for _, p := range alertPatterns {
		matches := p.re.FindAllStringSubmatchIndex(text, -1)
		if matches == nil {
			continue
		}
		for _, m := range matches {
			switch p.unit {
			case alertNaturalHour:
				seen[60] = true
			case alertNaturalHalf:
				seen[30] = true
			default:
				val, err := strconv.Atoi(text[m[2]:m[3]])
				if err != nil {
					continue
				}
				if p.unit == alertHours {
					val *= 60
				}
				seen[val] = true
			}
		}
		var b strings.Builder
		last := 0
		for _, m := range matches {
			b.WriteString(text[last:m[0]])
			b.WriteString(" ")
			last = m[1]
		}
		b.WriteString(text[last:])
		text = b.String()
	}
	if len(seen) == 0 {
		return []int{15}
	}
	alerts := make([]int, 0, len(seen))
	for v := range seen {
		alerts = append(alerts, v)
	}
	sort.Ints(alerts)
	return alerts
}
