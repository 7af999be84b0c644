package nlp

import (
	"regexp"
	"strings"
)

// The whole catalog is compiled once at package init. Patterns are
// deliberately permissive and case-insensitive because the input is
// informal human text; ambiguity is resolved by the fixed extractor
// ordering in ParseEvent, not by pattern precision.

// weekdayNames keeps full names ahead of the abbreviations so the
// alternation prefers the long form.
var weekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"mon", "tue", "wed", "thu", "fri", "sat", "sun",
}

var weekdayCodes = map[string]string{
	"monday": "MO", "tuesday": "TU", "wednesday": "WE", "thursday": "TH",
	"friday": "FR", "saturday": "SA", "sunday": "SU",
	"mon": "MO", "tue": "TU", "wed": "WE", "thu": "TH",
	"fri": "FR", "sat": "SA", "sun": "SU",
}

// weekdayIndex follows time.Weekday numbering (Sunday = 0).
var weekdayIndex = map[string]int{
	"monday": 1, "tuesday": 2, "wednesday": 3, "thursday": 4,
	"friday": 5, "saturday": 6, "sunday": 0,
	"mon": 1, "tue": 2, "wed": 3, "thu": 4,
	"fri": 5, "sat": 6, "sun": 0,
}

var weekdayPat = strings.Join(weekdayNames, "|")

// meridiemPat accepts a, p, am, pm with optional whitespace before the m.
const meridiemPat = `[ap](?:\s*m)?`

var (
	timeRe         = regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(` + meridiemPat + `)\b`)
	relativeTimeRe = regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(min(?:ute)?s?|hours?)\b`)
	nowRe          = regexp.MustCompile(`(?i)\bnow\b`)

	dateRangeRe = regexp.MustCompile(`(?i)\bfrom\s+([A-Za-z]+\s+\d{1,2}|\d{1,2}/\d{1,2}(?:/\d{2,4})?)\s*(?:-|to)\s*([A-Za-z]+\s+\d{1,2}|\d{1,2}/\d{1,2}(?:/\d{2,4})?)`)

	tomorrowRe     = regexp.MustCompile(`(?i)\btomorrow\b`)
	nextWeekRe     = regexp.MustCompile(`(?i)\bnext\s+week\b`)
	weekdayTokenRe = regexp.MustCompile(`(?i)\b(?:` + weekdayPat + `)\b`)

	calendarTagRe = regexp.MustCompile(`#(?:"([^"]+)"|'([^']+)'|([^"'\s]+))`)

	// Location: the @ marker form captures greedily over the permitted
	// character class; locBoundaryRe afterwards cuts the capture at the
	// first time expression or relative-date keyword, which stands in for
	// the lookahead the original grammar used.
	locationAtRe      = regexp.MustCompile(`@\s*([A-Za-z0-9][A-Za-z0-9\s&.'+\-]*)`)
	locationKeywordRe = regexp.MustCompile(`(?i)(?:^|\s)(?:at|in)\s+([^,.\d][^,.]*)`)
	locBoundaryRe     = regexp.MustCompile(`(?i)\s+(?:(?:at\s+)?\d{1,2}(?::\d{2})?\s*` + meridiemPat + `\b|(?:[01]\d|2[0-3]):[0-5]\d|tomorrow\b|today\b|next\b|every\b)`)
	splitAtRe         = regexp.MustCompile(`([A-Za-z0-9])@([A-Za-z0-9])`)

	ordinalRe         = regexp.MustCompile(`(?i)(\d+)\s*(st|nd|rd|th)\b`)
	letterDigitRe     = regexp.MustCompile(`([A-Za-z])(\d)`)
	whitespaceRe      = regexp.MustCompile(`\s+`)
	trailingKeywordRe = regexp.MustCompile(`(?i)\s+(?:tomorrow|today|next|every)\s*$`)

	timeRangeRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(` + meridiemPat + `)?\s*(?:-|to)\s*(\d{1,2})(?::(\d{2}))?\s*(` + meridiemPat + `)?\b`)
	forDaysRe   = regexp.MustCompile(`(?i)\bfor\s+(\d+)\s+days?\b`)
	forHoursRe  = regexp.MustCompile(`(?i)\bfor\s+(\d+)\s+hours?\b`)
	forMinsRe   = regexp.MustCompile(`(?i)\bfor\s+(\d+)\s+min(?:ute)?s?\b`)

	urlPrefixRe = regexp.MustCompile(`(?i)\b(?:url|link|meet(?:ing)?(?:\s+link)?|zoom|teams):\s*(https?://\S+)`)
	bareURLRe   = regexp.MustCompile(`(?i)\bhttps?://\S+`)
	notesRe     = regexp.MustCompile(`(?i)\b(?:notes?|description|details?):\s*([^|]+)`)
	notesStopRe = regexp.MustCompile(`(?i)\s+(?:url|link|meet(?:ing)?(?:\s+link)?|zoom|teams|notes?|description|details?):`)

	meetingDomainRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b((?:https?://)?(?:[\w-]+\.)*zoom\.us/\S+)`),
		regexp.MustCompile(`(?i)\b((?:https?://)?(?:[\w-]+\.)*teams\.microsoft\.com/\S+)`),
		regexp.MustCompile(`(?i)\b((?:https?://)?(?:[\w-]+\.)*meet\.google\.com/\S+)`),
	}
)

var everyRe = regexp.MustCompile(`(?i)\bevery\b`)
