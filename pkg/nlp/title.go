package nlp

import (
	"regexp"
	"strings"
)

// titleRemovePatterns strips every recognized field substring from the
// text. Order matters: the date/time tail patterns run before the @
// marker removal so a location span is all that remains after them.
var titleRemovePatterns = []*regexp.Regexp{
	regexp.MustCompile(`#(?:"[^"]+"|'[^']+'|[^"'\s]+)`),
	regexp.MustCompile(`(?i)\bevery\s+\w+(?:\s+and\s+\w+)*(?:\s+until\s+\S+)?`),
	regexp.MustCompile(`(?i)\b(?:tomorrow|today|next|on|at|from|to|daily|weekly|monthly|yearly|annually|now)\b.*$`),
	regexp.MustCompile(`(?i)\bon\s+(?:` + weekdayPat + `)\b`),
	regexp.MustCompile(`(?i)\b(?:` + weekdayPat + `)\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*(?:` + meridiemPat + `)?\s*(?:-|to)\s*\d{1,2}(?::\d{2})?\s*` + meridiemPat + `\b.*$`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*` + meridiemPat + `\b.*$`),
	regexp.MustCompile(`(?i)\bin\s+\d+\s+(?:min(?:ute)?s?|hours?)\b`),
	regexp.MustCompile(`(?i)\bfor\s+\d+\s+(?:day|hour|minute|min)s?\b.*$`),
	regexp.MustCompile(`(?i)\b(?:alert|remind).*$`),
	regexp.MustCompile(`(?i)\bwith\s+\d+\s*(?:minute|min|hour)s?\s+(?:alert|reminder)\b`),
	regexp.MustCompile(`(?i)\bwith\s+(?:an?\s+|half\s+(?:an?\s+)?)hour\b.*$`),
	regexp.MustCompile(`(?i)https?://\S+`),
	regexp.MustCompile(`(?i)\b(?:notes?|description|details?):.*$`),
	// The in-keyword location span; the at-form is already caught by the
	// connector-word tail pattern above.
	regexp.MustCompile(`(?i)(?:^|\s)in\s+[^,.\d][^,.]*`),
	regexp.MustCompile(`@\s*[^@\s][^@]*`),
}

var trailingConnectorRe = regexp.MustCompile(`(?i)\s*\b(?:for|in|at|and|with)\s*$`)

// cleanTitle removes everything claimed by the extractors and leaves the
// human-readable remainder untouched. Running it on its own output is a
// no-op.
func cleanTitle(text string) string {
	title := text
	for _, re := range titleRemovePatterns {
		title = re.ReplaceAllString(title, "")
	}
	title = whitespaceRe.ReplaceAllString(title, " ")
	for {
		trimmed := trailingConnectorRe.ReplaceAllString(title, "")
		if trimmed == title {
			break
		}
		title = trimmed
	}
	return strings.TrimSpace(title)
}
