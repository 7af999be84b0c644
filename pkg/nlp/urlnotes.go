package nlp

import (
	"net/url"
	"strings"
)

// extractURLAndNotes pulls the URL and notes fields out of the text and
// returns the remaining working text with their spans removed. It runs
// before every other extractor because URLs carry slashes and colons that
// would otherwise be misread as times or locations. An invalid URL
// candidate is discarded silently; the field is simply absent.
func extractURLAndNotes(text string) (urlStr, notes, remaining string) {
	remaining = text

	if loc := urlPrefixRe.FindStringSubmatchIndex(remaining); loc != nil {
		candidate := strings.TrimRight(remaining[loc[2]:loc[3]], ".,;")
		if isAbsoluteURL(candidate) {
			urlStr = candidate
		}
		// The span leaves the working text either way; an unusable
		// candidate must not bleed into the location or notes fields.
		remaining = remaining[:loc[0]] + remaining[loc[1]:]
	}
	if urlStr == "" {
		for _, re := range meetingDomainRes {
			if loc := re.FindStringSubmatchIndex(remaining); loc != nil {
				urlStr = strings.TrimRight(remaining[loc[2]:loc[3]], ".,;")
				remaining = remaining[:loc[0]] + remaining[loc[1]:]
				break
			}
		}
	}

	if loc := notesRe.FindStringSubmatchIndex(remaining); loc != nil {
		captured := remaining[loc[2]:loc[3]]
		end := loc[1]
		if stop := notesStopRe.FindStringIndex(captured); stop != nil {
			captured = captured[:stop[0]]
			end = loc[2] + stop[0]
		}
		notes = strings.TrimSpace(captured)
		remaining = remaining[:loc[0]] + remaining[end:]
	}

	// Any leftover bare URL would still confuse the time and location
	// patterns downstream.
	remaining = bareURLRe.ReplaceAllString(remaining, "")
	return urlStr, notes, remaining
}

// isAbsoluteURL requires both a scheme and a host.
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
