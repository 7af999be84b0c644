package nlp

import (
	"regexp"
	"strings"
)

// overmatchMarkers inside a location capture mean the pattern ran into an
// adjacent field; such matches are rejected outright.
var overmatchMarkers = []string{"notes:", "url:", "link:", "alert", "remind"}

// extractLocation finds a location via the @ marker form first, then the
// at/in keyword form, normalizes it, and runs it through the verifier.
// Verification can only improve the field or leave it unchanged.
func (p *Parser) extractLocation(text string) string {
	// An @ glued to its neighbours still marks a location.
	text = splitAtRe.ReplaceAllString(text, "$1 @ $2")

	candidate := matchLocation(locationAtRe, text)
	if candidate == "" {
		candidate = matchLocation(locationKeywordRe, text)
	}
	if candidate == "" {
		return ""
	}
	lower := strings.ToLower(candidate)
	for _, marker := range overmatchMarkers {
		if strings.Contains(lower, marker) {
			return ""
		}
	}
	candidate = normalizeLocation(candidate)
	if candidate == "" {
		return ""
	}
	if ok, formatted := p.verifier.Verify(candidate); ok {
		return formatted
	}
	return candidate
}

// matchLocation applies one location pattern and cuts the greedy capture
// at the first time expression or relative-date keyword.
func matchLocation(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	captured := m[1]
	if cut := locBoundaryRe.FindStringIndex(captured); cut != nil {
		captured = captured[:cut[0]]
	}
	return strings.TrimSpace(captured)
}

// normalizeLocation applies the cleanup rules in their fixed order:
// ordinal suffixes are reattached to their digits, a space is inserted
// between a letter and a following digit, whitespace runs collapse, and a
// trailing relative-date keyword is stripped.
func normalizeLocation(s string) string {
	s = ordinalRe.ReplaceAllString(s, "$1$2")
	s = letterDigitRe.ReplaceAllString(s, "$1 $2")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = trailingKeywordRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
