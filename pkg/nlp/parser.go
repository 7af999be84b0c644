package nlp

import (
	"strings"
	"time"

	"github.com/wassupdoc/alfred-natural-calendar/pkg/terrors"

	"golang.org/x/text/unicode/norm"
)

const defaultDurationMin = 60

// Verifier resolves a free-text location candidate against an external
// lookup (Contacts, Maps). On a hit it returns true and a richer formatted
// string; on a miss or lookup failure it returns false and the candidate
// unchanged. Verification never fails a parse.
type Verifier interface {
	Verify(candidate string) (bool, string)
}

// NoopVerifier leaves every candidate unverified.
type NoopVerifier struct{}

func (NoopVerifier) Verify(candidate string) (bool, string) { return false, candidate }

// Config is the read-only context a Parser is constructed with.
type Config struct {
	// Calendars is the set of known calendar names; membership checks are
	// case-insensitive but resolution returns the stored casing.
	Calendars []string
	// DefaultCalendar is used when no #tag resolves to a known calendar.
	DefaultCalendar string
	// FallbackCalendar is the literal of last resort; "Calendar" if empty.
	FallbackCalendar string
	// Verifier post-processes extracted locations; NoopVerifier if nil.
	Verifier Verifier
	// Now supplies the current instant; time.Now if nil.
	Now func() time.Time
}

// Parser turns one free-form event description into a Record. It holds no
// mutable state; a single Parser may serve concurrent ParseEvent calls.
type Parser struct {
	calendars []string
	defCal    string
	fallback  string
	verifier  Verifier
	now       func() time.Time
}

func New(cfg Config) *Parser {
	p := &Parser{
		calendars: cfg.Calendars,
		defCal:    cfg.DefaultCalendar,
		fallback:  cfg.FallbackCalendar,
		verifier:  cfg.Verifier,
		now:       cfg.Now,
	}
	if p.fallback == "" {
		p.fallback = "Calendar"
	}
	if p.verifier == nil {
		p.verifier = NoopVerifier{}
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p
}

// ParseEvent is the sole entry point: one input line in, one Record out.
// Expected ambiguity is resolved by the per-extractor fallback rules; only
// genuinely uninterpretable components (an impossible clock value, say)
// surface as an error.
func (p *Parser) ParseEvent(text string) (*Record, error) {
	if strings.TrimSpace(text) == "" {
		return nil, terrors.ErrEmptyText
	}
	text = norm.NFC.String(text)
	now := p.now()

	url, notes, working := extractURLAndNotes(text)
	calendar := p.resolveCalendar(working)

	var start, end time.Time
	if s, e, ok := extractDateRange(working, now); ok {
		start, end = s, e
	} else {
		base := extractBaseDate(working, now)
		s, err := extractTime(working, base, now)
		if err != nil {
			return nil, err
		}
		start = s
		end = start.Add(time.Duration(extractDuration(working)) * time.Minute)
	}

	rec := &Record{
		Calendar:   calendar,
		StartDate:  start.Format(dateLayout),
		StartTime:  start.Format(timeLayout),
		EndDate:    end.Format(dateLayout),
		EndTime:    end.Format(timeLayout),
		Alerts:     extractAlerts(working),
		Location:   p.extractLocation(working),
		URL:        url,
		Notes:      notes,
		Recurrence: extractRecurrence(working, now),
	}
	rec.Title = cleanTitle(working)
	if rec.Title == "" {
		rec.Title = strings.TrimSpace(text)
	}
	return rec, nil
}

// resolveCalendar implements the tag > default > fallback precedence. An
// unknown #tag is ignored, never an error.
func (p *Parser) resolveCalendar(text string) string {
	if m := calendarTagRe.FindStringSubmatch(text); m != nil {
		var requested string
		for _, g := range m[1:] {
			if g != "" {
				requested = g
				break
			}
		}
		if name, ok := p.knownCalendar(requested); ok {
			return name
		}
	}
	if name, ok := p.knownCalendar(p.defCal); ok {
		return name
	}
	return p.fallback
}

// knownCalendar matches case-insensitively and returns the stored casing.
func (p *Parser) knownCalendar(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, cal := range p.calendars {
		if strings.EqualFold(cal, name) {
			return cal, true
		}
	}
	return "", false
}
