// Package ics renders a parsed record as an iCalendar file, the portable
// alternative to the AppleScript sink.
package ics

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/wassupdoc/alfred-natural-calendar/pkg/nlp"
	"github.com/wassupdoc/alfred-natural-calendar/pkg/terrors"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

const prodID = "-//alfred-natural-calendar//EN"

// Write serializes the record as a single-VEVENT calendar. Each alert
// offset becomes a display VALARM with a negative minute trigger.
func Write(w io.Writer, rec *nlp.Record) error {
	start, err := rec.StartAt()
	if err != nil {
		return err
	}
	end, err := rec.EndAt()
	if err != nil {
		return err
	}

	cal := ical.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetMethod(ical.MethodPublish)

	ev := cal.AddEvent(uuid.NewString())
	ev.SetDtStampTime(time.Now())
	ev.SetStartAt(start)
	ev.SetEndAt(end)
	ev.SetSummary(rec.Title)
	if rec.Location != "" {
		ev.SetLocation(rec.Location)
	}
	if rec.Notes != "" {
		ev.SetDescription(rec.Notes)
	}
	if rec.URL != "" {
		ev.SetURL(rec.URL)
	}
	if rec.Recurrence != "" {
		ev.AddRrule(rec.Recurrence)
	}
	for _, minutes := range rec.Alerts {
		alarm := ev.AddAlarm()
		alarm.SetAction(ical.ActionDisplay)
		alarm.SetTrigger(fmt.Sprintf("-PT%dM", minutes))
		alarm.SetProperty(ical.ComponentPropertyDescription, rec.Title)
	}

	_, err = io.WriteString(w, cal.Serialize())
	return err
}

// WriteFile writes the record to path with Write.
func WriteFile(path string, rec *nlp.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Write(f, rec); err != nil {
		return err
	}
	return f.Close()
}

// NextOccurrences expands a recurring record's rule into its next n start
// instants after the event start. A record without a recurrence rule
// yields just its own start.
func NextOccurrences(rec *nlp.Record, n int) ([]time.Time, error) {
	start, err := rec.StartAt()
	if err != nil {
		return nil, err
	}
	if rec.Recurrence == "" {
		return []time.Time{start}, nil
	}
	r, err := rrule.StrToRRule(rec.Recurrence)
	if err != nil {
		return nil, fmt.Errorf("%w: recurrence rule '%s': %w", terrors.ErrParse, rec.Recurrence, err)
	}
	r.DTStart(start)

	var out []time.Time
	it := r.Iterator()
	for len(out) < n {
		t, ok := it()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out, nil
}
