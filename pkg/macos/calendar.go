// Package macos wraps the AppleScript collaborators: calendar enumeration,
// event creation and location verification. Every function here is a thin
// osascript exec; the parsing core never depends on this package.
package macos

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/wassupdoc/alfred-natural-calendar/pkg/nlp"
	"github.com/wassupdoc/alfred-natural-calendar/pkg/terrors"
)

const listCalendarsScript = `
tell application "Calendar"
	set calList to {}
	repeat with calItem in calendars
		try
			if writable of calItem then
				copy (name of calItem as string) to the end of calList
			end if
		end try
	end repeat
	return calList
end tell
`

func runOsascript(ctx context.Context, script string) (string, error) {
	out, err := exec.CommandContext(ctx, "osascript", "-e", script).Output()
	if err != nil {
		return "", fmt.Errorf("%w: osascript: %w", terrors.ErrLookup, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ListCalendars returns the names of the writable calendars. The order is
// whatever Calendar.app reports; callers sort for display.
func ListCalendars(ctx context.Context) ([]string, error) {
	out, err := runOsascript(ctx, listCalendarsScript)
	if err != nil {
		return nil, err
	}
	var calendars []string
	for _, name := range strings.Split(out, ",") {
		if name = strings.TrimSpace(name); name != "" {
			calendars = append(calendars, name)
		}
	}
	if len(calendars) == 0 {
		return nil, fmt.Errorf("%w: no writable calendars", terrors.ErrNotFound)
	}
	return calendars, nil
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func dateSetup(varName string, y, mo, d, h, mi int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "set %s to current date\n", varName)
	fmt.Fprintf(&b, "set year of %s to %d\n", varName, y)
	fmt.Fprintf(&b, "set month of %s to %d\n", varName, mo)
	fmt.Fprintf(&b, "set day of %s to %d\n", varName, d)
	fmt.Fprintf(&b, "set hours of %s to %d\n", varName, h)
	fmt.Fprintf(&b, "set minutes of %s to %d\n", varName, mi)
	fmt.Fprintf(&b, "set seconds of %s to 0\n", varName)
	return b.String()
}

// CreateEvent creates the record in Calendar.app, including its optional
// fields, recurrence rule and one display alarm per alert offset.
func CreateEvent(ctx context.Context, rec *nlp.Record) error {
	start, err := rec.StartAt()
	if err != nil {
		return err
	}
	end, err := rec.EndAt()
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("tell application \"Calendar\"\n")
	fmt.Fprintf(&b, "tell calendar \"%s\"\n", escape(rec.Calendar))
	b.WriteString(dateSetup("eventStartDate", start.Year(), int(start.Month()), start.Day(), start.Hour(), start.Minute()))
	b.WriteString(dateSetup("eventEndDate", end.Year(), int(end.Month()), end.Day(), end.Hour(), end.Minute()))
	fmt.Fprintf(&b, "make new event with properties {summary:\"%s\", start date:eventStartDate, end date:eventEndDate}\n", escape(rec.Title))
	b.WriteString("set newEvent to result\n")
	if rec.Location != "" {
		fmt.Fprintf(&b, "set location of newEvent to \"%s\"\n", escape(rec.Location))
	}
	if rec.URL != "" {
		fmt.Fprintf(&b, "set url of newEvent to \"%s\"\n", escape(rec.URL))
	}
	if rec.Notes != "" {
		fmt.Fprintf(&b, "set description of newEvent to \"%s\"\n", escape(rec.Notes))
	}
	if rec.Recurrence != "" {
		fmt.Fprintf(&b, "set recurrence of newEvent to \"%s\"\n", escape(rec.Recurrence))
	}
	for _, minutes := range rec.Alerts {
		alertAt := start.Add(-time.Duration(minutes) * time.Minute)
		b.WriteString(dateSetup("alertDate", alertAt.Year(), int(alertAt.Month()), alertAt.Day(), alertAt.Hour(), alertAt.Minute()))
		b.WriteString("make new display alarm at newEvent with properties {trigger date:alertDate}\n")
	}
	b.WriteString("return newEvent\n")
	b.WriteString("end tell\n")
	b.WriteString("end tell\n")

	_, err = runOsascript(ctx, b.String())
	return err
}
