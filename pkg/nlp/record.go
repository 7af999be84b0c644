package nlp

import (
	"fmt"
	"time"

	"github.com/wassupdoc/alfred-natural-calendar/pkg/terrors"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Record is the structured event produced by a single parse. Date and time
// fields are formatted the way the downstream calendar sink expects them:
// YYYY-MM-DD and zero-padded 24-hour HH:MM:SS.
type Record struct {
	Title      string `json:"title"`
	Calendar   string `json:"calendar"`
	StartDate  string `json:"start_date"`
	StartTime  string `json:"start_time"`
	EndDate    string `json:"end_date"`
	EndTime    string `json:"end_time"`
	Alerts     []int  `json:"alerts"`
	Location   string `json:"location,omitempty"`
	URL        string `json:"url,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Recurrence string `json:"recurrence,omitempty"`
}

func (r *Record) StartAt() (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, r.StartDate+" "+r.StartTime, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: record start: %w", terrors.ErrValue, err)
	}
	return t, nil
}

func (r *Record) EndAt() (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, r.EndDate+" "+r.EndTime, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: record end: %w", terrors.ErrValue, err)
	}
	return t, nil
}
