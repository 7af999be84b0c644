package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRecurrence(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"daily", "standup every day at 9am", "FREQ=DAILY"},
		{"weekly", "report every week", "FREQ=WEEKLY"},
		{"monthly", "rent every month", "FREQ=MONTHLY"},
		{"yearly", "checkup every year", "FREQ=YEARLY"},
		{"single weekday", "gym every monday", "FREQ=WEEKLY;BYDAY=MO"},
		{"weekday abbreviation", "gym every sat", "FREQ=WEEKLY;BYDAY=SA"},
		{"two weekdays", "class every monday and wednesday", "FREQ=WEEKLY;BYDAY=MO,WE"},
		{"three weekdays", "gym every tuesday and thursday and friday", "FREQ=WEEKLY;BYDAY=TU,TH,FR"},
		{"until this year", "standup every monday until 12/31", "FREQ=WEEKLY;BYDAY=MO;UNTIL=20241231T235959Z"},
		{"until already past", "yoga every friday until 3/1", "FREQ=WEEKLY;BYDAY=FR;UNTIL=20250301T235959Z"},
		{"until explicit year", "sync every tuesday until 6/30/25", "FREQ=WEEKLY;BYDAY=TU;UNTIL=20250630T235959Z"},
		{"gated on the word every", "standup daily at 9am", ""},
		{"no cue", "meeting tomorrow at 2pm", ""},
		{"every alone emits nothing", "check every item", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(tc.want, extractRecurrence(tc.text, testNow), tc.text)
		})
	}
}
