package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"date time alert tail", "lunch @ Cafe 101 tomorrow at 1pm with 30min alert", "lunch"},
		{"recurrence and time", "standup every day at 9am", "standup"},
		{"weekday conjunction", "class every monday and wednesday at 10am", "class"},
		{"calendar tag", "team sync #personal at 3pm", "team sync"},
		{"quoted calendar tag", `planning #"side projects" at 3pm`, "planning"},
		{"time range", "review 2-3pm", "review"},
		{"keeps interior words", "call with Sam at 5pm", "call with Sam"},
		{"bare weekday", "dentist wednesday at 3pm", "dentist"},
		{"in keyword location", "dinner in Manhattan tomorrow at 7pm", "dinner"},
		{"in keyword location alone", "drinks in Manhattan", "drinks"},
		{"on weekday", "lunch on friday", "lunch"},
		{"date range", "conference from 8/20 to 8/22", "conference"},
		{"relative offset", "check oven in 20 minutes", "check oven"},
		{"for duration tail", "hackathon for 3 days", "hackathon"},
		{"notes tail", "meeting notes: bring the deck", "meeting"},
		{"bare url", "sync https://meet.google.com/abc tomorrow", "sync"},
		{"nothing left", "tomorrow at 2pm", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := cleanTitle(tc.text)
			assert.Equal(tc.want, got, tc.text)
			// Cleaning is idempotent.
			assert.Equal(got, cleanTitle(got), tc.text)
		})
	}
}
