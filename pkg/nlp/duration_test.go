package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDuration(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name string
		text string
		want int
	}{
		{"range inherits end meridiem", "meeting 2-3pm", 60},
		{"range with minutes", "training 9:30am-11:30am", 120},
		{"short meridiem form", "class 1p-2:30p", 90},
		{"range across midnight", "shift 11pm-1am", 120},
		{"range across midnight with minutes", "event 11:30pm-12:30am", 60},
		{"spaces around the dash", "meeting 2pm - 4pm", 120},
		{"to separator", "sync 9am to 10:30am", 90},
		{"no meridiem at all reads literally", "block 14 to 15", 60},
		{"zero span falls back", "meeting 2pm-2pm", 60},
		{"for days", "hackathon for 3 days", 3 * 24 * 60},
		{"for hours", "workshop for 2 hours", 120},
		{"for minutes", "standup for 45 minutes", 45},
		{"for min", "standup for 90 min", 90},
		{"default", "meeting tomorrow at 2pm", 60},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(tc.want, extractDuration(tc.text), tc.text)
		})
	}
}
