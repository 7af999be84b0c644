package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractURLAndNotes(t *testing.T) {
	assert := assert.New(t)

	t.Run("prefixed url", func(t *testing.T) {
		url, notes, remaining := extractURLAndNotes("call tomorrow url: https://zoom.us/j/123")
		assert.Equal("https://zoom.us/j/123", url)
		assert.Empty(notes)
		assert.NotContains(remaining, "url:")
		assert.Contains(remaining, "call tomorrow")
	})

	t.Run("prefix variants", func(t *testing.T) {
		for _, text := range []string{
			"sync link: https://example.com/x",
			"sync meeting link: https://example.com/x",
			"sync zoom: https://example.com/x",
			"sync teams: https://example.com/x",
		} {
			url, _, _ := extractURLAndNotes(text)
			assert.Equal("https://example.com/x", url, text)
		}
	})

	t.Run("trailing punctuation trimmed", func(t *testing.T) {
		url, _, _ := extractURLAndNotes("sync link: https://example.com/x.")
		assert.Equal("https://example.com/x", url)
	})

	t.Run("invalid candidate removed but not kept", func(t *testing.T) {
		url, _, remaining := extractURLAndNotes("sync url: http://[bad")
		assert.Empty(url)
		assert.NotContains(remaining, "url:")
	})

	t.Run("bare meeting platform urls", func(t *testing.T) {
		tests := []struct {
			text string
			want string
		}{
			{"sync https://meet.google.com/abc tomorrow", "https://meet.google.com/abc"},
			{"standup zoom.us/j/9 tomorrow", "zoom.us/j/9"},
			{"review https://teams.microsoft.com/l/meetup tomorrow", "https://teams.microsoft.com/l/meetup"},
		}
		for _, tc := range tests {
			url, _, remaining := extractURLAndNotes(tc.text)
			assert.Equal(tc.want, url, tc.text)
			assert.NotContains(remaining, tc.want, tc.text)
		}
	})

	t.Run("other bare urls are scrubbed, not captured", func(t *testing.T) {
		url, _, remaining := extractURLAndNotes("read https://news.example.org/a tomorrow")
		assert.Empty(url)
		assert.NotContains(remaining, "https://")
		assert.Contains(remaining, "read")
	})

	t.Run("notes run to the end", func(t *testing.T) {
		_, notes, remaining := extractURLAndNotes("meeting tomorrow notes: bring the deck")
		assert.Equal("bring the deck", notes)
		assert.NotContains(remaining, "notes:")
	})

	t.Run("notes stop at the next field marker", func(t *testing.T) {
		_, notes, _ := extractURLAndNotes("meeting notes: agenda details: follow ups")
		assert.Equal("agenda", notes)
	})

	t.Run("url and notes together", func(t *testing.T) {
		url, notes, remaining := extractURLAndNotes("planning url: https://example.com/doc notes: quarterly review")
		assert.Equal("https://example.com/doc", url)
		assert.Equal("quarterly review", notes)
		assert.Contains(remaining, "planning")
	})

	t.Run("description and details prefixes", func(t *testing.T) {
		_, notes, _ := extractURLAndNotes("meeting description: kickoff")
		assert.Equal("kickoff", notes)
		_, notes, _ = extractURLAndNotes("meeting details: room change")
		assert.Equal("room change", notes)
	})
}
