package nlp

import (
	"fmt"
	"testing"
	"time"

	"github.com/wassupdoc/alfred-natural-calendar/pkg/terrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMeridiem(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		hour     int
		meridiem string
		want     int
	}{
		{3, "pm", 15},
		{3, "p", 15},
		{3, "p m", 15},
		{12, "pm", 12},
		{12, "am", 0},
		{12, "a", 0},
		{9, "am", 9},
		{9, "AM", 9},
		{11, "PM", 23},
		{7, "", 7},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d %q", tc.hour, tc.meridiem), func(t *testing.T) {
			assert.Equal(tc.want, applyMeridiem(tc.hour, tc.meridiem))
		})
	}
}

func TestExtractBaseDate(t *testing.T) {
	assert := assert.New(t)

	t.Run("tomorrow", func(t *testing.T) {
		got := extractBaseDate("lunch tomorrow", testNow)
		assert.Equal(testNow.AddDate(0, 0, 1), got)
	})
	t.Run("next week", func(t *testing.T) {
		got := extractBaseDate("review next week", testNow)
		assert.Equal(testNow.AddDate(0, 0, 7), got)
	})
	t.Run("upcoming weekday", func(t *testing.T) {
		// testNow is a Wednesday; friday is two days out.
		got := extractBaseDate("meeting friday", testNow)
		assert.Equal(testNow.AddDate(0, 0, 2), got)
	})
	t.Run("weekday abbreviation", func(t *testing.T) {
		got := extractBaseDate("meeting fri", testNow)
		assert.Equal(testNow.AddDate(0, 0, 2), got)
	})
	t.Run("same weekday means next week", func(t *testing.T) {
		got := extractBaseDate("meeting wednesday", testNow)
		assert.Equal(testNow.AddDate(0, 0, 7), got)
	})
	t.Run("tomorrow outranks a weekday", func(t *testing.T) {
		got := extractBaseDate("meeting tomorrow or friday", testNow)
		assert.Equal(testNow.AddDate(0, 0, 1), got)
	})
	t.Run("no cue means today", func(t *testing.T) {
		got := extractBaseDate("quick sync", testNow)
		assert.Equal(testNow, got)
	})
}

func TestExtractTime(t *testing.T) {
	assert := assert.New(t)
	base := testNow

	t.Run("explicit meridiem times", func(t *testing.T) {
		tests := []struct {
			text       string
			hour, min  int
		}{
			{"meeting at 2pm", 14, 0},
			{"meeting at 2:45pm", 14, 45},
			{"meeting 11:45a", 11, 45},
			{"meeting at 12pm", 12, 0},
			{"meeting at 12am", 0, 0},
			{"meeting at 9 am", 9, 0},
			{"meeting at 3 p", 15, 0},
		}
		for _, tc := range tests {
			got, err := extractTime(tc.text, base, testNow)
			require.Nil(t, err, tc.text)
			assert.Equal(tc.hour, got.Hour(), tc.text)
			assert.Equal(tc.min, got.Minute(), tc.text)
			assert.Equal(0, got.Second(), tc.text)
		}
	})

	t.Run("now truncates to the minute", func(t *testing.T) {
		got, err := extractTime("call now", base, testNow)
		require.Nil(t, err)
		assert.Equal(testNow.Truncate(time.Minute), got)
	})

	t.Run("relative offsets", func(t *testing.T) {
		got, err := extractTime("call in 30 minutes", base, testNow)
		require.Nil(t, err)
		assert.Equal(testNow.Truncate(time.Minute).Add(30*time.Minute), got)

		got, err = extractTime("call in 2 hours", base, testNow)
		require.Nil(t, err)
		assert.Equal(testNow.Truncate(time.Minute).Add(2*time.Hour), got)
	})

	t.Run("no meridiem falls back to the base", func(t *testing.T) {
		got, err := extractTime("meeting at 14", base, testNow)
		require.Nil(t, err)
		assert.Equal(base.Truncate(time.Minute), got)
	})

	t.Run("impossible values error", func(t *testing.T) {
		_, err := extractTime("meeting at 13pm", base, testNow)
		assert.ErrorIs(err, terrors.ErrValue)

		_, err = extractTime("meeting at 2:75pm", base, testNow)
		assert.ErrorIs(err, terrors.ErrValue)
	})

	t.Run("now is not matched inside words", func(t *testing.T) {
		got, err := extractTime("knowledge share at 4pm", base, testNow)
		require.Nil(t, err)
		assert.Equal(16, got.Hour())
	})
}

func TestExtractDateRange(t *testing.T) {
	assert := assert.New(t)

	t.Run("numeric dates", func(t *testing.T) {
		start, end, ok := extractDateRange("conference from 8/20 to 8/22", testNow)
		require.True(t, ok)
		assert.Equal("2024-08-20", start.Format(dateLayout))
		assert.Equal("2024-08-22", end.Format(dateLayout))
	})

	t.Run("month names", func(t *testing.T) {
		start, end, ok := extractDateRange("offsite from July 20 to July 25", testNow)
		require.True(t, ok)
		assert.Equal("2024-07-20", start.Format(dateLayout))
		assert.Equal("2024-07-25", end.Format(dateLayout))
	})

	t.Run("dash separator", func(t *testing.T) {
		start, end, ok := extractDateRange("trip from 9/1-9/5", testNow)
		require.True(t, ok)
		assert.Equal("2024-09-01", start.Format(dateLayout))
		assert.Equal("2024-09-05", end.Format(dateLayout))
	})

	t.Run("past dates advance a year", func(t *testing.T) {
		start, end, ok := extractDateRange("retreat from 3/10 to 3/12", testNow)
		require.True(t, ok)
		assert.Equal("2025-03-10", start.Format(dateLayout))
		assert.Equal("2025-03-12", end.Format(dateLayout))
	})

	t.Run("range across new year", func(t *testing.T) {
		start, end, ok := extractDateRange("break from 12/30 to 1/2", testNow)
		require.True(t, ok)
		assert.Equal("2024-12-30", start.Format(dateLayout))
		assert.Equal("2025-01-02", end.Format(dateLayout))
	})

	t.Run("no range", func(t *testing.T) {
		_, _, ok := extractDateRange("meeting tomorrow at 2pm", testNow)
		assert.False(ok)
	})

	t.Run("malformed date is not a range", func(t *testing.T) {
		_, _, ok := extractDateRange("from 2/30 to 3/2", testNow)
		assert.False(ok)
	})
}

func TestParseFlexibleDate(t *testing.T) {
	assert := assert.New(t)

	t.Run("forms", func(t *testing.T) {
		tests := []struct {
			in   string
			want string
		}{
			{"8/20", "2024-08-20"},
			{"3/10", "2025-03-10"}, // already past this year
			{"12/25/23", "2023-12-25"},
			{"12/25/2023", "2023-12-25"},
			{"Dec 25", "2024-12-25"},
			{"December 25", "2024-12-25"},
			{"Jan 5", "2025-01-05"},
		}
		for _, tc := range tests {
			got, err := parseFlexibleDate(tc.in, testNow)
			require.Nil(t, err, tc.in)
			assert.Equal(tc.want, got.Format(dateLayout), tc.in)
		}
	})

	t.Run("same day does not advance", func(t *testing.T) {
		got, err := parseFlexibleDate("7/10", testNow)
		require.Nil(t, err)
		assert.Equal("2024-07-10", got.Format(dateLayout))
	})

	t.Run("invalid", func(t *testing.T) {
		for _, in := range []string{"2/30", "13/5", "0/10", "4/0", "Frob 3", "x/y"} {
			_, err := parseFlexibleDate(in, testNow)
			assert.NotNil(err, in)
		}
	})
}
