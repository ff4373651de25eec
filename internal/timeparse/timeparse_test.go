package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2025-06-10", "2025-06-10", true},
		{"2025/06/10", "2025-06-10", true},
		{"10-06-2025", "2025-06-10", true},
		{"10/06/2025", "2025-06-10", true},
		{" 2025-06-10 ", "2025-06-10", true},
		{"June 10, 2025", "", false},
		{"2025-13-01", "", false},
		{"tomorrow", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseDateDayMonthWinsOverMonthDay(t *testing.T) {
	// 01-02-2025 is ambiguous; the DD-MM-YYYY format is tried before any
	// month-day reading, so it must come back as February 1st.
	got, ok := ParseDate("01-02-2025")
	require.True(t, ok)
	assert.Equal(t, "2025-02-01", got)
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"14:30", "14:30", true},
		{"9:05", "09:05", true},
		{"00:00", "00:00", true},
		{"23:59", "23:59", true},
		{"24:00", "", false},
		{"12:60", "", false},
		{"2:30 PM", "14:30", true},
		{"2:30pm", "14:30", true},
		{"12 PM", "12:00", true},
		{"12 AM", "00:00", true},
		{"12:15 am", "00:15", true},
		{"7 pm", "19:00", true},
		{"7", "", false},
		{"half past two", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseTime(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestIsFutureAt(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	assert.True(t, IsFutureAt("2025-06-10", "14:01", now))
	assert.False(t, IsFutureAt("2025-06-10", "14:00", now), "equal to now is not future")
	assert.False(t, IsFutureAt("2025-06-10", "13:59", now))
	assert.False(t, IsFutureAt("2024-01-01", "09:00", now))

	// Parse failures fail closed.
	assert.False(t, IsFutureAt("not-a-date", "14:30", now))
	assert.False(t, IsFutureAt("2025-06-10", "soon", now))
}
