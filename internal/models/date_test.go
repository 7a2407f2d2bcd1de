package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOrderDate(t *testing.T) {
	ts := time.Date(2024, 7, 8, 17, 4, 0, 0, time.UTC)
	got := FormatOrderDate(ts)
	assert.Equal(t, "2024-07-08 05:04 PM", got)

	parsed, err := time.Parse(OrderDateFormat, got)
	require.NoError(t, err)
	assert.True(t, ts.Equal(parsed), "stored format round-trips to the minute")
}

func TestFormatOrderDateKeepsDayPrefix(t *testing.T) {
	ts := time.Date(2024, 1, 2, 0, 30, 0, 0, time.UTC)
	day, ok := DayPortion(FormatOrderDate(ts))
	require.True(t, ok)
	assert.Equal(t, "2024-01-02", day)
}

func TestDayPortion(t *testing.T) {
	tests := []struct {
		in   string
		day  string
		ok   bool
	}{
		{"2024-07-08 05:04 PM", "2024-07-08", true},
		{"2024-07-08", "2024-07-08", true},
		{"2024-7-8 05:04 PM", "", false},
		{"garbage", "", false},
		{"", "", false},
		{"2024-13-40 01:00 AM", "", false},
	}
	for _, tt := range tests {
		day, ok := DayPortion(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.day, day, tt.in)
	}
}
