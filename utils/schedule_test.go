package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", FormatDuration(0))
	assert.Equal(t, "0m", FormatDuration(-5))
	assert.Equal(t, "45m", FormatDuration(45))
	assert.Equal(t, "1h 30m", FormatDuration(90))
	assert.Equal(t, "2h", FormatDuration(120))
	assert.Equal(t, "3h 5m", FormatDuration(185))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 0, ParseDuration(""))
	assert.Equal(t, 45, ParseDuration("45m"))
	assert.Equal(t, 90, ParseDuration("1h 30m"))
	assert.Equal(t, 120, ParseDuration("2h"))
	assert.Equal(t, 185, ParseDuration("3h 5m"))

	// unrecognized tokens are skipped
	assert.Equal(t, 60, ParseDuration("1h soon"))
	assert.Equal(t, 0, ParseDuration("whenever"))
}

func TestFormatDurationRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 1, 59, 60, 61, 90, 120, 185, 600} {
		got := ParseDuration(FormatDuration(minutes))
		assert.Equal(t, minutes, got, "minutes=%d", minutes)
	}
}

func TestFormatScheduleTime(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2025, 8, 20, 14, 0, 0, 0, time.UTC), "20 Aug - 2:00 PM"},
		{time.Date(2025, 8, 20, 19, 5, 0, 0, time.UTC), "20 Aug - 7:05 PM"},
		{time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), "3 Jan - 12:00 AM"},
		{time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC), "3 Jan - 12:00 PM"},
		{time.Date(2025, 12, 31, 9, 30, 0, 0, time.UTC), "31 Dec - 9:30 AM"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatScheduleTime(tc.in))
	}
}

func TestSplitDuration(t *testing.T) {
	h, m := SplitDuration(185)
	assert.Equal(t, 3, h)
	assert.Equal(t, 5, m)

	h, m = SplitDuration(0)
	assert.Equal(t, 0, h)
	assert.Equal(t, 0, m)

	h, m = SplitDuration(-10)
	assert.Equal(t, 0, h)
	assert.Equal(t, 0, m)
}
