package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders a minute count as the stored "Xh Ym" shape: the hour
// part is omitted when zero, the minute part is omitted when zero, and both
// zero renders "0m".
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	h := totalMinutes / 60
	m := totalMinutes % 60

	parts := []string{}
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, " ")
}

// ParseDuration reads an "Xh Ym" string back into minutes. Unrecognized
// tokens are skipped; a string with no recognizable part yields 0.
func ParseDuration(s string) int {
	total := 0
	for _, token := range strings.Fields(s) {
		unit := token[len(token)-1]
		n, err := strconv.Atoi(token[:len(token)-1])
		if err != nil || n < 0 {
			continue
		}
		switch unit {
		case 'h', 'H':
			total += n * 60
		case 'm', 'M':
			total += n
		}
	}
	return total
}

// FormatScheduleTime renders a session start as the stored display string,
// e.g. "20 Aug - 7:00 PM": day without leading zero, three-letter month,
// 12-hour clock without a leading hour zero, two-digit minutes, uppercase
// AM/PM, with noon and midnight shown as 12.
func FormatScheduleTime(t time.Time) string {
	day := t.Day()
	mon := t.Format("Jan")

	hours := t.Hour()
	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	hours = hours % 12
	if hours == 0 {
		hours = 12
	}

	return fmt.Sprintf("%d %s - %d:%02d %s", day, mon, hours, t.Minute(), ampm)
}

// SplitDuration converts a minute total into the hours/minutes pair stored on
// the course record.
func SplitDuration(totalMinutes int) (hours, minutes int) {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return totalMinutes / 60, totalMinutes % 60
}
