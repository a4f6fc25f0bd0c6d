package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// To24Hour converts an hour, minute, and optional meridiem ("am"/"pm", case
// insensitive) into a canonical "HH:MM" string. An empty meridiem defaults to
// "am", matching how bare hours in chat messages are read.
func To24Hour(hour, minute int, meridiem string) (string, error) {
	if hour < 0 || hour > 12 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("time out of range: %d:%02d", hour, minute)
	}
	switch strings.ToLower(strings.TrimSpace(meridiem)) {
	case "", "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	default:
		return "", fmt.Errorf("unknown meridiem: %q", meridiem)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// Format12 renders a canonical "HH:MM" string as a 12-hour time such as
// "9:00 AM". Unparseable input is returned unchanged.
func Format12(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return hhmm
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return hhmm
	}
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, meridiem)
}
