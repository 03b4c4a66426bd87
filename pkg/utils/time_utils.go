package utils

import "time"

// DateLayout is the wire format for itinerary dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for activity times.
const TimeLayout = "15:04"

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ValidClockTime reports whether s is a well-formed HH:MM value.
func ValidClockTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// AddDays shifts a YYYY-MM-DD date string by n days. Returns s unchanged if it
// does not parse.
func AddDays(s string, n int) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return FormatDate(t.AddDate(0, 0, n))
}
