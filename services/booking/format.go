package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatHour renders a whole hour on the 12-hour clock, e.g. 9 -> "9:00 AM",
// 0 -> "12:00 AM", 12 -> "12:00 PM", 17 -> "5:00 PM".
func FormatHour(hour int) string {
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour > 12:
		display = hour - 12
	}
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:00 %s", display, meridiem)
}

// FormatHourRange renders an owner window for messages, e.g. "9:00 AM to 5:00 PM".
func FormatHourRange(startHour, endHour int) string {
	return fmt.Sprintf("%s to %s", FormatHour(startHour), FormatHour(endHour))
}

// SlotLabel renders a free slot for display, e.g. "9:00 AM - 10:00 AM".
func SlotLabel(startHour, endHour int) string {
	return fmt.Sprintf("%s - %s", FormatHour(startHour), FormatHour(endHour))
}

// AbbrevWeekdays renders a weekday set as "Mon, Wed, Fri".
func AbbrevWeekdays(days []time.Weekday) string {
	abbrevs := make([]string, len(days))
	for i, d := range days {
		abbrevs[i] = d.String()[:3]
	}
	return strings.Join(abbrevs, ", ")
}

// ParseHour extracts the leading hour from an "HH:MM" time string; minutes
// are ignored since the domain only supports whole-hour granularity.
func ParseHour(s string) (int, error) {
	head, _, found := strings.Cut(s, ":")
	if !found {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d out of range in %q", hour, s)
	}
	return hour, nil
}

var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// ParseWeekday maps a full English weekday name to its Gregorian weekday
// (Sunday=0 .. Saturday=6).
func ParseWeekday(name string) (time.Weekday, error) {
	if d, ok := weekdayNames[name]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}
