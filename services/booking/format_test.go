package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHour(t *testing.T) {
	cases := map[int]string{
		0:  "12:00 AM",
		1:  "1:00 AM",
		9:  "9:00 AM",
		11: "11:00 AM",
		12: "12:00 PM",
		13: "1:00 PM",
		17: "5:00 PM",
		23: "11:00 PM",
	}
	for hour, want := range cases {
		assert.Equal(t, want, FormatHour(hour), "hour %d", hour)
	}
}

func TestFormatHourRange(t *testing.T) {
	assert.Equal(t, "9:00 AM to 5:00 PM", FormatHourRange(9, 17))
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "12:00 PM - 5:00 PM", SlotLabel(12, 17))
}

func TestAbbrevWeekdays(t *testing.T) {
	days := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	assert.Equal(t, "Mon, Wed, Fri", AbbrevWeekdays(days))
	assert.Equal(t, "", AbbrevWeekdays(nil))
}

func TestParseHour(t *testing.T) {
	cases := map[string]int{
		"0:00":  0,
		"9:00":  9,
		"09:00": 9,
		"12:00": 12,
		"17:00": 17,
		"23:00": 23,
		"9:30":  9, // minutes are ignored
	}
	for input, want := range cases {
		got, err := ParseHour(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseHourRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "9", "24:00", "-1:00", "abc:00", "am 9"} {
		_, err := ParseHour(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("Sunday")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, d)

	d, err = ParseWeekday("Saturday")
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, d)

	_, err = ParseWeekday("monday")
	assert.Error(t, err)
	_, err = ParseWeekday("Mon")
	assert.Error(t, err)
}
