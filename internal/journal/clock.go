package journal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeFormat selects how clock values are rendered.
type TimeFormat uint8

const (
	// Hour24 renders zero-padded HH:MM:SS.
	Hour24 TimeFormat = iota
	// Hour12 renders a zero-padded 12-hour clock with an AM/PM suffix.
	Hour12
)

// ParseTimeFormat converts a config value ("12" or "24") to a TimeFormat.
func ParseTimeFormat(value string) (TimeFormat, error) {
	switch strings.TrimSpace(value) {
	case "24", "":
		return Hour24, nil
	case "12":
		return Hour12, nil
	default:
		return Hour24, fmt.Errorf("invalid time format %q (expected 12 or 24)", value)
	}
}

func (f TimeFormat) String() string {
	if f == Hour12 {
		return "12"
	}
	return "24"
}

// MarshalText lets yaml and flag layers round-trip the enum without importing it.
func (f TimeFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *TimeFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalYAML renders the enum as its config spelling.
func (f TimeFormat) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// UnmarshalYAML accepts 12 or 24, quoted or not, from a config file.
func (f *TimeFormat) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value interface{}
	if err := unmarshal(&value); err != nil {
		return err
	}
	return f.UnmarshalText([]byte(fmt.Sprint(value)))
}

// Clock is a wall-clock time of day. The zero value is midnight.
type Clock struct {
	hour   int
	minute int
	second int
}

// NewClock validates the components and returns the clock value.
func NewClock(hour, minute, second int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return Clock{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrInvalidTime, hour, minute, second)
	}
	return Clock{hour: hour, minute: minute, second: second}, nil
}

// Accepts HH:MM, HH:MM:SS, 1-2 digit hours, and an optional AM/PM suffix with
// or without a separating space. The \b keeps "09:00 Amble" from donating its
// first two letters as a meridiem marker.
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?(?:\s*([AaPp])[Mm]\b)?$`)

// ParseClock converts free-form clock text into a Clock. Input is permissive
// so that documents can mix 12- and 24-hour entries; rendering is what
// converges them to one format.
func ParseClock(value string) (Clock, error) {
	matches := clockPattern.FindStringSubmatch(strings.TrimSpace(value))
	if matches == nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	second := 0
	if matches[3] != "" {
		second, _ = strconv.Atoi(matches[3])
	}

	if meridiem := matches[4]; meridiem != "" {
		if hour < 1 || hour > 12 {
			return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, value)
		}
		if hour == 12 {
			hour = 0
		}
		if meridiem == "p" || meridiem == "P" {
			hour += 12
		}
	}

	clock, err := NewClock(hour, minute, second)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	return clock, nil
}

// Hour returns the hour component (0-23).
func (c Clock) Hour() int { return c.hour }

// Minute returns the minute component (0-59).
func (c Clock) Minute() int { return c.minute }

// Second returns the second component (0-59).
func (c Clock) Second() int { return c.second }

// Before reports whether c is earlier in the day than other.
func (c Clock) Before(other Clock) bool {
	if c.hour != other.hour {
		return c.hour < other.hour
	}
	if c.minute != other.minute {
		return c.minute < other.minute
	}
	return c.second < other.second
}

// Next returns the clock advanced by one second, wrapping at midnight.
func (c Clock) Next() Clock {
	c.second++
	if c.second == 60 {
		c.second = 0
		c.minute++
	}
	if c.minute == 60 {
		c.minute = 0
		c.hour++
	}
	if c.hour == 24 {
		c.hour = 0
	}
	return c
}

// Format renders the clock in the requested display format.
func (c Clock) Format(format TimeFormat) string {
	if format == Hour12 {
		period := "AM"
		if c.hour >= 12 {
			period = "PM"
		}
		hour := c.hour % 12
		if hour == 0 {
			hour = 12
		}
		return fmt.Sprintf("%02d:%02d:%02d %s", hour, c.minute, c.second, period)
	}
	return fmt.Sprintf("%02d:%02d:%02d", c.hour, c.minute, c.second)
}

func (c Clock) String() string {
	return c.Format(Hour24)
}
