package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the only date format the system speaks: console commands,
// rendered views and the JSON wire format all use dd-MM-yyyy.
const DateLayout = "02-01-2006"

var ErrInvalidDate = errors.New("domain: invalid date")

// Date is a calendar date with no time-of-day component. The zero value is
// not a valid date; unset deadlines are represented as *Date == nil.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components without validation.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today is the current calendar date in the process-local time zone.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a dd-MM-yyyy string. Parsing is strict: the input must
// match the layout exactly and name a calendar-valid date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// Time returns midnight of the date in the local time zone.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// Compare orders dates chronologically, returning -1, 0 or +1.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// MarshalJSON encodes the date as a quoted dd-MM-yyyy string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted dd-MM-yyyy string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, data)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
