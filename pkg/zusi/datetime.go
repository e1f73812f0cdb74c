package zusi

import (
	"fmt"
	"strings"
	"time"
)

const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime is a naive wall-clock timestamp with second resolution, stored as
// seconds since the Unix epoch interpreted in UTC.
type DateTime int64

func NewDateTime(t time.Time) DateTime {
	return DateTime(time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC).Unix())
}

func ParseDateTime(value string) (DateTime, error) {
	t, err := time.Parse(DateTimeLayout, strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid date time %q: %w", value, err)
	}

	return NewDateTime(t), nil
}

func MustParseDateTime(value string) DateTime {
	t, err := ParseDateTime(value)
	if err != nil {
		panic(err)
	}
	return t
}

func (t DateTime) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

func (t DateTime) Add(d time.Duration) DateTime {
	return t + DateTime(d/time.Second)
}

func (t DateTime) Sub(o DateTime) time.Duration {
	return time.Duration(t-o) * time.Second
}

func (t DateTime) String() string {
	return t.Time().Format(DateTimeLayout)
}

// Ptr returns a pointer to a copy of t.
func (t DateTime) Ptr() *DateTime {
	return &t
}

// Shift moves t by d. A nil receiver is left alone.
func (t *DateTime) Shift(d time.Duration) {
	if t == nil {
		return
	}
	*t = t.Add(d)
}

func (t DateTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *DateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Flag is a boolean attribute written as 1/0.
type Flag bool

func (f Flag) MarshalText() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "1", "true":
		*f = true
	case "0", "false", "":
		*f = false
	default:
		return fmt.Errorf("invalid flag %q", string(text))
	}
	return nil
}

func (f Flag) Ptr() *Flag {
	return &f
}
