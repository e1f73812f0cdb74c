package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	iso8601 "github.com/senseyeio/duration"
	"github.com/zusitools/fahrplangen/pkg/util"
)

var ErrInvalidDuration = errors.New("invalid duration")

// Duration is a signed duration written as [+|-]HH:MM:SS. ISO-8601 durations
// without year or month components (e.g. PT1H30M, -P1D) are accepted too.
type Duration time.Duration

func ParseDuration(value string) (Duration, error) {
	value = strings.TrimSpace(value)

	sign := time.Duration(1)
	unsigned := value
	switch {
	case strings.HasPrefix(value, "-"):
		sign = -1
		unsigned = value[1:]
	case strings.HasPrefix(value, "+"):
		unsigned = value[1:]
	}

	if strings.HasPrefix(unsigned, "P") {
		parsed, err := parseISO8601(unsigned)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %s", ErrInvalidDuration, value, err)
		}
		return Duration(sign * parsed), nil
	}

	parts := strings.Split(unsigned, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w %q: expected HH:MM:SS", ErrInvalidDuration, value)
	}

	units := []time.Duration{time.Hour, time.Minute, time.Second}
	var total time.Duration
	for i, part := range parts {
		amount, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %s", ErrInvalidDuration, value, err)
		}
		if i > 0 && amount >= 60 {
			return 0, fmt.Errorf("%w %q: component out of range", ErrInvalidDuration, value)
		}
		total += time.Duration(amount) * units[i]
	}

	return Duration(sign * total), nil
}

func parseISO8601(value string) (time.Duration, error) {
	parsed, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, err
	}
	if parsed.Y != 0 || parsed.M != 0 {
		return 0, errors.New("years and months have no fixed length")
	}

	days := time.Duration(parsed.W*7+parsed.D) * 24 * time.Hour
	return days +
		time.Duration(parsed.TH)*time.Hour +
		time.Duration(parsed.TM)*time.Minute +
		time.Duration(parsed.TS)*time.Second, nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return util.FormatClockDuration(time.Duration(d))
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
