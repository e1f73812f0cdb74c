package util

import (
	"fmt"
	"time"
)

// FormatClockDuration renders d as [-]HH:MM:SS.
func FormatClockDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	d = d.Truncate(time.Second)
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second

	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
}
