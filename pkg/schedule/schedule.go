package schedule

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/zusitools/fahrplangen/pkg/config"
)

var (
	ErrStopTimeNotApplicable = errors.New("stop time given for an entry without arrival")
	ErrMultipleTimeFixes     = errors.New("schedule has more than one time fix in the aligned window")
	ErrNotAligned            = errors.New("schedule does not align completely with the train")
)

// Schedule describes the intended driving and stop times of a sequence of
// stations, independent of any absolute time.
type Schedule struct {
	XMLName xml.Name `xml:"Schedule"`

	Entries []Entry `xml:"ScheduleEntry"`
}

type Entry struct {
	Betriebsstelle string           `xml:"betriebsstelle,attr"`
	DrivingTime    config.Duration  `xml:"drivingTime,attr"`
	StopTime       *config.Duration `xml:"stopTime,attr,omitempty"`
	TimeFix        *TimeFixAnchor   `xml:"timeFix,attr,omitempty"`
}

// TimeFixAnchor selects which time of an entry stays where it was before the
// schedule was applied.
type TimeFixAnchor string

const (
	TimeFixAnk TimeFixAnchor = "Ank"
	TimeFixAbf TimeFixAnchor = "Abf"
)

func (t *TimeFixAnchor) UnmarshalText(text []byte) error {
	switch value := TimeFixAnchor(strings.TrimSpace(string(text))); value {
	case TimeFixAnk, TimeFixAbf:
		*t = value
		return nil
	default:
		return fmt.Errorf("unknown time fix %q", string(text))
	}
}

func (s *Schedule) Betriebsstellen() []string {
	names := make([]string, 0, len(s.Entries))
	for _, entry := range s.Entries {
		names = append(names, entry.Betriebsstelle)
	}
	return names
}
