package schedule

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zusitools/fahrplangen/pkg/util"
	"github.com/zusitools/fahrplangen/pkg/zusi"
)

// Alignment is the window in which a schedule matched a train. Indices count
// departure-bearing entries only.
type Alignment struct {
	EintragStart  int
	ScheduleStart int
	Length        int
}

func (a Alignment) Complete(schedule *Schedule) bool {
	return a.Length == len(schedule.Entries)
}

// Apply retimes eintraege so that the longest run of departure-bearing
// entries whose stations match the schedule follows its driving and stop
// times. Entries behind the window move with the last departure change. If a
// matched schedule entry carries a time fix, the whole list is finally moved
// so that the anchored time is back at its original value.
//
// An empty alignment is not an error; the entries are left unchanged.
func Apply(eintraege []zusi.FahrplanEintrag, schedule *Schedule) (Alignment, error) {
	driving := util.FilterIndices(eintraege, func(e *zusi.FahrplanEintrag) bool {
		return e.HasAbfahrt()
	})
	stations := util.Map(driving, func(i int) string { return eintraege[i].Betrst })

	eintragStart, scheduleStart, length := util.LongestCommonRun(stations, schedule.Betriebsstellen())
	alignment := Alignment{EintragStart: eintragStart, ScheduleStart: scheduleStart, Length: length}

	if length == 0 {
		log.Warn().Msg("Schedule has no station in common with the train")
		return alignment, nil
	}

	log.Debug().
		Str("from", stations[eintragStart]).
		Str("to", stations[eintragStart+length-1]).
		Int("length", length).
		Msg("Aligned schedule")

	if err := validate(eintraege, driving, schedule, alignment); err != nil {
		return alignment, err
	}

	var previousAbf *zusi.DateTime
	var shift time.Duration
	var timeFixDiff *time.Duration

	drivingIndex := 0
	for i := range eintraege {
		eintrag := &eintraege[i]
		if !eintrag.HasAbfahrt() {
			eintrag.Shift(shift)
			continue
		}

		k := drivingIndex
		drivingIndex++

		if k < eintragStart || k >= eintragStart+length {
			eintrag.Shift(shift)
			previousAbf = nil
			continue
		}

		entry := schedule.Entries[scheduleStart+k-eintragStart]

		abfOld := *eintrag.Abf
		ankOld, isStop := abfOld, false
		if eintrag.Ank != nil {
			ankOld, isStop = *eintrag.Ank, true
		}

		stop := abfOld.Sub(ankOld)
		if entry.StopTime != nil {
			stop = entry.StopTime.Std()
		}

		ankNew := ankOld
		if previousAbf != nil {
			ankNew = previousAbf.Add(entry.DrivingTime.Std())
		}
		abfNew := ankNew.Add(stop)

		if isStop {
			eintrag.Ank = ankNew.Ptr()
		}
		eintrag.Abf = abfNew.Ptr()

		previousAbf = abfNew.Ptr()
		shift = abfNew.Sub(abfOld)

		if entry.TimeFix != nil {
			var diff time.Duration
			switch *entry.TimeFix {
			case TimeFixAnk:
				diff = ankOld.Sub(ankNew)
			case TimeFixAbf:
				diff = abfOld.Sub(abfNew)
			}
			timeFixDiff = &diff
		}
	}

	if timeFixDiff != nil {
		zusi.ShiftEintraege(eintraege, *timeFixDiff)
	}

	return alignment, nil
}

// validate checks the aligned window before anything is modified.
func validate(eintraege []zusi.FahrplanEintrag, driving []int, schedule *Schedule, alignment Alignment) error {
	timeFixes := 0
	for k := 0; k < alignment.Length; k++ {
		eintrag := &eintraege[driving[alignment.EintragStart+k]]
		entry := schedule.Entries[alignment.ScheduleStart+k]

		if entry.StopTime != nil && eintrag.Ank == nil {
			return fmt.Errorf("%w: %s", ErrStopTimeNotApplicable, eintrag.Betrst)
		}
		if entry.TimeFix != nil {
			timeFixes++
			if timeFixes > 1 {
				return fmt.Errorf("%w: second time fix at %s", ErrMultipleTimeFixes, eintrag.Betrst)
			}
		}
	}
	return nil
}
