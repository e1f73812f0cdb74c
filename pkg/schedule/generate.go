package schedule

import (
	"github.com/zusitools/fahrplangen/pkg/config"
	"github.com/zusitools/fahrplangen/pkg/zusi"
)

// Generate extracts the schedule a train currently follows: for every
// departure-bearing entry the time since the previous departure and, for
// stops, the dwell time.
func Generate(eintraege []zusi.FahrplanEintrag) *Schedule {
	return GenerateWindow(eintraege, "", "")
}

// GenerateWindow is Generate restricted to the entries from the first
// departure at station from up to the next departure at station to. Empty
// bounds are open.
func GenerateWindow(eintraege []zusi.FahrplanEintrag, from string, to string) *Schedule {
	schedule := &Schedule{}

	var previousAbf *zusi.DateTime
	inWindow := from == ""

	for i := range eintraege {
		eintrag := &eintraege[i]
		if !eintrag.HasAbfahrt() {
			continue
		}

		if !inWindow && eintrag.Betrst == from {
			inWindow = true
		}

		if inWindow {
			entry := Entry{Betriebsstelle: eintrag.Betrst}

			arrival := *eintrag.Abf
			if eintrag.Ank != nil {
				arrival = *eintrag.Ank
				stop := config.Duration(eintrag.Abf.Sub(*eintrag.Ank))
				entry.StopTime = &stop
			}
			if previousAbf != nil {
				entry.DrivingTime = config.Duration(arrival.Sub(*previousAbf))
			}

			schedule.Entries = append(schedule.Entries, entry)

			if to != "" && eintrag.Betrst == to {
				break
			}
		}

		previousAbf = eintrag.Abf
	}

	return schedule
}
