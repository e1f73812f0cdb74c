package buchfahrplan

import (
	"errors"
	"fmt"

	"github.com/zusitools/fahrplangen/pkg/zusi"
)

var (
	ErrLengthMismatch             = errors.New("printed timetable and train have a different number of timed rows")
	ErrRelatedEntriesInconsistent = errors.New("printed timetable row does not fit its train entry")
	ErrNonConsecutive             = errors.New("printed timetables do not join")
)

// zeitGruppe is the set of printed rows belonging to one train entry. Usually
// a single row; an arrival-only row directly followed by a departure-only row
// of the same station forms a pair.
type zeitGruppe []int

func zeitGruppen(zeilen []zusi.FplZeile) []zeitGruppe {
	var gruppen []zeitGruppe
	for i := 0; i < len(zeilen); i++ {
		zeile := &zeilen[i]
		if !zeile.HasZeit() {
			continue
		}

		if i+1 < len(zeilen) && isAnkunftsZeile(zeile) && isAbfahrtsZeile(&zeilen[i+1]) {
			name, _ := zeile.Betriebsstelle()
			if zeilen[i+1].IsBetriebsstelle(name) {
				gruppen = append(gruppen, zeitGruppe{i, i + 1})
				i++
				continue
			}
		}

		gruppen = append(gruppen, zeitGruppe{i})
	}
	return gruppen
}

func isAnkunftsZeile(zeile *zusi.FplZeile) bool {
	return zeile.FplAnk != nil && zeile.FplAbf == nil && zeile.FplName != nil
}

func isAbfahrtsZeile(zeile *zusi.FplZeile) bool {
	return zeile.FplAnk == nil && zeile.FplAbf != nil
}

// Update copies the arrival and departure times of the train entries into the
// printed rows that show them. Auxiliary entries have no printed row.
func Update(eintraege []zusi.FahrplanEintrag, zeilen []zusi.FplZeile) error {
	var abfahrten []*zusi.FahrplanEintrag
	for i := range eintraege {
		if eintraege[i].HasAbfahrt() && !eintraege[i].IsHilfseintrag() {
			abfahrten = append(abfahrten, &eintraege[i])
		}
	}

	gruppen := zeitGruppen(zeilen)
	if len(gruppen) != len(abfahrten) {
		return fmt.Errorf("%w: %d train entries, %d printed rows", ErrLengthMismatch, len(abfahrten), len(gruppen))
	}

	for i, gruppe := range gruppen {
		eintrag := abfahrten[i]
		for _, index := range gruppe {
			if err := updateZeile(eintrag, &zeilen[index]); err != nil {
				return err
			}
		}
	}

	return nil
}

func updateZeile(eintrag *zusi.FahrplanEintrag, zeile *zusi.FplZeile) error {
	if !zeile.IsBetriebsstelle(eintrag.Betrst) {
		name, _ := zeile.Betriebsstelle()
		return fmt.Errorf("%w: row %q, entry %q", ErrRelatedEntriesInconsistent, name, eintrag.Betrst)
	}

	if zeile.FplAnk != nil {
		if eintrag.Ank == nil {
			return fmt.Errorf("%w: %s has a printed arrival but no arrival", ErrRelatedEntriesInconsistent, eintrag.Betrst)
		}
		zeile.SetAnk(*eintrag.Ank)
	}
	if zeile.FplAbf != nil {
		if eintrag.Abf == nil {
			return fmt.Errorf("%w: %s has a printed departure but no departure", ErrRelatedEntriesInconsistent, eintrag.Betrst)
		}
		zeile.SetAbf(*eintrag.Abf)
	}

	return nil
}
