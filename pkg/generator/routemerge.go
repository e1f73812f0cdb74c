package generator

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zusitools/fahrplangen/pkg/buchfahrplan"
	"github.com/zusitools/fahrplangen/pkg/zusi"
	"golang.org/x/exp/slices"
)

func joinable(a *zusi.FahrplanEintrag, b *zusi.FahrplanEintrag) bool {
	return a.Betrst == b.Betrst &&
		slices.Equal(a.Signale(), b.Signale()) &&
		a.Abf != nil && b.Abf != nil &&
		(a.Ank == nil) == (b.Ank == nil)
}

// mergeRouteParts appends next to current. The last entry of current and the
// first entry of next describe the same stop; the one from next is kept. The
// part without a time fix is shifted onto the other.
func mergeRouteParts(current *ResolvedRoutePart, next *ResolvedRoutePart) error {
	if current.HasTimeFix && next.HasTimeFix {
		return ErrMultipleTimeFixes
	}

	last := len(current.Eintraege) - 1
	a := &current.Eintraege[last]
	b := &next.Eintraege[0]
	if !joinable(a, b) {
		return fmt.Errorf("%w: %s and %s", ErrNonConsecutive, a.Betrst, b.Betrst)
	}

	var delta time.Duration
	if a.Ank != nil && b.Ank != nil {
		delta = a.Ank.Sub(*b.Ank)
	} else {
		delta = a.Abf.Sub(*b.Abf)
	}

	if next.HasTimeFix {
		zusi.ShiftEintraege(current.Eintraege, -delta)
		zusi.ShiftZeilen(current.Zeilen, -delta)
		current.HasTimeFix = true
	} else {
		zusi.ShiftEintraege(next.Eintraege, delta)
		zusi.ShiftZeilen(next.Zeilen, delta)
	}

	join := b.Betrst
	current.Eintraege = append(current.Eintraege[:last], next.Eintraege...)

	if len(current.Zeilen) > 0 || len(next.Zeilen) > 0 {
		zeilen, err := buchfahrplan.Concat(current.Zeilen, next.Zeilen, join)
		if err != nil {
			return err
		}
		current.Zeilen = zeilen
	}

	if current.MBrh == nil {
		current.MBrh = next.MBrh
	}

	log.Debug().Str("betrst", join).Dur("delta", delta).Msg("Merged route parts")
	return nil
}
