package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zusitools/fahrplangen/pkg/buchfahrplan"
	"github.com/zusitools/fahrplangen/pkg/config"
	"github.com/zusitools/fahrplangen/pkg/zusi"
)

func part(eintraege ...zusi.FahrplanEintrag) *ResolvedRoutePart {
	return &ResolvedRoutePart{ResolvedRoute: ResolvedRoute{Eintraege: eintraege}}
}

func partXY() *ResolvedRoutePart {
	return part(eintrag("X", "", "08:00:00"), eintrag("Y", "08:10:00", "08:11:00"))
}

func partYZ() *ResolvedRoutePart {
	return part(eintrag("Y", "09:10:00", "09:11:00"), eintrag("Z", "09:20:00", "09:21:00"))
}

func partZW() *ResolvedRoutePart {
	return part(eintrag("Z", "10:20:00", "10:21:00"), eintrag("W", "10:30:00", ""))
}

func TestMergeRouteParts(t *testing.T) {
	current := partXY()
	require.NoError(t, mergeRouteParts(current, partYZ()))

	assert.Equal(t, [][2]string{
		{"", "08:00:00"},
		{"08:10:00", "08:11:00"},
		{"08:20:00", "08:21:00"},
	}, times(current.Eintraege))
	assert.False(t, current.HasTimeFix)
}

func TestMergeRoutePartsIsAssociative(t *testing.T) {
	left := partXY()
	require.NoError(t, mergeRouteParts(left, partYZ()))
	require.NoError(t, mergeRouteParts(left, partZW()))

	tail := partYZ()
	require.NoError(t, mergeRouteParts(tail, partZW()))
	right := partXY()
	require.NoError(t, mergeRouteParts(right, tail))

	assert.Equal(t, left.Eintraege, right.Eintraege)
	assert.Equal(t, [][2]string{
		{"", "08:00:00"},
		{"08:10:00", "08:11:00"},
		{"08:20:00", "08:21:00"},
		{"08:30:00", ""},
	}, times(left.Eintraege))
}

func TestMergeRoutePartsShiftsTowardsTimeFix(t *testing.T) {
	current := partXY()
	next := partYZ()
	next.HasTimeFix = true

	require.NoError(t, mergeRouteParts(current, next))

	assert.Equal(t, [][2]string{
		{"", "09:00:00"},
		{"09:10:00", "09:11:00"},
		{"09:20:00", "09:21:00"},
	}, times(current.Eintraege))
	assert.True(t, current.HasTimeFix)
}

func TestMergeRoutePartsWithoutArrivals(t *testing.T) {
	current := part(eintrag("X", "", "08:00:00"), eintrag("Y", "", "08:10:00"))
	next := part(eintrag("Y", "", "09:10:00"), eintrag("Z", "09:20:00", ""))

	require.NoError(t, mergeRouteParts(current, next))
	assert.Equal(t, [][2]string{
		{"", "08:00:00"},
		{"", "08:10:00"},
		{"08:20:00", ""},
	}, times(current.Eintraege))
}

func TestMergeRoutePartsRejects(t *testing.T) {
	withSignal := func(e zusi.FahrplanEintrag, signal string) zusi.FahrplanEintrag {
		e.SignalEintraege = []zusi.FahrplanSignalEintrag{{FahrplanSignal: signal}}
		return e
	}

	tests := []struct {
		name string
		next *ResolvedRoutePart
	}{
		{"different station", part(eintrag("Q", "09:10:00", "09:11:00"))},
		{"different signals", part(withSignal(eintrag("Y", "09:10:00", "09:11:00"), "Y N2"))},
		{"no departure", part(eintrag("Y", "09:10:00", ""))},
		{"arrival on one side only", part(eintrag("Y", "", "09:11:00"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mergeRouteParts(partXY(), tt.next)
			assert.ErrorIs(t, err, ErrNonConsecutive)
		})
	}
}

func TestMergeRoutePartsMultipleTimeFixes(t *testing.T) {
	current := partXY()
	current.HasTimeFix = true
	next := partYZ()
	next.HasTimeFix = true

	assert.ErrorIs(t, mergeRouteParts(current, next), ErrMultipleTimeFixes)
}

func TestMergeRoutePartsConcatenatesBuchfahrplaene(t *testing.T) {
	current := partXY()
	current.Zeilen = []zusi.FplZeile{
		zeile(0, 0, "X", "", "08:00:00"),
		zeile(3000, 3, "Y", "08:10:00", "08:11:00"),
	}
	next := partYZ()
	next.Zeilen = []zusi.FplZeile{
		zeile(500, 3, "Y", "09:10:00", "09:11:00"),
		zeile(2500, 5, "Z", "09:20:00", "09:21:00"),
	}

	require.NoError(t, mergeRouteParts(current, next))
	require.Len(t, current.Zeilen, 3)
	assert.Equal(t, 5000.0, current.Zeilen[2].FplLaufweg)
	assert.Equal(t, "2024-01-01 08:20:00", current.Zeilen[2].Ank().String())
	assert.Equal(t, "2024-01-01 08:11:00", current.Zeilen[1].Abf().String())
}

func TestMergeRoutePartsRejectsOneSidedBuchfahrplan(t *testing.T) {
	t.Run("first part only", func(t *testing.T) {
		current := partXY()
		current.Zeilen = []zusi.FplZeile{zeile(0, 0, "X", "", "08:00:00")}

		err := mergeRouteParts(current, partYZ())
		assert.ErrorIs(t, err, buchfahrplan.ErrNonConsecutive)
	})

	t.Run("second part only", func(t *testing.T) {
		next := partYZ()
		next.Zeilen = []zusi.FplZeile{zeile(0, 3, "Y", "09:10:00", "09:11:00")}

		err := mergeRouteParts(partXY(), next)
		assert.ErrorIs(t, err, buchfahrplan.ErrNonConsecutive)
	})
}

func TestApplyTimeFix(t *testing.T) {
	eintraege := []zusi.FahrplanEintrag{
		eintrag("A", "", "08:00:00"),
		eintrag("B", "08:10:00", ""),
	}

	err := applyTimeFix(eintraege, &config.TimeFix{Type: config.TimeFixEndAnk, Value: *at("09:00:00")})
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"", "08:50:00"}, {"09:00:00", ""}}, times(eintraege))

	err = applyTimeFix(eintraege, &config.TimeFix{Type: config.TimeFixStartAbf, Value: *at("07:00:00")})
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"", "07:00:00"}, {"07:10:00", ""}}, times(eintraege))
}

func TestApplyTimeFixNotApplicable(t *testing.T) {
	eintraege := []zusi.FahrplanEintrag{
		eintrag("A", "07:59:00", ""),
		eintrag("B", "", "08:10:00"),
	}

	for _, typ := range []config.TimeFixType{config.TimeFixStartAbf, config.TimeFixEndAnk} {
		err := applyTimeFix(eintraege, &config.TimeFix{Type: typ, Value: *at("09:00:00")})
		assert.ErrorIs(t, err, ErrTimeFixNotApplicable)
	}
}
