package zusi

import (
	"encoding/xml"
	"time"
)

// Buchfahrplan is the printed timetable accompanying a train.
type Buchfahrplan struct {
	Gattung string  `xml:"Gattung,attr"`
	Nummer  string  `xml:"Nummer,attr"`
	Zuglauf *string `xml:"Zuglauf,attr,omitempty"`
	BR      *string `xml:"BR,attr,omitempty"`

	SpMax             *float64       `xml:"spMax,attr,omitempty"`
	Masse             *float64       `xml:"Masse,attr,omitempty"`
	Laenge            *float64       `xml:"Laenge,attr,omitempty"`
	LaengeLoks        *float64       `xml:"LaengeLoks,attr,omitempty"`
	LaengeVerband     *float64       `xml:"LaengeVerband,attr,omitempty"`
	Fahrzeuginfo      *string        `xml:"Fahrzeuginfo,attr,omitempty"`
	Bremsh            *float64       `xml:"Bremsh,attr,omitempty"`
	Bremsstellung     *Bremsstellung `xml:"Bremsstellung,attr,omitempty"`
	BremsstellungText *string        `xml:"BremsstellungTextUeberschreiben,attr,omitempty"`
	Grenzlast         *Flag          `xml:"Grenzlast,attr,omitempty"`
	KmStart           *float64       `xml:"kmStart,attr,omitempty"`
	GNTSpalte         *Flag          `xml:"GNTSpalte,attr,omitempty"`

	Extra []xml.Attr `xml:",any,attr"`

	DateiFpn *Datei `xml:"Datei_fpn,omitempty"`
	DateiTrn *Datei `xml:"Datei_trn,omitempty"`
	UTM      *UTM   `xml:"UTM,omitempty"`

	FplZeilen []FplZeile `xml:"FplZeile"`

	Rest []RawElement `xml:",any"`
}

// FplZeile is one printed row. Only rows carrying FplName refer to a station.
type FplZeile struct {
	FplLaufweg float64 `xml:"FplLaufweg,attr"`
	FplRglGgl  *int    `xml:"FplRglGgl,attr,omitempty"`

	Extra []xml.Attr `xml:",any,attr"`

	FplVmax       *FplVmax      `xml:"FplVmax,omitempty"`
	Fplkm         *Fplkm        `xml:"Fplkm,omitempty"`
	FplName       *FplText      `xml:"FplName,omitempty"`
	FplAnk        *FplAnk       `xml:"FplAnk,omitempty"`
	FplAbf        *FplAbf       `xml:"FplAbf,omitempty"`
	FplSignaltyp  *FplSignaltyp `xml:"FplSignaltyp,omitempty"`
	FplNameRechts *FplText      `xml:"FplNameRechts,omitempty"`
	FplIcons      []FplIcon     `xml:"FplIcon"`

	Rest []RawElement `xml:",any"`
}

type FplVmax struct {
	Vmax float64 `xml:"FplVmax,attr"`

	Extra []xml.Attr `xml:",any,attr"`
}

type Fplkm struct {
	Km float64 `xml:"km,attr"`

	Extra []xml.Attr `xml:",any,attr"`
}

type FplText struct {
	Text string `xml:"FplNameText,attr"`

	Extra []xml.Attr `xml:",any,attr"`
}

type FplAnk struct {
	Ank DateTime `xml:"Ank,attr"`

	Extra []xml.Attr `xml:",any,attr"`
}

type FplAbf struct {
	Abf DateTime `xml:"Abf,attr"`

	Extra []xml.Attr `xml:",any,attr"`
}

type FplSignaltyp struct {
	Nr int `xml:"FplSignaltypNr,attr"`

	Extra []xml.Attr `xml:",any,attr"`
}

type FplIcon struct {
	Nr int `xml:"FplIconNr,attr"`

	Extra []xml.Attr `xml:",any,attr"`
}

// Betriebsstelle returns the station label of a station-bearing row.
func (z *FplZeile) Betriebsstelle() (string, bool) {
	if z.FplName == nil {
		return "", false
	}
	return z.FplName.Text, true
}

func (z *FplZeile) IsBetriebsstelle(name string) bool {
	betrst, ok := z.Betriebsstelle()
	return ok && betrst == name
}

func (z *FplZeile) Ank() *DateTime {
	if z.FplAnk == nil {
		return nil
	}
	return &z.FplAnk.Ank
}

func (z *FplZeile) Abf() *DateTime {
	if z.FplAbf == nil {
		return nil
	}
	return &z.FplAbf.Abf
}

func (z *FplZeile) HasZeit() bool {
	return z.FplAnk != nil || z.FplAbf != nil
}

// SetAnk sets the arrival, keeping any extra attributes of an existing element.
func (z *FplZeile) SetAnk(t DateTime) {
	if z.FplAnk == nil {
		z.FplAnk = &FplAnk{}
	}
	z.FplAnk.Ank = t
}

func (z *FplZeile) SetAbf(t DateTime) {
	if z.FplAbf == nil {
		z.FplAbf = &FplAbf{}
	}
	z.FplAbf.Abf = t
}

func (z *FplZeile) SameKm(o *FplZeile) bool {
	if z.Fplkm == nil || o.Fplkm == nil {
		return z.Fplkm == nil && o.Fplkm == nil
	}
	return z.Fplkm.Km == o.Fplkm.Km
}

func (z *FplZeile) Shift(d time.Duration) {
	z.Ank().Shift(d)
	z.Abf().Shift(d)
}

func ShiftZeilen(zeilen []FplZeile, d time.Duration) {
	if d == 0 {
		return
	}
	for i := range zeilen {
		zeilen[i].Shift(d)
	}
}
