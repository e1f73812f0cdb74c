package zusi

import (
	"encoding/xml"
	"time"
)

type Bremsstellung int

const (
	BremsstellungKeine Bremsstellung = iota
	BremsstellungG
	BremsstellungP
	BremsstellungPMg
	BremsstellungR
	BremsstellungRMg
)

type StartAktion int

const (
	StartAktionKeine StartAktion = iota
	StartAktionRichtungswechsel
	StartAktionFuehrerstandswechsel
)

type EintragTyp int

const (
	EintragTypNormal EintragTyp = iota
	// EintragTypHilfseintrag entries only carry signal annotations.
	EintragTypHilfseintrag
)

// Zug is a single train. Optional attributes are pointers: nil means the
// attribute is absent and the simulator falls back to its default.
type Zug struct {
	Gattung string  `xml:"Gattung,attr"`
	Nummer  string  `xml:"Nummer,attr"`
	Zuglauf *string `xml:"Zuglauf,attr,omitempty"`
	BR      *string `xml:"BR,attr,omitempty"`

	Prio                   *int     `xml:"Prio,attr,omitempty"`
	Energievorrat          *float64 `xml:"Energievorrat,attr,omitempty"`
	MBrh                   *float64 `xml:"MBrh,attr,omitempty"`
	Verkehrstage           *string  `xml:"Verkehrstage,attr,omitempty"`
	SpZugNiedriger         *float64 `xml:"spZugNiedriger,attr,omitempty"`
	APBeschl               *float64 `xml:"APBeschl,attr,omitempty"`
	KeineVorplanKorrektur  *Flag    `xml:"KeineVorplanKorrektur,attr,omitempty"`
	Dekozug                *Flag    `xml:"Dekozug,attr,omitempty"`
	LODzug                 *int     `xml:"LODzug,attr,omitempty"`
	Reisendendichte        *float64 `xml:"Reisendendichte,attr,omitempty"`
	FahrplanGruppe         *string  `xml:"FahrplanGruppe,attr,omitempty"`
	Rekursionstiefe        *int     `xml:"Rekursionstiefe,attr,omitempty"`
	ZugsicherungStartmodus *int     `xml:"ZugsicherungStartmodus,attr,omitempty"`
	Kaltbewegung           *Flag    `xml:"Kaltbewegung,attr,omitempty"`
	Zugtyp                 *int     `xml:"Zugtyp,attr,omitempty"`
	Ueberschrift           *string  `xml:"Ueberschrift,attr,omitempty"`
	BuchfahrplanModus      *int     `xml:"EBuchfahrplanModus,attr,omitempty"`
	BuchfahrplanDll        *string  `xml:"BuchfahrplanDll,attr,omitempty"`

	FahrstrName *string  `xml:"FahrstrName,attr,omitempty"`
	Startmodus  *int     `xml:"Startmodus,attr,omitempty"`
	Vorlauf     *float64 `xml:"Vorlauf,attr,omitempty"`
	SpAnfang    *float64 `xml:"spAnfang,attr,omitempty"`

	Laenge            *float64       `xml:"Laenge,attr,omitempty"`
	Masse             *float64       `xml:"Masse,attr,omitempty"`
	Bremsstellung     *Bremsstellung `xml:"Bremsstellung,attr,omitempty"`
	BremsstellungText *string        `xml:"BremsstellungTextUeberschreiben,attr,omitempty"`
	Grenzlast         *Flag          `xml:"Grenzlast,attr,omitempty"`
	Tuersystem        *string        `xml:"TuerSystemBezeichner,attr,omitempty"`

	Extra []xml.Attr `xml:",any,attr"`

	Datei             *Datei `xml:"Datei,omitempty"`
	BuchfahrplanDatei *Datei `xml:"BuchfahrplanRohDatei,omitempty"`

	FahrplanEintraege []FahrplanEintrag `xml:"FahrplanEintrag"`

	FahrzeugVarianten *FahrzeugVarianten `xml:"FahrzeugVarianten,omitempty"`

	Rest []RawElement `xml:",any"`
}

// FahrzeugVarianten is the vehicle composition. It is only ever replaced as a
// whole, so its content is kept verbatim.
type FahrzeugVarianten struct {
	Attrs  []xml.Attr `xml:",any,attr"`
	Inhalt string     `xml:",innerxml"`
}

type FahrplanEintrag struct {
	Ank           *DateTime    `xml:"Ank,attr,omitempty"`
	Abf           *DateTime    `xml:"Abf,attr,omitempty"`
	Betrst        string       `xml:"Betrst,attr,omitempty"`
	Signalvorlauf *float64     `xml:"Signalvorlauf,attr,omitempty"`
	Typ           *EintragTyp  `xml:"FplEintrag,attr,omitempty"`
	Aktion        *StartAktion `xml:"FplRichtungswechsel,attr,omitempty"`

	Extra []xml.Attr `xml:",any,attr"`

	SignalEintraege []FahrplanSignalEintrag `xml:"FahrplanSignalEintrag"`

	Rest []RawElement `xml:",any"`
}

type FahrplanSignalEintrag struct {
	FahrplanSignal string `xml:"FahrplanSignal,attr"`

	Extra []xml.Attr `xml:",any,attr"`
}

func (e *FahrplanEintrag) IsHilfseintrag() bool {
	return e.Typ != nil && *e.Typ == EintragTypHilfseintrag
}

func (e *FahrplanEintrag) HasAbfahrt() bool {
	return e.Abf != nil
}

func (e *FahrplanEintrag) Signale() []string {
	signale := make([]string, 0, len(e.SignalEintraege))
	for _, signal := range e.SignalEintraege {
		signale = append(signale, signal.FahrplanSignal)
	}
	return signale
}

// Shift moves arrival and departure by d.
func (e *FahrplanEintrag) Shift(d time.Duration) {
	e.Ank.Shift(d)
	e.Abf.Shift(d)
}

func ShiftEintraege(eintraege []FahrplanEintrag, d time.Duration) {
	if d == 0 {
		return
	}
	for i := range eintraege {
		eintraege[i].Shift(d)
	}
}
