package zusi

import "encoding/xml"

const (
	DateiTypFahrplan     = "Fahrplan"
	DateiTypZug          = "Zug"
	DateiTypBuchfahrplan = "Buchfahrplan"

	ZugVersion          = "A.6"
	BuchfahrplanVersion = "A.4"
)

// Zusi is the root element shared by every file of the family. Exactly one of
// the payload pointers is set for a well formed document.
type Zusi struct {
	XMLName xml.Name `xml:"Zusi"`

	Info Info `xml:"Info"`

	Fahrplan     *Fahrplan     `xml:"Fahrplan,omitempty"`
	Zug          *Zug          `xml:"Zug,omitempty"`
	Buchfahrplan *Buchfahrplan `xml:"Buchfahrplan,omitempty"`

	Rest []RawElement `xml:",any"`
}

type Info struct {
	DateiTyp   string `xml:"DateiTyp,attr"`
	Version    string `xml:"Version,attr"`
	MinVersion string `xml:"MinVersion,attr"`

	Extra []xml.Attr   `xml:",any,attr"`
	Rest  []RawElement `xml:",any"`
}

// RawElement keeps an element the binding does not model so that it can be
// written back unchanged.
type RawElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Inner   string     `xml:",innerxml"`
}

// Datei references another file by its data-root-relative name.
type Datei struct {
	Dateiname string `xml:"Dateiname,attr"`
	NurInfo   *Flag  `xml:"NurInfo,attr,omitempty"`

	Extra []xml.Attr `xml:",any,attr"`
}

type UTM struct {
	WE    int    `xml:"UTM_WE,attr"`
	NS    int    `xml:"UTM_NS,attr"`
	Zone  int    `xml:"UTM_Zone,attr"`
	Zone2 string `xml:"UTM_Zone2,attr,omitempty"`

	Extra []xml.Attr `xml:",any,attr"`
}
