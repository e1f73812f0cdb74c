package zusi

import "encoding/xml"

// Fahrplan is the network timetable.
type Fahrplan struct {
	AnfangsZeit *DateTime `xml:"AnfangsZeit,attr,omitempty"`
	TrnDateien  *Flag     `xml:"trnDateien,attr,omitempty"`

	Extra []xml.Attr `xml:",any,attr"`

	// Elements the simulator expects ahead of the trains.
	BefehlsKonfiguration *RawElement `xml:"BefehlsKonfiguration,omitempty"`
	Begruessungsdatei    *RawElement `xml:"Begruessungsdatei,omitempty"`

	// Zuege holds both file links and inline train definitions.
	Zuege []FahrplanZug `xml:"Zug"`

	Rest []RawElement `xml:",any"`

	UTM *UTM `xml:"UTM,omitempty"`
}

type FahrplanZug struct {
	Datei *Datei `xml:"Datei,omitempty"`

	Extra []xml.Attr   `xml:",any,attr"`
	Rest  []RawElement `xml:",any"`
}

// ClearZuege drops every train the template timetable carried and switches
// the timetable to file based trains.
func (f *Fahrplan) ClearZuege() {
	f.Zuege = nil
	f.TrnDateien = Flag(true).Ptr()
}

func (f *Fahrplan) AddZugDatei(dateiname string) {
	f.Zuege = append(f.Zuege, FahrplanZug{Datei: &Datei{Dateiname: dateiname}})
}
