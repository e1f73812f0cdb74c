package generator

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zusitools/fahrplangen/pkg/config"
	"github.com/zusitools/fahrplangen/pkg/zusi"
)

func at(value string) *zusi.DateTime {
	return zusi.MustParseDateTime("2024-01-01 " + value).Ptr()
}

func eintrag(betrst string, ank string, abf string) zusi.FahrplanEintrag {
	e := zusi.FahrplanEintrag{Betrst: betrst}
	if ank != "" {
		e.Ank = at(ank)
	}
	if abf != "" {
		e.Abf = at(abf)
	}
	return e
}

func zeile(laufweg float64, km float64, betrst string, ank string, abf string) zusi.FplZeile {
	z := zusi.FplZeile{FplLaufweg: laufweg, Fplkm: &zusi.Fplkm{Km: km}}
	if betrst != "" {
		z.FplName = &zusi.FplText{Text: betrst}
	}
	if ank != "" {
		z.FplAnk = &zusi.FplAnk{Ank: *at(ank)}
	}
	if abf != "" {
		z.FplAbf = &zusi.FplAbf{Abf: *at(abf)}
	}
	return z
}

// times lists arrival and departure of every entry as clock times.
func times(eintraege []zusi.FahrplanEintrag) [][2]string {
	format := func(t *zusi.DateTime) string {
		if t == nil {
			return ""
		}
		return t.Time().Format(time.TimeOnly)
	}

	result := make([][2]string, 0, len(eintraege))
	for _, e := range eintraege {
		result = append(result, [2]string{format(e.Ank), format(e.Abf)})
	}
	return result
}

func stringPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}

func bremsstellungPtr(b zusi.Bremsstellung) *zusi.Bremsstellung {
	return &b
}

// dataDir is a temporary data root holding template files.
type dataDir struct {
	t    *testing.T
	root string
}

func newDataDir(t *testing.T) *dataDir {
	d := &dataDir{t: t, root: t.TempDir()}

	d.writeFahrplan("Template.fpn", &zusi.Fahrplan{
		AnfangsZeit: at("06:00:00"),
		Zuege:       []zusi.FahrplanZug{{Datei: &zusi.Datei{Dateiname: `Alt\RE1.trn`}}},
		UTM:         &zusi.UTM{WE: 500, NS: 5500, Zone: 32, Zone2: "U"},
	})

	// R1: A -> B
	d.writeZug("R1.trn", &zusi.Zug{
		Gattung:     "RB",
		Nummer:      "1",
		FahrstrName: stringPtr("Aufgleisen A"),
		Vorlauf:     floatPtr(200),
		MBrh:        floatPtr(80),
		FahrplanEintraege: []zusi.FahrplanEintrag{
			eintrag("A", "", "08:00:00"),
			eintrag("B", "08:10:00", "08:11:00"),
		},
	})
	// R2: B -> C, an hour later than R1
	d.writeZug("R2.trn", &zusi.Zug{
		Gattung: "RB",
		Nummer:  "2",
		FahrplanEintraege: []zusi.FahrplanEintrag{
			eintrag("B", "09:10:00", "09:11:00"),
			eintrag("C", "09:30:00", "09:31:00"),
		},
	})
	// R3 starts somewhere else.
	d.writeZug("R3.trn", &zusi.Zug{
		Gattung: "RB",
		Nummer:  "3",
		FahrplanEintraege: []zusi.FahrplanEintrag{
			eintrag("X", "", "09:00:00"),
			eintrag("C", "09:30:00", "09:31:00"),
		},
	})

	d.writeZug("A.trn", &zusi.Zug{
		Gattung:           "RS",
		Nummer:            "A",
		Laenge:            floatPtr(120),
		Masse:             floatPtr(300000),
		SpZugNiedriger:    floatPtr(140),
		Tuersystem:        stringPtr("TB0"),
		FahrzeugVarianten: &zusi.FahrzeugVarianten{Inhalt: `<FahrzeugInfo IDHaupt="7"/>`},
	})
	d.writeZug("B.trn", &zusi.Zug{
		Gattung:           "RS",
		Nummer:            "B",
		Laenge:            floatPtr(60),
		FahrzeugVarianten: &zusi.FahrzeugVarianten{Inhalt: `<FahrzeugInfo IDHaupt="8"/>`},
	})

	return d
}

// withBuchfahrplaene adds printed timetables to R1, R2 and the rolling stock A.
func (d *dataDir) withBuchfahrplaene() *dataDir {
	d.writeBuchfahrplan("R1.timetable.xml", &zusi.Buchfahrplan{
		Gattung: "RB",
		Nummer:  "1",
		KmStart: floatPtr(0),
		Bremsh:  floatPtr(90),
		FplZeilen: []zusi.FplZeile{
			zeile(0, 0, "A", "", "07:00:00"),
			{FplLaufweg: 2500, Fplkm: &zusi.Fplkm{Km: 2.5}, FplSignaltyp: &zusi.FplSignaltyp{Nr: 3}},
			zeile(5000, 5, "B", "07:10:00", "07:11:00"),
		},
	})
	d.updateZug("R1.trn", func(zug *zusi.Zug) {
		zug.BuchfahrplanDatei = &zusi.Datei{Dateiname: "R1.timetable.xml"}
	})

	d.writeBuchfahrplan("R2.timetable.xml", &zusi.Buchfahrplan{
		Gattung: "RB",
		Nummer:  "2",
		FplZeilen: []zusi.FplZeile{
			zeile(100, 5, "B", "09:00:00", "09:01:00"),
			zeile(4100, 9, "C", "09:20:00", "09:21:00"),
		},
	})
	d.updateZug("R2.trn", func(zug *zusi.Zug) {
		zug.BuchfahrplanDatei = &zusi.Datei{Dateiname: "R2.timetable.xml"}
	})

	d.writeBuchfahrplan("A.timetable.xml", &zusi.Buchfahrplan{
		Gattung:       "RS",
		Nummer:        "A",
		Bremsh:        floatPtr(120),
		Bremsstellung: bremsstellungPtr(zusi.BremsstellungP),
		SpMax:         floatPtr(160),
		Fahrzeuginfo:  stringPtr("BR 425"),
	})
	d.updateZug("A.trn", func(zug *zusi.Zug) {
		zug.BuchfahrplanDatei = &zusi.Datei{Dateiname: "A.timetable.xml"}
	})

	return d
}

func (d *dataDir) path(name string) string {
	return filepath.Join(d.root, name)
}

func (d *dataDir) writeZug(name string, zug *zusi.Zug) {
	require.NoError(d.t, zusi.WriteZug(d.path(name), zug))
}

func (d *dataDir) updateZug(name string, update func(*zusi.Zug)) {
	zug, err := zusi.ReadZug(d.path(name))
	require.NoError(d.t, err)
	update(zug)
	d.writeZug(name, zug)
}

func (d *dataDir) writeBuchfahrplan(name string, bfp *zusi.Buchfahrplan) {
	require.NoError(d.t, zusi.WriteBuchfahrplan(d.path(name), bfp))
}

func (d *dataDir) writeFahrplan(name string, fahrplan *zusi.Fahrplan) {
	require.NoError(d.t, zusi.WriteFile(d.path(name), &zusi.Zusi{
		Info:     zusi.Info{DateiTyp: zusi.DateiTypFahrplan, Version: "A.1", MinVersion: "A.1"},
		Fahrplan: fahrplan,
	}))
}

func (d *dataDir) generator(zuege ...config.ZugConfig) *Generator {
	g, err := New(&config.ZusiEnvironment{
		DataDir: d.root,
		Fahrplan: config.FahrplanConfig{
			GenerateAt:   "Out.fpn",
			GenerateFrom: "Template.fpn",
			Zuege:        zuege,
		},
	})
	require.NoError(d.t, err)
	return g
}

func byPath(path string) config.RoutePartConfig {
	return config.RoutePartConfig{TrainFileByPath: &config.TrainFileByPath{Path: path}}
}

func byNummer(nummer string) config.RoutePartConfig {
	return config.RoutePartConfig{TrainConfigByNummer: &config.TrainConfigByNummer{Nummer: nummer}}
}

func zugConfig(nummer string, route ...config.RoutePartConfig) config.ZugConfig {
	return config.ZugConfig{
		Nummer:       nummer,
		Gattung:      "RB",
		Route:        route,
		RollingStock: &config.RollingStockConfig{Path: "A.trn"},
	}
}

func writeSchedule(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
