package generator

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/zusitools/fahrplangen/pkg/zugnummer"
	"github.com/zusitools/fahrplangen/pkg/zusi"
	"golang.org/x/exp/slices"
)

const (
	ZugExtension          = ".trn"
	BuchfahrplanExtension = ".timetable.xml"
)

// OutputPaths returns where a train and its printed timetable are written:
// next to the timetable file, in a directory named after it.
func OutputPaths(fahrplanPath string, zug *zusi.Zug) (string, string) {
	directory := strings.TrimSuffix(fahrplanPath, filepath.Ext(fahrplanPath))
	base := filepath.Join(directory, zug.Gattung+zug.Nummer)
	return base + ZugExtension, base + BuchfahrplanExtension
}

func sortZuege(zuege []*GeneratedZug) {
	slices.SortStableFunc(zuege, func(a, b *GeneratedZug) int {
		// Unparsable numbers compare as empty and sort first.
		nummerA, _ := zugnummer.Parse(a.Zug.Nummer)
		nummerB, _ := zugnummer.Parse(b.Zug.Nummer)
		return zugnummer.Compare(nummerA, nummerB)
	})
}

// BuildAll resolves the routes of every configured train first, so that
// route references by number are available, then builds all trains sorted by
// train number.
func (g *Generator) BuildAll() ([]*GeneratedZug, error) {
	for i := range g.config.Zuege {
		zugConfig := &g.config.Zuege[i]
		if g.zuege[zugConfig.Nummer] != zugConfig {
			continue
		}
		if _, err := g.route(zugConfig.Nummer); err != nil {
			return nil, &ZugError{Gattung: zugConfig.Gattung, Nummer: zugConfig.Nummer, Err: err}
		}
	}

	var zuege []*GeneratedZug
	for i := range g.config.Zuege {
		built, err := g.BuildZug(&g.config.Zuege[i])
		if err != nil {
			return nil, err
		}
		zuege = append(zuege, built...)
	}

	sortZuege(zuege)
	return zuege, nil
}

// Generate writes the timetable, every train and every printed timetable.
// The template timetable loses the trains it carried.
func (g *Generator) Generate() error {
	document, err := zusi.ReadFahrplan(g.env.Resolve(g.config.GenerateFrom))
	if err != nil {
		return err
	}
	fahrplan := document.Fahrplan
	fahrplan.ClearZuege()

	zuege, err := g.BuildAll()
	if err != nil {
		return err
	}

	fahrplanPath := g.env.Resolve(g.config.GenerateAt)
	fahrplanDatei, err := g.env.ZusiPath(fahrplanPath)
	if err != nil {
		return err
	}

	for _, generated := range zuege {
		if err := g.writeZug(generated, fahrplan, fahrplanPath, fahrplanDatei); err != nil {
			return &ZugError{Gattung: generated.Zug.Gattung, Nummer: generated.Zug.Nummer, Err: err}
		}
	}

	if err := zusi.WriteFile(fahrplanPath, document); err != nil {
		return err
	}

	log.Info().Str("path", fahrplanPath).Int("trains", len(zuege)).Msg("Wrote timetable")
	return nil
}

func (g *Generator) writeZug(generated *GeneratedZug, fahrplan *zusi.Fahrplan, fahrplanPath string, fahrplanDatei string) error {
	zug := generated.Zug
	zugPath, buchfahrplanPath := OutputPaths(fahrplanPath, zug)

	zugDatei, err := g.env.ZusiPath(zugPath)
	if err != nil {
		return err
	}

	zug.Datei = &zusi.Datei{Dateiname: fahrplanDatei}
	zug.BuchfahrplanDatei = nil

	if bfp := generated.Buchfahrplan; bfp != nil {
		buchfahrplanDatei, err := g.env.ZusiPath(buchfahrplanPath)
		if err != nil {
			return err
		}

		bfp.DateiFpn = &zusi.Datei{Dateiname: fahrplanDatei}
		bfp.DateiTrn = &zusi.Datei{Dateiname: zugDatei}
		if fahrplan.UTM != nil {
			utm := *fahrplan.UTM
			bfp.UTM = &utm
		}
		zug.BuchfahrplanDatei = &zusi.Datei{Dateiname: buchfahrplanDatei}

		if err := zusi.WriteBuchfahrplan(buchfahrplanPath, bfp); err != nil {
			return err
		}
	}

	if err := zusi.WriteZug(zugPath, zug); err != nil {
		return err
	}
	fahrplan.AddZugDatei(zugDatei)

	log.Info().Str("path", zugPath).Msg("Wrote train")
	return nil
}
