package generator

import (
	"github.com/rs/zerolog/log"
	"github.com/zusitools/fahrplangen/pkg/config"
	"github.com/zusitools/fahrplangen/pkg/zusi"
)

// BuildZug builds the train described by zugConfig followed by its delayed
// copies.
func (g *Generator) BuildZug(zugConfig *config.ZugConfig) ([]*GeneratedZug, error) {
	zuege, err := g.buildZug(zugConfig)
	if err != nil {
		return nil, &ZugError{Gattung: zugConfig.Gattung, Nummer: zugConfig.Nummer, Err: err}
	}
	return zuege, nil
}

func (g *Generator) buildZug(zugConfig *config.ZugConfig) ([]*GeneratedZug, error) {
	fahrplanDatei, err := g.env.ZusiPath(g.env.Resolve(g.config.GenerateAt))
	if err != nil {
		return nil, err
	}

	zug := &zusi.Zug{
		Gattung: zugConfig.Gattung,
		Nummer:  zugConfig.Nummer,
		Datei:   &zusi.Datei{Dateiname: fahrplanDatei},
	}

	route, err := g.ownRoute(zugConfig)
	if err != nil {
		return nil, err
	}

	if route.MBrh != nil {
		mbrh := *route.MBrh
		zug.MBrh = &mbrh
	}

	generated := &GeneratedZug{Zug: zug}
	if len(route.Zeilen) > 0 {
		generated.Buchfahrplan = &zusi.Buchfahrplan{
			Gattung:   zugConfig.Gattung,
			Nummer:    zugConfig.Nummer,
			KmStart:   route.StartData.KmStart,
			GNTSpalte: route.StartData.GNTSpalte,
			Bremsh:    route.MBrh,
			FplZeilen: route.Zeilen,
		}
	}

	zug.FahrstrName = route.StartData.FahrstrName
	zug.Startmodus = route.StartData.Startmodus
	zug.Vorlauf = route.StartData.Vorlauf
	zug.SpAnfang = route.StartData.SpAnfang
	zug.FahrplanEintraege = route.Eintraege

	if err := g.replaceRollingStock(zugConfig.RollingStock, generated); err != nil {
		return nil, err
	}

	if zugConfig.MetaData != nil {
		if err := g.applyMetaData(zugConfig.MetaData, zug); err != nil {
			return nil, err
		}
	}

	zuege := []*GeneratedZug{generated}
	if zugConfig.CopyDelay != nil {
		copies, err := g.copyDelay(zugConfig.CopyDelay, generated)
		if err != nil {
			return nil, err
		}
		zuege = append(zuege, copies...)
	}

	log.Info().
		Str("gattung", zugConfig.Gattung).
		Str("nummer", zugConfig.Nummer).
		Int("copies", len(zuege)-1).
		Bool("buchfahrplan", generated.Buchfahrplan != nil).
		Msg("Built train")

	return zuege, nil
}

// ownRoute returns a private copy of the route of zugConfig. Configs sharing
// a number with an earlier config are not memoised and resolve on their own.
func (g *Generator) ownRoute(zugConfig *config.ZugConfig) (*ResolvedRoute, error) {
	if g.zuege[zugConfig.Nummer] == zugConfig {
		return g.referencedRoute(zugConfig.Nummer)
	}

	route, err := g.resolveRoute(zugConfig)
	if err != nil {
		return nil, err
	}
	return &route.ResolvedRoute, nil
}
