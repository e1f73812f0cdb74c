package generator

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/zusitools/fahrplangen/pkg/buchfahrplan"
	"github.com/zusitools/fahrplangen/pkg/config"
	"github.com/zusitools/fahrplangen/pkg/schedule"
	"github.com/zusitools/fahrplangen/pkg/zusi"
)

func (g *Generator) resolveRoutePart(part *config.RoutePartConfig) (*ResolvedRoutePart, error) {
	source, err := part.Source()
	if err != nil {
		return nil, err
	}

	var route *ResolvedRoute
	switch source := source.(type) {
	case *config.TrainFileByPath:
		route, err = g.loadRoute(source.Path)
	case *config.TrainConfigByNummer:
		route, err = g.referencedRoute(source.Nummer)
	default:
		err = fmt.Errorf("%w: unsupported route part source %T", config.ErrInvalidConfig, source)
	}
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedRoutePart{ResolvedRoute: *route}

	if len(resolved.Eintraege) == 0 {
		return nil, ErrEmptyRoutePart
	}

	if part.ApplySchedule != nil {
		path := g.env.Resolve(part.ApplySchedule.Path)
		s, err := schedule.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if _, err := schedule.Apply(resolved.Eintraege, s); err != nil {
			return nil, fmt.Errorf("schedule %s: %w", path, err)
		}
	}

	if part.TimeFix != nil {
		if err := applyTimeFix(resolved.Eintraege, part.TimeFix); err != nil {
			return nil, err
		}
		resolved.HasTimeFix = true
	}

	if len(resolved.Zeilen) > 0 {
		if err := buchfahrplan.Update(resolved.Eintraege, resolved.Zeilen); err != nil {
			return nil, err
		}
	}

	if part.StartAction != nil {
		aktion := part.StartAction.Aktion()
		resolved.StartData.Aktion = &aktion
		resolved.Eintraege[0].Aktion = &aktion
	}

	log.Debug().
		Str("from", resolved.Eintraege[0].Betrst).
		Str("to", resolved.Eintraege[len(resolved.Eintraege)-1].Betrst).
		Int("entries", len(resolved.Eintraege)).
		Int("lines", len(resolved.Zeilen)).
		Bool("timefix", resolved.HasTimeFix).
		Msg("Resolved route part")

	return resolved, nil
}

// loadRoute reads a route template train and, if it references one, its
// printed timetable.
func (g *Generator) loadRoute(path string) (*ResolvedRoute, error) {
	zug, err := zusi.ReadZug(g.env.Resolve(path))
	if err != nil {
		return nil, err
	}

	route := &ResolvedRoute{
		StartData: RouteStartData{
			FahrstrName: zug.FahrstrName,
			Startmodus:  zug.Startmodus,
			Vorlauf:     zug.Vorlauf,
			SpAnfang:    zug.SpAnfang,
		},
		Eintraege: zug.FahrplanEintraege,
		MBrh:      zug.MBrh,
	}

	if zug.BuchfahrplanDatei != nil && zug.BuchfahrplanDatei.Dateiname != "" {
		bfp, err := zusi.ReadBuchfahrplan(g.env.Resolve(zug.BuchfahrplanDatei.Dateiname))
		if err != nil {
			return nil, err
		}

		route.Zeilen = bfp.FplZeilen
		route.StartData.KmStart = bfp.KmStart
		route.StartData.GNTSpalte = bfp.GNTSpalte
		if bfp.Bremsh != nil {
			route.MBrh = bfp.Bremsh
		}
	}

	return route, nil
}

func applyTimeFix(eintraege []zusi.FahrplanEintrag, fix *config.TimeFix) error {
	var anchor *zusi.DateTime
	switch fix.Type {
	case config.TimeFixStartAbf:
		anchor = eintraege[0].Abf
	case config.TimeFixEndAnk:
		anchor = eintraege[len(eintraege)-1].Ank
	}
	if anchor == nil {
		return fmt.Errorf("%w: %s", ErrTimeFixNotApplicable, fix.Type)
	}

	zusi.ShiftEintraege(eintraege, fix.Value.Sub(*anchor))
	return nil
}
