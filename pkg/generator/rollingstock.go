package generator

import (
	"github.com/rs/zerolog/log"
	"github.com/zusitools/fahrplangen/pkg/config"
	"github.com/zusitools/fahrplangen/pkg/transforms"
	"github.com/zusitools/fahrplangen/pkg/zusi"
)

var rollingStockZugFields = transforms.TransformDefinition{
	Mode: transforms.Replace,
	Fields: transforms.Fields(
		"Laenge",
		"BR",
		"Bremsstellung",
		"BremsstellungText",
		"Masse",
		"Grenzlast",
		"SpZugNiedriger",
		"Tuersystem",
	),
}

var rollingStockBuchfahrplanFields = transforms.TransformDefinition{
	Mode: transforms.Replace,
	Fields: transforms.Fields(
		"Bremsh",
		"Laenge",
		"LaengeLoks",
		"LaengeVerband",
		"Fahrzeuginfo",
		"BR",
		"Bremsstellung",
		"BremsstellungText",
		"Masse",
		"Grenzlast",
		"SpMax",
	),
}

// Printed timetable header fields that have a counterpart on the train.
var buchfahrplanZugFields = transforms.TransformDefinition{
	Mode: transforms.Replace,
	Fields: append(
		[]transforms.FieldMapping{{Source: "Bremsh", Destination: "MBrh"}},
		transforms.Fields("Laenge", "BR", "Bremsstellung", "BremsstellungText", "Masse", "Grenzlast")...,
	),
}

// replaceRollingStock swaps in the vehicles of a rolling stock template along
// with the header fields that depend on them.
func (g *Generator) replaceRollingStock(rollingStock *config.RollingStockConfig, generated *GeneratedZug) error {
	template, err := zusi.ReadZug(g.env.Resolve(rollingStock.Path))
	if err != nil {
		return err
	}

	generated.Zug.FahrzeugVarianten = template.FahrzeugVarianten
	if _, err := rollingStockZugFields.Transform(template, generated.Zug); err != nil {
		return err
	}

	if generated.Buchfahrplan == nil {
		return nil
	}

	if template.BuchfahrplanDatei == nil || template.BuchfahrplanDatei.Dateiname == "" {
		log.Debug().Str("rollingstock", rollingStock.Path).Msg("Rolling stock has no printed timetable, dropping it")
		generated.Buchfahrplan = nil
		return nil
	}

	templateBuchfahrplan, err := zusi.ReadBuchfahrplan(g.env.Resolve(template.BuchfahrplanDatei.Dateiname))
	if err != nil {
		return err
	}

	bfp := generated.Buchfahrplan
	if _, err := rollingStockBuchfahrplanFields.Transform(templateBuchfahrplan, bfp); err != nil {
		return err
	}

	if limit := generated.Zug.SpZugNiedriger; limit != nil && bfp.SpMax != nil && *limit < *bfp.SpMax {
		spMax := *limit
		bfp.SpMax = &spMax
	}

	_, err = buchfahrplanZugFields.Transform(bfp, generated.Zug)
	return err
}
