package generator

import (
	"github.com/rs/zerolog/log"
	"github.com/zusitools/fahrplangen/pkg/config"
	"github.com/zusitools/fahrplangen/pkg/transforms"
	"github.com/zusitools/fahrplangen/pkg/zusi"
)

var metaDataFields = transforms.TransformDefinition{
	Mode: transforms.FillEmpty,
	Fields: transforms.Fields(
		"Zuglauf",
		"Prio",
		"Energievorrat",
		"MBrh",
		"Verkehrstage",
		"SpZugNiedriger",
		"APBeschl",
		"KeineVorplanKorrektur",
		"Dekozug",
		"LODzug",
		"Reisendendichte",
		"FahrplanGruppe",
		"Rekursionstiefe",
		"ZugsicherungStartmodus",
		"Kaltbewegung",
		"Zugtyp",
		"Ueberschrift",
		"BuchfahrplanModus",
		"BuchfahrplanDll",
	),
}

// applyMetaData fills informational attributes the train does not set yet
// from a meta data template.
func (g *Generator) applyMetaData(metaData *config.MetaDataConfig, zug *zusi.Zug) error {
	template, err := zusi.ReadZug(g.env.Resolve(metaData.Path))
	if err != nil {
		return err
	}

	changed, err := metaDataFields.Transform(template, zug)
	if err != nil {
		return err
	}

	log.Debug().Strs("fields", changed).Str("metadata", metaData.Path).Msg("Applied meta data")
	return nil
}
