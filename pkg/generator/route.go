package generator

import (
	"github.com/jinzhu/copier"
	"github.com/zusitools/fahrplangen/pkg/zusi"
)

// RouteStartData is taken from the first route part of a train.
type RouteStartData struct {
	FahrstrName *string
	Startmodus  *int
	Vorlauf     *float64
	SpAnfang    *float64
	KmStart     *float64
	GNTSpalte   *zusi.Flag
	Aktion      *zusi.StartAktion
}

type ResolvedRoute struct {
	StartData RouteStartData
	Eintraege []zusi.FahrplanEintrag
	Zeilen    []zusi.FplZeile
	MBrh      *float64
}

type ResolvedRoutePart struct {
	ResolvedRoute
	HasTimeFix bool
}

func clone[T any](source *T) (*T, error) {
	var destination T
	if err := copier.CopyWithOption(&destination, source, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &destination, nil
}
