package config

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/zusitools/fahrplangen/pkg/zusi"
)

var ErrInvalidConfig = errors.New("invalid config")

// ZusiEnvironment is the root of a generator configuration file.
type ZusiEnvironment struct {
	XMLName xml.Name `xml:"ZusiEnvironment" yaml:"-"`

	DataDir  string         `xml:"dataDir,attr" yaml:"dataDir"`
	Fahrplan FahrplanConfig `xml:"Fahrplan" yaml:"fahrplan"`
}

type FahrplanConfig struct {
	GenerateAt   string      `xml:"generateAt,attr" yaml:"generateAt"`
	GenerateFrom string      `xml:"generateFrom,attr" yaml:"generateFrom"`
	Zuege        []ZugConfig `xml:"Train" yaml:"trains"`
}

type ZugConfig struct {
	Nummer  string `xml:"nummer,attr" yaml:"nummer"`
	Gattung string `xml:"gattung,attr" yaml:"gattung"`

	Route        []RoutePartConfig   `xml:"Route>RoutePart" yaml:"route"`
	RollingStock *RollingStockConfig `xml:"RollingStock" yaml:"rollingStock"`
	MetaData     *MetaDataConfig     `xml:"MetaData" yaml:"metaData"`
	CopyDelay    *CopyDelayConfig    `xml:"CopyDelay" yaml:"copyDelay"`
}

func (z *ZugConfig) Name() string {
	return z.Gattung + " " + z.Nummer
}

// RoutePartConfig has exactly one source; see Source.
type RoutePartConfig struct {
	TrainFileByPath     *TrainFileByPath     `xml:"TrainFileByPath" yaml:"trainFileByPath"`
	TrainConfigByNummer *TrainConfigByNummer `xml:"TrainConfigByNummer" yaml:"trainConfigByNummer"`

	StartAction   *StartAction   `xml:"startAction,attr,omitempty" yaml:"startAction"`
	TimeFix       *TimeFix       `xml:"TimeFix" yaml:"timeFix"`
	ApplySchedule *ApplySchedule `xml:"ApplySchedule" yaml:"applySchedule"`
}

type RoutePartSource interface {
	isRoutePartSource()
}

type TrainFileByPath struct {
	Path string `xml:"path,attr" yaml:"path"`
}

type TrainConfigByNummer struct {
	Nummer string `xml:"nummer,attr" yaml:"nummer"`
}

func (*TrainFileByPath) isRoutePartSource()     {}
func (*TrainConfigByNummer) isRoutePartSource() {}

func (r *RoutePartConfig) Source() (RoutePartSource, error) {
	switch {
	case r.TrainFileByPath != nil && r.TrainConfigByNummer != nil:
		return nil, fmt.Errorf("%w: route part has more than one source", ErrInvalidConfig)
	case r.TrainFileByPath != nil:
		return r.TrainFileByPath, nil
	case r.TrainConfigByNummer != nil:
		return r.TrainConfigByNummer, nil
	default:
		return nil, fmt.Errorf("%w: route part has no source", ErrInvalidConfig)
	}
}

type StartAction string

const (
	StartActionReverse   StartAction = "Reverse"
	StartActionCabChange StartAction = "CabChange"
)

func (s *StartAction) UnmarshalText(text []byte) error {
	switch value := StartAction(strings.TrimSpace(string(text))); value {
	case StartActionReverse, StartActionCabChange:
		*s = value
		return nil
	default:
		return fmt.Errorf("%w: unknown start action %q", ErrInvalidConfig, string(text))
	}
}

func (s StartAction) Aktion() zusi.StartAktion {
	switch s {
	case StartActionReverse:
		return zusi.StartAktionRichtungswechsel
	case StartActionCabChange:
		return zusi.StartAktionFuehrerstandswechsel
	default:
		return zusi.StartAktionKeine
	}
}

type TimeFixType string

const (
	TimeFixStartAbf TimeFixType = "StartAbf"
	TimeFixEndAnk   TimeFixType = "EndAnk"
)

func (t *TimeFixType) UnmarshalText(text []byte) error {
	switch value := TimeFixType(strings.TrimSpace(string(text))); value {
	case TimeFixStartAbf, TimeFixEndAnk:
		*t = value
		return nil
	default:
		return fmt.Errorf("%w: unknown time fix type %q", ErrInvalidConfig, string(text))
	}
}

// TimeFix pins the first departure or the last arrival of a route part.
type TimeFix struct {
	Type  TimeFixType   `xml:"type,attr" yaml:"type"`
	Value zusi.DateTime `xml:"value,attr" yaml:"value"`
}

type ApplySchedule struct {
	Path string `xml:"path,attr" yaml:"path"`
}

type RollingStockConfig struct {
	Path string `xml:"path,attr" yaml:"path"`
}

type MetaDataConfig struct {
	Path string `xml:"path,attr" yaml:"path"`
}

type CopyDelayConfig struct {
	Tasks []CopyDelayTask `xml:"CopyDelayTask" yaml:"tasks"`
}

type CopyDelayTask struct {
	Delay        Duration            `xml:"delay,attr" yaml:"delay"`
	Count        uint                `xml:"count,attr" yaml:"count"`
	Increment    int64               `xml:"increment,attr" yaml:"increment"`
	RollingStock *RollingStockConfig `xml:"RollingStock" yaml:"rollingStock"`
}
