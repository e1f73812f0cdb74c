package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
)

// Load reads a configuration file. Files ending in .yaml or .yml are read as
// YAML, everything else as XML. A relative dataDir is resolved against the
// directory containing the configuration file.
func Load(path string) (*ZusiEnvironment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	var environment *ZusiEnvironment
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		environment, err = ParseYAML(content)
	default:
		environment, err = ParseXML(bytes.NewReader(content))
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if environment.DataDir == "" {
		environment.DataDir = "."
	}
	if !filepath.IsAbs(environment.DataDir) {
		configDir, err := filepath.Abs(filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		environment.DataDir = filepath.Join(configDir, environment.DataDir)
	}

	if err := environment.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	log.Debug().Str("path", path).Msg("Loaded config")
	if event := log.Debug(); event.Enabled() {
		event.Msg(pretty.Sprint(environment))
	}

	return environment, nil
}

func (e *ZusiEnvironment) Validate() error {
	if e.Fahrplan.GenerateAt == "" {
		return fmt.Errorf("%w: Fahrplan generateAt is required", ErrInvalidConfig)
	}
	if e.Fahrplan.GenerateFrom == "" {
		return fmt.Errorf("%w: Fahrplan generateFrom is required", ErrInvalidConfig)
	}

	for i := range e.Fahrplan.Zuege {
		if err := e.Fahrplan.Zuege[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (z *ZugConfig) Validate() error {
	if z.Gattung == "" || z.Nummer == "" {
		return fmt.Errorf("%w: train %q needs gattung and nummer", ErrInvalidConfig, z.Name())
	}
	if len(z.Route) == 0 {
		return fmt.Errorf("%w: train %s has no route parts", ErrInvalidConfig, z.Name())
	}
	for i := range z.Route {
		if _, err := z.Route[i].Source(); err != nil {
			return fmt.Errorf("train %s route part %d: %w", z.Name(), i+1, err)
		}
	}
	if z.RollingStock == nil || z.RollingStock.Path == "" {
		return fmt.Errorf("%w: train %s has no rolling stock", ErrInvalidConfig, z.Name())
	}
	if z.MetaData != nil && z.MetaData.Path == "" {
		return fmt.Errorf("%w: train %s has an empty meta data path", ErrInvalidConfig, z.Name())
	}
	if z.CopyDelay != nil {
		for i, task := range z.CopyDelay.Tasks {
			if task.RollingStock != nil && task.RollingStock.Path == "" {
				return fmt.Errorf("%w: train %s copy delay task %d has an empty rolling stock path", ErrInvalidConfig, z.Name(), i+1)
			}
		}
	}

	return nil
}
