package config

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

func ParseYAML(content []byte) (*ZusiEnvironment, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	var environment ZusiEnvironment
	if err := decoder.Decode(&environment); err != nil {
		return nil, err
	}

	return &environment, nil
}
