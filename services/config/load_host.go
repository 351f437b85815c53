//go:build !tinygo

package config

import (
	"bytes"
	"os"

	yaml "go.yaml.in/yaml/v3"

	"picobutton-go/errcode"
	"picobutton-go/types"
)

// Load reads a YAML board file. Fields left out keep the values of the
// built-in board it names (or the default board). Unknown keys are rejected.
func Load(path string) (types.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Board{}, &errcode.E{C: errcode.ConfigurationError, Op: "config.load", Msg: path, Err: err}
	}
	return Parse(data)
}

// Parse decodes YAML board data over the built-in defaults and validates it.
func Parse(data []byte) (types.Board, error) {
	const op = "config.parse"

	var head struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return types.Board{}, &errcode.E{C: errcode.ConfigurationError, Op: op, Msg: "yaml", Err: err}
	}
	b := Default()
	if head.Name != "" {
		if base, ok := EmbeddedConfigLookup(head.Name); ok {
			b = base
		}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return types.Board{}, &errcode.E{C: errcode.ConfigurationError, Op: op, Msg: "yaml", Err: err}
	}
	if err := Validate(b); err != nil {
		return types.Board{}, err
	}
	return b, nil
}
