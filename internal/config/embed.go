package config

import _ "embed"

// DefaultConfigYAML is written to disk when no config file exists yet.
//
//go:embed config.example.yaml
var DefaultConfigYAML []byte
