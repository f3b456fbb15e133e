// Package config loads typed configuration structs from environment
// variables, with optional .env bootstrap for local development.
//
// Parsing is driven by `env` struct tags (github.com/caarlos0/env) and
// each configuration type is loaded exactly once per process: the first
// Load caches the parsed value and subsequent calls return the cached
// copy, so independently initialized components agree on their settings.
//
// # Usage
//
//	type LogConfig struct {
//		Level  string `env:"LOG_LEVEL" envDefault:"info"`
//		Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	var cfg LogConfig
//	config.MustLoad(&cfg)
//
// Errors from Load wrap ErrParsingConfig and the underlying parser error
// via errors.Join, so both errors.Is checks and detailed messages work.
package config
