// Package config loads configuration structs from environment variables.
//
// Load parses `env` struct tags via caarlos0/env after loading a .env
// file once per process when one exists. Defaults live in `envDefault`
// tags so a zero environment still yields a working configuration.
//
// # Usage
//
//	type CLIConfig struct {
//		LogLevel  string `env:"RECEIPTCHECK_LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"RECEIPTCHECK_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
package config
