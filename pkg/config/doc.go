// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for optional .env files. Each configuration type
// is parsed once per process and then served from memory, which matches how
// the service treats its settings: read at startup, immutable afterwards.
//
//	var cfg secret.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Use Reset in tests after changing the environment.
package config
