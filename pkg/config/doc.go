// Package config fills configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Config struct {
//	    Settings nip.Settings      `envPrefix:"NIP_"`
//	    HTTP     httpserver.Config
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithEnvFiles(".env")); err != nil {
//	    return err
//	}
//
// WithPrefix prepends a prefix to every variable name, which lets several
// binaries share one environment. WithEnvironment replaces the process
// environment with a map and is meant for tests.
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// checked with errors.Is.
package config
