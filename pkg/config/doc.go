// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default .env file in the working directory is read once per process
//     (a missing file is fine), and LoadEnv reads explicit files;
//   - Load parses the environment into any struct annotated with env tags;
//   - every parsed type is cached per prefix, so repeated calls are cheap.
//
// # Usage
//
//	type Config struct {
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("SFVALIDATE_")); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors can be compared with errors.Is:
//
//   - ErrParsingConfig: the environment could not be parsed into the struct.
//   - ErrLoadingEnvFile: an explicit .env file could not be read.
//   - ErrNilPointer: a nil pointer was passed to Load.
//
// # Testing
//
// ResetCache clears all cached values and Reload re-parses a single type after
// the environment changed.
package config
