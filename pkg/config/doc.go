// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//   - Load parses the environment into any struct with `env` tags and caches
//     the result per type.
//   - LoadEnv reads one or more .env files; later files win, variables already
//     present in the process are never overwritten.
//   - MustLoad and MustLoadEnv panic instead of returning errors.
//   - ResetCache and ForceReloadConfig exist for tests.
//
// # Usage
//
//	type Settings struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var s Settings
//	config.MustLoad(&s)
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be matched with errors.Is.
package config
