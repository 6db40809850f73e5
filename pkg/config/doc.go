// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Loads values from one or more `.env` files (the default `.env` in the
//     current working directory is loaded automatically when present).
//   - Parses the environment into any Go struct using field tags.
//   - Returns a fresh value on every call. There is no process-wide cache,
//     configuration is passed explicitly to the components that need it.
//
// # Usage
//
//	type ContentConfig struct {
//	    Dir      string `env:"CONTENT_DIR" envDefault:"./content"`
//	    CacheTTL time.Duration `env:"CONTENT_CACHE_TTL" envDefault:"5m"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var cfg ContentConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Tests can parse from a map instead of the process environment:
//
//	err := config.Load(&cfg, config.WithEnvironment(map[string]string{
//	    "CONTENT_DIR": t.TempDir(),
//	}))
//
// # Error Handling
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicit `.env` file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
