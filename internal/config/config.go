package config

import (
	"fmt"
	"path/filepath"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
)

// Config is read once at process start and handed to whoever needs it.
type Config struct {
	Port       string
	StaticPort string
	OutputDir  string
	StyleFile  string
	LogLevel   string
	LogFile    string
}

// Load returns the process configuration. envy has already read ./.env when
// the package initialized; ENV_FILE names one more file whose values win over both.
func Load() (Config, error) {
	if path := envy.Get("ENV_FILE", ""); path != "" {
		vars, err := godotenv.Read(path)
		if err != nil {
			return Config{}, fmt.Errorf("env file %s: %w", path, err)
		}
		for k, v := range vars {
			envy.Set(k, v)
		}
	}
	return FromEnv(), nil
}

// FromEnv reads the environment as already loaded; empty values count as unset.
func FromEnv() Config {
	return Config{
		Port:       getenv("API_PORT", "8081"),
		StaticPort: getenv("STATIC_PORT", "8080"),
		OutputDir:  getenv("OUTPUT_DIR", "charts"),
		StyleFile:  getenv("STYLE_FILE", ""),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		LogFile:    getenv("LOG_FILE", ""),
	}
}

// URLPrefix is the path stored charts are served under, e.g. "/charts".
func (c Config) URLPrefix() string {
	base := filepath.Base(filepath.Clean(c.OutputDir))
	if base == "." || base == string(filepath.Separator) {
		base = "charts"
	}
	return "/" + base
}

func getenv(k, def string) string {
	if v := envy.Get(k, ""); v != "" {
		return v
	}
	return def
}
