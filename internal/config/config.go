package config

import (
	"os"

	"github.com/spf13/cast"
)

// Config holds global configuration values, read from the environment.
type Config struct {
	Addr         string
	DBPath       string
	TablePrefix  string
	JWTSecret    string
	SchemaFile   string
	EventsConfig string
	ExportDir    string
	LogJSON      bool
}

// Load reads configuration from environment variables, applying defaults.
func Load() Config {
	return Config{
		Addr:         cast.ToString(env("CMS_ADDR", ":8080")),
		DBPath:       cast.ToString(env("CMS_DB", "cms.db")),
		TablePrefix:  cast.ToString(env("TABLE_PREFIX", "cms_")),
		JWTSecret:    cast.ToString(env("JWT_SECRET", "")),
		SchemaFile:   cast.ToString(env("CMS_SCHEMA_FILE", "")),
		EventsConfig: cast.ToString(env("CMS_EVENTS_CONFIG", "")),
		ExportDir:    cast.ToString(env("CMS_EXPORT_DIR", "")),
		LogJSON:      cast.ToBool(env("CMS_LOG_JSON", false)),
	}
}

// T prefixes the given table name with the configured prefix.
func (c *Config) T(name string) string {
	return c.TablePrefix + name
}

func env(key string, def any) any {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
