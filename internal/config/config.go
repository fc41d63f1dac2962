// README: Config loader with viper defaults and MISHWAR_* env overrides.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type RideConfig struct {
	// RequestTTL is how long an unaccepted ride request stays visible.
	RequestTTL time.Duration
	// ExpiryTickSeconds is how often the expiry sweep runs.
	ExpiryTickSeconds int
}

type Config struct {
	HTTP struct {
		Addr         string
		TemplateGlob string
	}
	Ride RideConfig
}

// Load reads config.yaml from the working directory when present and lets
// MISHWAR_* environment variables override every key.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("http.addr", ":5000")
	v.SetDefault("http.template_glob", "web/templates/*.html")
	v.SetDefault("ride.request_ttl_minutes", 15)
	v.SetDefault("ride.expiry_tick_seconds", 30)

	v.SetEnvPrefix("MISHWAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Missing file is fine, env and defaults carry the config.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.HTTP.TemplateGlob = v.GetString("http.template_glob")
	cfg.Ride.RequestTTL = time.Duration(v.GetInt("ride.request_ttl_minutes")) * time.Minute
	cfg.Ride.ExpiryTickSeconds = v.GetInt("ride.expiry_tick_seconds")
	return cfg, nil
}
