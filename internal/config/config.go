package config

import (
	"strings"

	"github.com/spf13/viper"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

type Config struct {
	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres struct {
		URL string
	} `mapstructure:"postgres"`

	Redis struct {
		Addr string
	} `mapstructure:"redis"`

	Assistant struct {
		APIKey string `mapstructure:"api_key"`
	} `mapstructure:"assistant"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

// Load reads configuration from the optional config file and the
// environment. Environment variables win: ATELIER_HTTP_ADDR,
// ATELIER_POSTGRES_URL, ATELIER_REDIS_ADDR, ATELIER_ASSISTANT_API_KEY,
// ATELIER_METRICS_ENABLED.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ATELIER")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("metrics.enabled", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
