package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all panel configuration.
type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Panel   PanelConfig   `mapstructure:"panel"`
	Map     MapConfig     `mapstructure:"map"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServiceConfig struct {
	URL string `mapstructure:"url"`
}

type PanelConfig struct {
	// PastDays is how many days back the date pickers reach (inclusive).
	PastDays int `mapstructure:"past_days"`
}

type MapConfig struct {
	// Layer is an optional reference layer file loaded at startup.
	Layer     string  `mapstructure:"layer"`
	Zoom      int     `mapstructure:"zoom"`
	CenterLon float64 `mapstructure:"center_lon"`
	CenterLat float64 `mapstructure:"center_lat"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults; the map opens over the satellite's coverage area.
	v.SetDefault("service.url", "http://localhost:8000")
	v.SetDefault("panel.past_days", 3)
	v.SetDefault("map.zoom", 5)
	v.SetDefault("map.center_lon", 78.9629)
	v.SetDefault("map.center_lat", 20.5937)
	v.SetDefault("map.layer", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "tilelapse.log")

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment overrides: TILELAPSE_SERVICE_URL etc.
	v.SetEnvPrefix("TILELAPSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
