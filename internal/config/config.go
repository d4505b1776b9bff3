package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
}

type AppConfig struct {
	Addr     string
	Env      string
	LogLevel string
}

type StoreConfig struct {
	BookingsFile string
}

// Load reads configuration from the environment. Every setting has a
// default, so a bare process starts with a local data file on :8080.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("APP_ADDR", ":8080")
	viper.SetDefault("APP_ENV", "dev")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BOOKINGS_FILE", "bookings_data.csv")

	cfg := &Config{
		App: AppConfig{
			Addr:     viper.GetString("APP_ADDR"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			BookingsFile: viper.GetString("BOOKINGS_FILE"),
		},
	}
	return cfg, nil
}
