package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
}

type AppConfig struct {
	Env      string
	LogLevel string
}

type StoreConfig struct {
	DataDir string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "dev")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATA_DIR", "data")

	// A missing .env is fine; configuration then comes from the
	// environment and the defaults alone.
	_ = viper.ReadInConfig()

	config := &Config{
		App: AppConfig{
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			DataDir: viper.GetString("DATA_DIR"),
		},
	}

	return config, nil
}
