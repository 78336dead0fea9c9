package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AuthConfig controls the optional single-user bearer auth. When Enabled is
// false the API is open, matching a private local deployment.
type AuthConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Secret          string        `mapstructure:"secret"`
	PasswordHash    string        `mapstructure:"password_hash"` // bcrypt hash of the access password
	TokenExpiration time.Duration `mapstructure:"token_expiration"`
}

type LogConfig struct {
	Development bool `mapstructure:"development"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment overrides: server.address -> SERVER_ADDRESS, etc.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.path", "database/workout-planner.db3")
	viper.SetDefault("auth.enabled", false)
	viper.SetDefault("auth.token_expiration", "24h")
	viper.SetDefault("log.development", true)

	err = viper.ReadInConfig()
	// A missing config file is fine; defaults plus env vars carry the app.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
