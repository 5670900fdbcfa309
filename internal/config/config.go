package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Admin      AdminConfig      `mapstructure:"admin"`
	Commission CommissionConfig `mapstructure:"commission"`
	Archive    ArchiveConfig    `mapstructure:"archive"`
	Client     ClientConfig     `mapstructure:"client"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// AdminConfig holds the admin sentinel. A single shared value guards the
// entire admin role; it is compared on every request, never issued as a token.
type AdminConfig struct {
	Code string `mapstructure:"code"`
}

// CommissionConfig holds the fallback commission credited per logged plan
// when a coach has no configured rate and the request carries no override.
type CommissionConfig struct {
	Default float64 `mapstructure:"default"`
}

// ArchiveConfig configures the optional S3-compatible bucket that exported
// plan PDFs are copied into. Export works without it; only archiving and
// share links need it.
type ArchiveConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// ClientConfig is used by the coach CLI, not the server.
type ClientConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	StatePath string `mapstructure:"state_path"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variable handling: nested keys map through the replacer,
	// e.g. server.address -> SERVER_ADDRESS, admin.code -> ADMIN_CODE.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "coach_builder")
	viper.SetDefault("admin.code", "ADMIN-99")
	viper.SetDefault("commission.default", 2)
	viper.SetDefault("archive.enabled", false)
	viper.SetDefault("archive.use_ssl", true)
	viper.SetDefault("client.base_url", "http://localhost:8080")
	viper.SetDefault("client.state_path", "coach-builder.db")

	err = viper.ReadInConfig()
	// Missing config file is fine; defaults and env vars carry the day.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
