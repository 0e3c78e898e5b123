package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG"

// Rating store backends
const (
	BackendFile    = "file"
	BackendLevelDB = "leveldb"
	BackendMemory  = "memory"
)

// Config holds all configuration for the application.
// Values come from defaults, an optional config file, a .env file and
// environment variables, in increasing priority.
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Ratings   RatingsConfig
	Messaging MessagingConfig
	LogLevel  string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type AuthConfig struct {
	APIKeys []string // Empty disables API key authentication
}

type RatingsConfig struct {
	Backend string
	Path    string
}

type MessagingConfig struct {
	WhatsAppNumber string
}

// environment variable for each config key
var envBindings = map[string]string{
	"port":             "PORT",
	"host":             "HOST",
	"read_timeout":     "READ_TIMEOUT",
	"write_timeout":    "WRITE_TIMEOUT",
	"shutdown_timeout": "SHUTDOWN_TIMEOUT",
	"log_level":        "LOG_LEVEL",
	"api_keys":         "API_KEYS",
	"ratings.backend":  "RATINGS_BACKEND",
	"ratings.path":     "RATINGS_PATH",
	"whatsapp_number":  "WHATSAPP_NUMBER",
}

// Load reads configuration from command line args (without the program name)
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("storefront", pflag.ContinueOnError)
	configFile := flags.String("config", "", "config file (yaml, json or toml)")
	envFile := flags.String("env-file", ".env", "dotenv file loaded into the environment")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", *envFile, err)
	}

	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	path := *configFile
	if env, ok := os.LookupEnv(configFileEnvName); ok && path == "" {
		path = env
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("port"),
			Host:            v.GetString("host"),
			ReadTimeout:     v.GetInt("read_timeout"),
			WriteTimeout:    v.GetInt("write_timeout"),
			ShutdownTimeout: v.GetInt("shutdown_timeout"),
		},
		Auth: AuthConfig{
			APIKeys: splitList(v.GetStringSlice("api_keys")),
		},
		Ratings: RatingsConfig{
			Backend: strings.ToLower(v.GetString("ratings.backend")),
			Path:    v.GetString("ratings.path"),
		},
		Messaging: MessagingConfig{
			WhatsAppNumber: v.GetString("whatsapp_number"),
		},
		LogLevel: v.GetString("log_level"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("read_timeout", 15)
	v.SetDefault("write_timeout", 15)
	v.SetDefault("shutdown_timeout", 30)
	v.SetDefault("log_level", "info")
	v.SetDefault("api_keys", []string{})
	v.SetDefault("ratings.backend", BackendFile)
	v.SetDefault("ratings.path", "data")
	v.SetDefault("whatsapp_number", "+5511991938761")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	switch c.Ratings.Backend {
	case BackendFile, BackendLevelDB:
		if c.Ratings.Path == "" {
			return fmt.Errorf("RATINGS_PATH is required for the %s backend", c.Ratings.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("invalid ratings backend: %s (must be file, leveldb, or memory)", c.Ratings.Backend)
	}

	if c.Messaging.WhatsAppNumber == "" {
		return fmt.Errorf("WHATSAPP_NUMBER is required")
	}

	return nil
}

// splitList flattens comma separated entries coming from the environment
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
