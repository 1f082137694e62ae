package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/furylabs/fury-go/pkg/constants"
)

// Config holds the application configuration loaded from flags,
// environment variables, .env files, and the config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	JSON    bool

	// Config file
	ConfigFile string

	// API configuration
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// Logging configuration
	LogLevel string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (handled by cobra)
//  2. Environment variables (FURY_API_URL, FURY_API_KEY)
//  3. .env files
//  4. Config file (~/.fury.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	// .env files load before Viper env binding
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	for _, key := range []string{"FURY_API_URL", "FURY_API_KEY"} {
		_ = viper.BindEnv(key)
	}

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".fury")
		}
	}

	// Config file is optional
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		JSON:    viper.GetBool("json"),

		ConfigFile: viper.ConfigFileUsed(),

		BaseURL: viper.GetString("FURY_API_URL"),
		APIKey:  viper.GetString("FURY_API_KEY"),
		Timeout: viper.GetDuration("timeout"),

		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if config.BaseURL == "" {
		config.BaseURL = constants.DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = constants.DefaultHTTPTimeout
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags so
// flag values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor, jsonOut bool, baseURL, apiKey, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	c.JSON = jsonOut
	if baseURL != "" {
		c.BaseURL = baseURL
	}
	if apiKey != "" {
		c.APIKey = apiKey
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default
// if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
