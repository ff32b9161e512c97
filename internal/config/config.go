package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the Guestlist server and its dependencies.
type Config struct {
	// Listen is the address the Guestlist server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// SessionKey is the key used to encrypt session data.
	SessionKey string `yaml:"session_key" mapstructure:"session_key"`
	// SessionMaxAge is the maximum age of a session in seconds.
	SessionMaxAge int `yaml:"session_max_age" mapstructure:"session_max_age"`
	// SweepSchedule is the cron schedule for the orphaned registration sweep
	// (e.g., "0 3 * * *" for every night at 3am).
	SweepSchedule string `yaml:"sweep_schedule" mapstructure:"sweep_schedule"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the path to the database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Configure Viper
	v.SetConfigType("yaml")
	v.SetEnvPrefix("GUESTLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		// Use specific config file
		v.SetConfigFile(path)
	} else {
		// Search for config in common locations
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.guestlist")
		v.AddConfigPath("/etc/guestlist")
	}

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("Environment variables with the GUESTLIST_ prefix override config file values")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	sanitizeConfig(&c)

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:3003")
	v.SetDefault("session_key", "")
	v.SetDefault("session_max_age", 172800) // 48 hours
	v.SetDefault("sweep_schedule", "0 3 * * *")

	// Database defaults
	v.SetDefault("database.path", "./data/guestlist.db")
}

// validateConfig validates the configuration.
func validateConfig(c *Config) error {
	if c == nil {
		return fmt.Errorf("missing guestlist config")
	}

	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}

	if c.SessionKey == "" {
		return fmt.Errorf("session key is required")
	}

	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("session max age must be greater than 0")
	}

	// Basic validation for cron format (5 fields)
	cronFields := strings.Fields(c.SweepSchedule)
	if len(cronFields) != 5 {
		return fmt.Errorf("sweep schedule must be a valid cron expression with 5 fields (minute hour day month weekday)")
	}

	if c.Database == nil || c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	return nil
}

// sanitizeConfig sanitizes the configuration values.
func sanitizeConfig(c *Config) {
	if c == nil {
		return
	}

	c.Listen = strings.TrimSpace(c.Listen)
	if c.Database != nil {
		c.Database.Path = strings.TrimSpace(c.Database.Path)
	}
}
