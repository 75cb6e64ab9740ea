package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Assignment tuning
	HistoryLookback     int     `mapstructure:"ASSIGNMENT_HISTORY_LOOKBACK"`
	NewMemberBonus      float64 `mapstructure:"ASSIGNMENT_NEW_MEMBER_BONUS"`
	AvailabilityTimeout int     `mapstructure:"AVAILABILITY_TIMEOUT_MS"`

	// External calendar conflict oracle
	CalendarOracleURL     string `mapstructure:"CALENDAR_ORACLE_URL"`
	CalendarOracleTimeout int    `mapstructure:"CALENDAR_ORACLE_TIMEOUT_MS"`

	// Remote booking provider backend
	RemoteProviderURL     string `mapstructure:"REMOTE_PROVIDER_URL"`
	RemoteProviderAPIKey  string `mapstructure:"REMOTE_PROVIDER_API_KEY"`
	RemoteProviderTimeout int    `mapstructure:"REMOTE_PROVIDER_TIMEOUT_MS"`

	// Background booking sync
	SyncEnabled  bool   `mapstructure:"SYNC_ENABLED"`
	SyncSchedule string `mapstructure:"SYNC_SCHEDULE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "booking_scheduler")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Assignment defaults
	viper.SetDefault("ASSIGNMENT_HISTORY_LOOKBACK", 50)
	viper.SetDefault("ASSIGNMENT_NEW_MEMBER_BONUS", 1000000.0)
	viper.SetDefault("AVAILABILITY_TIMEOUT_MS", 3000)

	// Oracle defaults
	viper.SetDefault("CALENDAR_ORACLE_URL", "")
	viper.SetDefault("CALENDAR_ORACLE_TIMEOUT_MS", 1500)

	// Remote provider defaults
	viper.SetDefault("REMOTE_PROVIDER_URL", "")
	viper.SetDefault("REMOTE_PROVIDER_API_KEY", "")
	viper.SetDefault("REMOTE_PROVIDER_TIMEOUT_MS", 5000)

	// Sync defaults
	viper.SetDefault("SYNC_ENABLED", false)
	viper.SetDefault("SYNC_SCHEDULE", "@every 15m")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.HistoryLookback <= 0 {
		return fmt.Errorf("ASSIGNMENT_HISTORY_LOOKBACK must be positive")
	}

	if config.SyncEnabled && config.SyncSchedule == "" {
		return fmt.Errorf("SYNC_SCHEDULE is required when SYNC_ENABLED is set")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
