package config

import (
	"fmt"
	"time"

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

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Invitation configuration. Code length is fixed by the data model, only
	// the validity window is tunable.
	InvitationTTLHours int `mapstructure:"INVITATION_TTL_HOURS"`
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
	viper.SetDefault("DB_NAME", "fleet_supply")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Invitation defaults: codes are valid for 7 days
	viper.SetDefault("INVITATION_TTL_HOURS", 168)
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
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.InvitationTTLHours <= 0 {
		return fmt.Errorf("INVITATION_TTL_HOURS must be positive")
	}

	return nil
}

// InvitationTTL returns the validity window for newly issued invitation codes
func (c *Config) InvitationTTL() time.Duration {
	return time.Duration(c.InvitationTTLHours) * time.Hour
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
