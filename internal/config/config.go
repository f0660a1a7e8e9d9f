// Package config loads the application configuration from a YAML file and
// applies environment variable overrides declared through struct env tags.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/homenest/HomeNest_Backend/internal/constants"
)

// AppConfig represents the entire application configuration.
type AppConfig struct {
	App          AppSettings      `yaml:"app"`
	Database     DatabaseSettings `yaml:"database"`
	Server       ServerSettings   `yaml:"server"`
	Session      SessionSettings  `yaml:"session"`
	Logging      LoggingSettings  `yaml:"logging"`
	CORS         CORSSettings     `yaml:"cors"`
	PasswordHash HashSettings     `yaml:"password_hash"`
	ImageUpload  UploadSettings   `yaml:"image_upload"`
}

// AppSettings contains general application settings.
type AppSettings struct {
	Environment string `yaml:"environment" env:"APP_ENV"`
	Name        string `yaml:"name" env:"APP_NAME"`
	Version     string `yaml:"version" env:"APP_VERSION"`
}

// DatabaseSettings contains PostgreSQL connection settings.
type DatabaseSettings struct {
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT"`
	Name     string `yaml:"name" env:"DB_NAME"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	SSLMode  string `yaml:"ssl_mode" env:"DB_SSL_MODE"`
	MaxConns int    `yaml:"max_conns" env:"DB_MAX_CONNS"`
	MinConns int    `yaml:"min_conns" env:"DB_MIN_CONNS"`
}

// ServerSettings contains HTTP server settings.
type ServerSettings struct {
	Host            string        `yaml:"host" env:"SERVER_HOST"`
	Port            int           `yaml:"port" env:"SERVER_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// SessionSettings contains the server-side session parameters.
type SessionSettings struct {
	TTL           time.Duration `yaml:"ttl" env:"SESSION_TTL"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL"`
	CookieSecure  bool          `yaml:"cookie_secure" env:"SESSION_COOKIE_SECURE"`
}

// LoggingSettings contains logging configuration.
type LoggingSettings struct {
	Level      string `yaml:"level" env:"LOG_LEVEL"`
	Format     string `yaml:"format" env:"LOG_FORMAT"`
	RequestLog bool   `yaml:"request_log" env:"LOG_REQUESTS"`
}

// CORSSettings contains CORS configuration.
type CORSSettings struct {
	AllowedOrigins   []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS"`
	AllowCredentials bool     `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
}

// HashSettings contains Argon2id password hashing parameters.
type HashSettings struct {
	Memory      uint32 `yaml:"memory" env:"HASH_MEMORY"`
	Iterations  uint32 `yaml:"iterations" env:"HASH_ITERATIONS"`
	Parallelism uint8  `yaml:"parallelism" env:"HASH_PARALLELISM"`
	SaltLength  uint32 `yaml:"salt_length" env:"HASH_SALT_LENGTH"`
	KeyLength   uint32 `yaml:"key_length" env:"HASH_KEY_LENGTH"`
}

// UploadSettings configures the external image upload collaborator.
type UploadSettings struct {
	Endpoint     string        `yaml:"endpoint" env:"UPLOAD_ENDPOINT"`
	UploadPreset string        `yaml:"upload_preset" env:"UPLOAD_PRESET"`
	EagerWidth   int           `yaml:"eager_width" env:"UPLOAD_EAGER_WIDTH"`
	Timeout      time.Duration `yaml:"timeout" env:"UPLOAD_TIMEOUT"`
}

// ConnectionString returns the PostgreSQL connection string.
func (dbs *DatabaseSettings) ConnectionString() string {
	sslMode := dbs.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbs.Host, dbs.Port, dbs.User, dbs.Password, dbs.Name, sslMode,
	)
}

// ServerAddress returns the complete server address.
func (ss *ServerSettings) ServerAddress() string {
	return fmt.Sprintf("%s:%d", ss.Host, ss.Port)
}

// IsDevelopment checks if the application is running in development mode.
func (as *AppSettings) IsDevelopment() bool {
	return strings.ToLower(as.Environment) == constants.EnvDevelopment
}

// IsProduction checks if the application is running in production mode.
func (as *AppSettings) IsProduction() bool {
	return strings.ToLower(as.Environment) == constants.EnvProduction
}

// IsTesting checks if the application is running in testing mode.
func (as *AppSettings) IsTesting() bool {
	return strings.ToLower(as.Environment) == constants.EnvTesting
}

// Load loads the configuration from a config file and environment variables.
// A missing file is not fatal; defaults plus environment overrides apply.
func Load(configPath string) (*AppConfig, error) {
	config := &AppConfig{}

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
		log.Info().Str("path", configPath).Msg("Configuration loaded from file")
	} else {
		log.Warn().Str("path", configPath).Msg("Config file not found, using defaults and environment")
	}

	applyDefaults(config)

	if err := LoadEnv(config); err != nil {
		return nil, fmt.Errorf("error applying environment overrides: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyDefaults fills in defaults for anything the file left unset.
func applyDefaults(config *AppConfig) {
	if config.App.Environment == "" {
		config.App.Environment = constants.EnvDevelopment
	}
	if config.App.Name == "" {
		config.App.Name = "homenest-api"
	}
	if config.App.Version == "" {
		config.App.Version = "1.0.0"
	}
	if config.Database.Host == "" {
		config.Database.Host = "localhost"
	}
	if config.Database.Port == 0 {
		config.Database.Port = 5432
	}
	if config.Database.MaxConns == 0 {
		config.Database.MaxConns = 20
	}
	if config.Database.MinConns == 0 {
		config.Database.MinConns = 2
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = 15 * time.Second
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = 30 * time.Second
	}
	if config.Server.ShutdownTimeout == 0 {
		config.Server.ShutdownTimeout = 10 * time.Second
	}
	if config.Session.TTL == 0 {
		config.Session.TTL = 7 * 24 * time.Hour
	}
	if config.Session.SweepInterval == 0 {
		config.Session.SweepInterval = time.Hour
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "json"
	}
	if config.PasswordHash.Memory == 0 {
		config.PasswordHash.Memory = 64 * 1024
	}
	if config.PasswordHash.Iterations == 0 {
		config.PasswordHash.Iterations = 3
	}
	if config.PasswordHash.Parallelism == 0 {
		config.PasswordHash.Parallelism = 2
	}
	if config.PasswordHash.SaltLength == 0 {
		config.PasswordHash.SaltLength = 16
	}
	if config.PasswordHash.KeyLength == 0 {
		config.PasswordHash.KeyLength = 32
	}
	if config.ImageUpload.EagerWidth == 0 {
		config.ImageUpload.EagerWidth = 500
	}
	if config.ImageUpload.Timeout == 0 {
		config.ImageUpload.Timeout = 30 * time.Second
	}
}

// validateConfig rejects configurations that cannot produce a working server.
func validateConfig(config *AppConfig) error {
	if config.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}
	if config.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	return nil
}
