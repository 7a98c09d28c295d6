package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// AppConfig is the complete environment-sourced configuration. Every value
// comes from the process environment; cmd/server loads a local .env file
// before this is processed.
type AppConfig struct {
	System   SystemConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Smtp     SmtpConfig
}

type SystemConfig struct {
	Listen string `envconfig:"LISTEN" default:":8000"`
}

type LoggerConfig struct {
	// Mode selects the zap preset, "development" or "production".
	Mode       string `envconfig:"LOG_MODE" default:"development"`
	FileEnable bool   `envconfig:"LOG_FILE_ENABLE" default:"false"`
	Filename   string `envconfig:"LOG_FILENAME" default:"catalog-service.log"`
}

type DatabaseConfig struct {
	// URL overrides the individual POSTGRES_* parts when set.
	URL      string `envconfig:"DATABASE_URL"`
	Host     string `envconfig:"POSTGRES_HOST" default:"127.0.0.1"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER" default:"postgres"`
	Password string `envconfig:"POSTGRES_PASSWORD"`
	Name     string `envconfig:"POSTGRES_DB" default:"catalog"`
	MaxConn  int    `envconfig:"POSTGRES_MAX_CONN" default:"50"`
	IdleConn int    `envconfig:"POSTGRES_IDLE_CONN" default:"10"`
	Debug    bool   `envconfig:"POSTGRES_DEBUG" default:"false"`
}

// DSN returns the connection string handed to the postgres driver.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.Host, c.User, c.Password, c.Name, c.Port)
}

type SmtpConfig struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT"`
	Username string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASS"`
	// From defaults to Username when unset, see Sender().
	From string `envconfig:"FROM_EMAIL"`
	// AdminEmail is the notification recipient.
	AdminEmail string `envconfig:"ADMIN_EMAIL" default:"BATYSKURYLYSXXI@gmail.com"`
}

// Sender resolves the From address: explicit FROM_EMAIL, then the SMTP
// username, then the admin address itself.
func (c SmtpConfig) Sender() string {
	if c.From != "" {
		return c.From
	}
	if c.Username != "" {
		return c.Username
	}
	return c.AdminEmail
}

// Configured reports whether enough relay settings are present to attempt a
// send. Notification delivery is best-effort infrastructure; an unconfigured
// relay is not an error.
func (c SmtpConfig) Configured() bool {
	return c.Host != "" && c.Port != 0 && c.AdminEmail != ""
}

// Load reads the full configuration from the environment.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "process environment config")
	}
	return &cfg, nil
}
