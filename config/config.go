package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/a48zhang/AIditor/pkg/logger"
)

const (
	configPathEnv = "AIDITOR_CONFIG"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type AuthConfig struct {
	APIKey string `yaml:"apiKey"`
}

// DatabaseConfig selects the driver and how to reach it. URL wins over the
// discrete Postgres fields when both are set.
type DatabaseConfig struct {
	Driver     string `yaml:"driver"`
	URL        string `yaml:"url"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Name       string `yaml:"name"`
	SSLMode    string `yaml:"sslMode"`
	SQLitePath string `yaml:"sqlitePath"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads an optional YAML file named by AIDITOR_CONFIG, then the .env file
// and process environment, which take precedence.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Sugar.Info("No .env file found, using environment variables from OS")
	}

	cfg := defaults()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Driver:     DriverPostgres,
			SSLMode:    "require",
			SQLitePath: "aiditor.db",
		},
		Log: LogConfig{Level: "info"},
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Port, "PORT")
	if origins := env("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = splitList(origins)
	}
	setString(&cfg.Auth.APIKey, "API_KEY")
	setString(&cfg.Log.Level, "LOG_LEVEL")

	db := &cfg.Database
	setString(&db.Driver, "DB_DRIVER")
	setString(&db.URL, "DATABASE_URL")
	setString(&db.User, "user")
	setString(&db.Password, "password")
	setString(&db.Host, "host")
	setString(&db.Port, "port")
	setString(&db.Name, "dbname")
	setString(&db.SSLMode, "DB_SSLMODE")
	setString(&db.SQLitePath, "SQLITE_PATH")
}

func (c Config) Validate() error {
	if c.Auth.APIKey == "" {
		return errors.New("config: API_KEY must be set")
	}
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.URL == "" && c.Database.Host == "" {
			return errors.New("config: postgres requires DATABASE_URL or host")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return errors.New("config: sqlite requires SQLITE_PATH")
		}
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.Database.Driver)
	}
	return nil
}

// DSN returns the data source name for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverSQLite {
		return d.SQLitePath
	}
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host,
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	if d.Port != "" {
		u.Host = d.Host + ":" + d.Port
	}
	return u.String()
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func setString(dst *string, key string) {
	if v := env(key); v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
