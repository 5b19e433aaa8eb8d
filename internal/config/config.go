// Package config loads server configuration from the environment, an
// optional .env file and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds server configuration.
type Config struct {
	Addr      string `env:"YELLOWCAR_ADDR"       envDefault:":8080"`
	PublicURL string `env:"YELLOWCAR_PUBLIC_URL"`
	LogLevel  string `env:"LOG_LEVEL"            envDefault:"info"`

	DBDriver    string `env:"YELLOWCAR_DB_DRIVER"    envDefault:"sqlite"`
	DBPath      string `env:"YELLOWCAR_DB_PATH"      envDefault:"./data/yellowcar.db"`
	PostgresDSN string `env:"YELLOWCAR_POSTGRES_DSN"`

	BlobDir        string        `env:"YELLOWCAR_BLOB_DIR"         envDefault:"./data/blobs"`
	UploadTTL      time.Duration `env:"YELLOWCAR_UPLOAD_TTL"       envDefault:"15m"`
	MaxUploadBytes int64         `env:"YELLOWCAR_MAX_UPLOAD_BYTES" envDefault:"10485760"`

	StaticDir string `env:"YELLOWCAR_STATIC_DIR" envDefault:"./static"`

	JWTSecret  string        `env:"YELLOWCAR_JWT_SECRET"`
	SessionTTL time.Duration `env:"YELLOWCAR_SESSION_TTL" envDefault:"168h"`

	ShutdownTimeout time.Duration `env:"YELLOWCAR_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsEnabled  bool          `env:"YELLOWCAR_METRICS"          envDefault:"true"`
}

// envFile returns the dotenv file to load, ".env" unless overridden.
func envFile() string {
	if path := os.Getenv("YELLOWCAR_ENV_FILE"); path != "" {
		return path
	}
	return ".env"
}

// Load reads the dotenv file if present, then the environment, then flags.
// Variables already set in the environment win over the dotenv file.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	if err := godotenv.Load(envFile()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.PublicURL, "public-url", cfg.PublicURL, "public origin used in upload and image URLs")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "storage driver: sqlite or postgres")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite database path")
	fs.StringVar(&cfg.PostgresDSN, "postgres-dsn", cfg.PostgresDSN, "postgres connection string")
	fs.StringVar(&cfg.BlobDir, "blob-dir", cfg.BlobDir, "directory for uploaded images")
	fs.StringVar(&cfg.StaticDir, "static", cfg.StaticDir, "directory of frontend assets")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration and fills in derived defaults.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return errors.New("sqlite requires a database path")
		}
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return errors.New("postgres requires YELLOWCAR_POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("unknown db driver %q", c.DBDriver)
	}

	if c.UploadTTL <= 0 {
		return errors.New("upload TTL must be positive")
	}
	if c.SessionTTL <= 0 {
		return errors.New("session TTL must be positive")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("max upload bytes must be positive")
	}

	if c.PublicURL == "" {
		c.PublicURL = defaultPublicURL(c.Addr)
	}
	u, err := url.Parse(c.PublicURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid public URL %q", c.PublicURL)
	}
	c.PublicURL = strings.TrimRight(c.PublicURL, "/")
	return nil
}

func defaultPublicURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
