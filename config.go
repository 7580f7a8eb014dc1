package bulk

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults point at the local demo database: user/db "bulktest", password "password".
const (
	DefaultHost     = "localhost"
	DefaultPort     = "5432"
	DefaultUser     = "bulktest"
	DefaultPassword = "password"
	DefaultDatabase = "bulktest"
	DefaultTable    = "test"
	DefaultRows     = 10000
)

// Config for creating a Driver and a Bench.
type Config struct {
	Host     string
	Port     string
	User     string
	Database string
	Password string
	SSLMode  string // "disable", "require", "prefer"; empty leaves the libpq default

	// URL, when set, is used verbatim instead of the fields above.
	URL string

	Table string
	Rows  int
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// LoadDotEnv loads variables from the given .env files (".env" when none are
// given) without overriding the process environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ConfigFromEnv reads PG_* and BULK_* variables, falling back to the defaults.
func ConfigFromEnv() (Config, error) {
	rows, err := getEnvInt("BULK_ROWS", DefaultRows)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Host:     getEnv("PG_HOST", DefaultHost),
		Port:     getEnv("PG_PORT", DefaultPort),
		User:     getEnv("PG_USER", DefaultUser),
		Database: getEnv("PG_DATABASE", DefaultDatabase),
		Password: getEnv("PG_PASSWORD", DefaultPassword),
		SSLMode:  os.Getenv("PG_SSLMODE"),
		URL:      os.Getenv("DATABASE_URL"),
		Table:    getEnv("BULK_TABLE", DefaultTable),
		Rows:     rows,
	}
	return cfg, cfg.Validate()
}

// Validate reports the first missing or out-of-range setting.
func (c Config) Validate() error {
	if c.URL == "" {
		switch {
		case c.Host == "":
			return errors.New("config: host is required")
		case c.User == "":
			return errors.New("config: user is required")
		case c.Database == "":
			return errors.New("config: database is required")
		}
	}
	if c.Table == "" {
		return errors.New("config: table is required")
	}
	if c.Rows < 0 {
		return fmt.Errorf("config: rows must not be negative, got %d", c.Rows)
	}
	return nil
}

// DSN returns the connection string handed to pgx.
func (c Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   c.Host,
		Path:   "/" + c.Database,
	}
	if c.Port != "" {
		u.Host = net.JoinHostPort(c.Host, c.Port)
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.SSLMode}}.Encode()
	}
	return u.String()
}
