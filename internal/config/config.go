package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	Development Mode = "development"
	Production  Mode = "production"
	Test        Mode = "test"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

type StoreConfig struct {
	Driver        string        `yaml:"driver"`
	DatabaseURL   string        `yaml:"database_url"`
	MongoURI      string        `yaml:"mongo_uri"`
	MongoDatabase string        `yaml:"mongo_database"`
	MaxOpen       int           `yaml:"max_open"`
	MaxIdle       int           `yaml:"max_idle"`
	MaxLifetime   time.Duration `yaml:"max_lifetime"`
}

type ServerConfig struct {
	BodyLimit       int64         `yaml:"body_limit"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Config is resolved once at startup and passed by value.
type Config struct {
	Port   int          `yaml:"port"`
	Env    Mode         `yaml:"env"`
	Store  StoreConfig  `yaml:"store"`
	Server ServerConfig `yaml:"server"`
}

func Default() Config {
	return Config{
		Port: 3000,
		Env:  Development,
		Store: StoreConfig{
			Driver:        DriverPostgres,
			MongoDatabase: "goposts",
			MaxOpen:       25,
			MaxIdle:       25,
			MaxLifetime:   5 * time.Minute,
		},
		Server: ServerConfig{
			BodyLimit:       100 << 10,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// Load resolves the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment variables read through getenv.
// The result is validated.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal([]byte(expandEnv(string(data), getenv)), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	var errs []error

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("PORT: %q is not a number", v))
		} else {
			cfg.Port = port
		}
	}
	if v := getenv("APP_ENV"); v != "" {
		cfg.Env = Mode(v)
	}

	setString(&cfg.Store.Driver, getenv("STORE_DRIVER"))
	setString(&cfg.Store.DatabaseURL, getenv("DATABASE_URL"))
	setString(&cfg.Store.MongoURI, getenv("MONGO_URI"))
	setString(&cfg.Store.MongoDatabase, getenv("MONGO_DATABASE"))

	errs = append(errs,
		setInt(&cfg.Store.MaxOpen, "DB_MAX_OPEN", getenv),
		setInt(&cfg.Store.MaxIdle, "DB_MAX_IDLE", getenv),
		setDuration(&cfg.Store.MaxLifetime, "DB_MAX_LIFETIME", getenv),
		setDuration(&cfg.Server.ShutdownTimeout, "SHUTDOWN_TIMEOUT", getenv),
	)

	if v := getenv("BODY_LIMIT"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("BODY_LIMIT: %q is not a number", v))
		} else {
			cfg.Server.BodyLimit = n
		}
	}

	return errors.Join(errs...)
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range 1-65535", c.Port))
	}

	switch c.Env {
	case Development, Production, Test:
	default:
		errs = append(errs, fmt.Errorf("env %q must be one of development, production, test", c.Env))
	}

	switch c.Store.Driver {
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			errs = append(errs, errors.New("database_url is required for the postgres store (set DATABASE_URL)"))
		}
	case DriverMongo:
		if c.Store.MongoURI == "" {
			errs = append(errs, errors.New("mongo_uri is required for the mongo store (set MONGO_URI)"))
		}
		if c.Store.MongoDatabase == "" {
			errs = append(errs, errors.New("mongo_database must not be empty"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("store driver %q must be one of postgres, mongo, memory", c.Store.Driver))
	}

	if c.Server.BodyLimit <= 0 {
		errs = append(errs, fmt.Errorf("body_limit must be positive, got %d", c.Server.BodyLimit))
	}

	return errors.Join(errs...)
}

// Debug reports whether per-layer tracing should be logged.
func (c Config) Debug() bool {
	return c.Env == Development
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string, getenv func(string) string) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %q is not a number", key, v)
	}
	*dst = i
	return nil
}

// setDuration accepts Go durations ("90s", "5m") or bare seconds ("300").
func setDuration(dst *time.Duration, key string, getenv func(string) string) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		*dst = time.Duration(secs) * time.Second
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %q is not a duration", key, v)
	}
	*dst = d
	return nil
}

func expandEnv(s string, getenv func(string) string) string {
	return os.Expand(s, func(key string) string {
		return getenv(strings.TrimSpace(key))
	})
}
