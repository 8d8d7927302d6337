package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	defaultConfigPath   = "config/config.yaml"
	defaultAddress      = ":4001"
	defaultDriver       = "mysql"
	defaultMaxIdleConns = 35
	defaultAccessTTL    = 20 * time.Hour
	defaultUserTTL      = 10 * time.Minute
)

type Config struct {
	Server struct {
		Address      string `yaml:"address"`
		ExposeErrors bool   `yaml:"expose_errors"`
	} `yaml:"server"`
	Database struct {
		Driver       string `yaml:"driver"`
		URL          string `yaml:"url"`
		MaxIdleConns int    `yaml:"max_idle_conns"`
		Migrate      bool   `yaml:"migrate"`
	} `yaml:"database"`
	Redis struct {
		Addr     string        `yaml:"addr"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		UserTTL  time.Duration `yaml:"user_ttl"`
	} `yaml:"redis"`
	Auth struct {
		JWTSecret string        `yaml:"jwt_secret"`
		AccessTTL time.Duration `yaml:"access_ttl"`
	} `yaml:"auth"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

func defaults() Config {
	var cfg Config
	cfg.Server.Address = defaultAddress
	cfg.Server.ExposeErrors = true
	cfg.Database.Driver = defaultDriver
	cfg.Database.MaxIdleConns = defaultMaxIdleConns
	cfg.Redis.UserTTL = defaultUserTTL
	cfg.Auth.AccessTTL = defaultAccessTTL
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	return cfg
}

// LoadConfig reads the YAML file named by CONFIG_PATH (or config/config.yaml),
// then applies environment overrides. A missing file leaves the defaults.
func LoadConfig() (Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// LoadFile parses the YAML file at path over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Address = ":" + strings.TrimPrefix(v, ":")
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}

	if v, err := readBoolEnv("DB_MIGRATE"); err != nil {
		return fmt.Errorf("parse DB_MIGRATE: %w", err)
	} else if v != nil {
		c.Database.Migrate = *v
	}

	if v, err := readBoolEnv("EXPOSE_ERRORS"); err != nil {
		return fmt.Errorf("parse EXPOSE_ERRORS: %w", err)
	} else if v != nil {
		c.Server.ExposeErrors = *v
	}
	return nil
}

func (c Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("config: database url is required")
	}
	switch strings.ToLower(c.Database.Driver) {
	case "mysql", "mariadb", "pgx", "postgres", "postgresql":
	default:
		return fmt.Errorf("config: unsupported database driver %q", c.Database.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("config: jwt secret is required")
	}
	return nil
}

func readBoolEnv(key string) (*bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	return &v, nil
}
