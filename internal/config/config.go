package config

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

const (
	sslModeDisable = "disable"
	sslModeRequire = "require"

	EnvDevelopment = "development"
	EnvProduction  = "production"

	envPrefix = "BOOKMARKER"
)

var Module = fx.Provide(NewConfig)

type (
	Config struct {
		Env      string `mapstructure:"ENV"`
		LogLevel string `mapstructure:"LOG_LEVEL"`

		Host     string `mapstructure:"HOST"`
		Port     string `mapstructure:"PORT"`
		GRPCPort string `mapstructure:"GRPC_PORT"`

		DBURL      string `mapstructure:"DB_URL"`
		DBHost     string `mapstructure:"DB_HOST"`
		DBPort     string `mapstructure:"DB_PORT"`
		DBUser     string `mapstructure:"DB_USER"`
		DBPassword string `mapstructure:"DB_PASSWORD"`
		DBName     string `mapstructure:"DB_NAME"`
		DBSSLMode  string `mapstructure:"DB_SSL_MODE"`

		JWTSecret  string        `mapstructure:"JWT_SECRET"`
		JWTTTL     time.Duration `mapstructure:"JWT_TTL"`
		BcryptCost int           `mapstructure:"BCRYPT_COST"`
	}
)

var defaults = map[string]interface{}{
	"ENV":         EnvDevelopment,
	"LOG_LEVEL":   "info",
	"HOST":        "0.0.0.0",
	"PORT":        "1323",
	"GRPC_PORT":   "9000",
	"DB_URL":      "",
	"DB_HOST":     "0.0.0.0",
	"DB_PORT":     "5432",
	"DB_USER":     "user",
	"DB_PASSWORD": "password",
	"DB_NAME":     "db",
	"DB_SSL_MODE": sslModeDisable,
	"JWT_SECRET":  "",
	"JWT_TTL":     "15m",
	"BCRYPT_COST": 12,
}

// NewConfig reads BOOKMARKER_* environment variables on top of the defaults.
func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)

	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "bind env %s", key)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// DSN returns DB_URL when set, otherwise a key/value DSN built from the DB_* parts.
func (c *Config) DSN() string {
	if c.DBURL != "" {
		return c.DBURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func (c *Config) HTTPAddr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) GRPCAddr() string {
	return c.Host + ":" + c.GRPCPort
}

func validate(cfg *Config) error {
	if cfg.DBSSLMode != sslModeDisable && cfg.DBSSLMode != sslModeRequire {
		return errors.New(fmt.Sprintf("DB SSL mode is invalid: %s", cfg.DBSSLMode))
	}
	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return errors.New(fmt.Sprintf("env is invalid: %s", cfg.Env))
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT secret is empty")
	}
	if cfg.JWTTTL <= 0 {
		return errors.New(fmt.Sprintf("JWT TTL must be positive: %s", cfg.JWTTTL))
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return errors.New(fmt.Sprintf("bcrypt cost is out of range: %d", cfg.BcryptCost))
	}
	return nil
}
