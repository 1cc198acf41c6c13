package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

type HTTPConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	MigrationsPath  string        `mapstructure:"migrations_path"`
	RunMigrations   bool          `mapstructure:"run_migrations"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	ProductTTL time.Duration `mapstructure:"product_ttl"`
}

// AuthConfig holds token settings. When AdminEmail and AdminPassword are set,
// that administrator account is created at startup if missing.
type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	AdminEmail    string        `mapstructure:"admin_email"`
	AdminPassword string        `mapstructure:"admin_password"`
}

// SMTPConfig configures low-stock notification emails. When Enabled is false
// notifications are only logged.
type SMTPConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Server       string `mapstructure:"server"`
	Port         string `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	From         string `mapstructure:"from"`
	AuthDisabled bool   `mapstructure:"auth_disabled"`
	// Timeout bounds the dial and the whole SMTP exchange of one email.
	Timeout time.Duration `mapstructure:"timeout"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

const envPrefix = "INVENTORY"

// Load reads configuration from defaults, an optional config.yaml, a .env file
// and the environment, in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// DATABASE_URL is honoured for compatibility with the docker setup.
	_ = v.BindEnv("database.url", envPrefix+"_DATABASE_URL", "DATABASE_URL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.url", "")
	v.SetDefault("database.migrations_path", "db/migrations")
	v.SetDefault("database.run_migrations", true)
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 25)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "inventory-redis:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.product_ttl", 3*time.Minute)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 15*time.Minute)
	v.SetDefault("auth.admin_email", "")
	v.SetDefault("auth.admin_password", "")

	v.SetDefault("smtp.enabled", false)
	v.SetDefault("smtp.server", "")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("smtp.auth_disabled", false)
	v.SetDefault("smtp.timeout", 10*time.Second)

	v.SetDefault("ratelimit.rps", 5.0)
	v.SetDefault("ratelimit.burst", 10)

	v.SetDefault("log.level", "info")
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return errors.New("database.url is required (INVENTORY_DATABASE_URL or DATABASE_URL)")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required (INVENTORY_AUTH_JWT_SECRET)")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("ratelimit.rps and ratelimit.burst must be positive")
	}
	if c.SMTP.Enabled && (c.SMTP.Server == "" || c.SMTP.From == "") {
		return errors.New("smtp.server and smtp.from are required when smtp is enabled")
	}
	return nil
}
