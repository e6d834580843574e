package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const defaultConfigPath = "configs/development.yaml"

// Storage drivers
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Server Server `yaml:"server"`

	Storage Storage `yaml:"storage"`

	Database Database `yaml:"database"`

	JWT JWT `yaml:"jwt"`

	Auth Auth `yaml:"auth"`

	Orders Orders `yaml:"orders"`

	RabbitMQ RabbitMQ `yaml:"rabbitmq"`

	Telegram Telegram `yaml:"telegram"`

	Events Events `yaml:"events"`

	Log Log `yaml:"log"`

	Metrics Metrics `yaml:"metrics"`
}

type Server struct {
	Address           string        `yaml:"address"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

type Storage struct {
	Driver string `yaml:"driver"` // memory or postgres
	Seed   bool   `yaml:"seed"`
}

type Database struct {
	Driver         string `yaml:"driver"` // postgres (lib/pq) or pgx
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	DBName         string `yaml:"dbname"`
	SSLMode        string `yaml:"sslmode"`
	MigrationsPath string `yaml:"migrations_path"`
	MaxOpenConns   int    `yaml:"max_open_conns"`
	MaxIdleConns   int    `yaml:"max_idle_conns"`
}

// DSN returns the key/value connection string understood by both drivers
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL returns the connection URL used by migrations
func (d Database) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

type JWT struct {
	Secret    string `yaml:"secret"`
	ExpiresIn int    `yaml:"expires_in"` // In Hours
}

type Auth struct {
	ProtectAdminRoutes bool `yaml:"protect_admin_routes"`
	BcryptCost         int  `yaml:"bcrypt_cost"`
	LoginRatePerMinute int  `yaml:"login_rate_per_minute"` // 0 disables the limiter
}

type Orders struct {
	EnforceTransitions bool `yaml:"enforce_transitions"`
}

type RabbitMQ struct {
	URL      string `yaml:"url"`
	Exchange string `yaml:"exchange"`
}

type Telegram struct {
	Token  string `yaml:"token"`
	ChatID int64  `yaml:"chat_id"`
}

// Events sizes the queue in front of the event sinks
type Events struct {
	QueueSize       int           `yaml:"queue_size"`
	DeliveryTimeout time.Duration `yaml:"delivery_timeout"`
}

type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

type Metrics struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Server: Server{
			Address:           ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Storage: Storage{Driver: StorageMemory, Seed: true},
		Database: Database{
			Driver:         "postgres",
			Host:           "localhost",
			Port:           5432,
			User:           "qanyare",
			DBName:         "qanyare",
			SSLMode:        "disable",
			MigrationsPath: "migrations",
			MaxOpenConns:   10,
			MaxIdleConns:   5,
		},
		JWT:      JWT{Secret: "change-me", ExpiresIn: 24},
		Auth:     Auth{BcryptCost: 10},
		Orders:   Orders{EnforceTransitions: true},
		RabbitMQ: RabbitMQ{Exchange: "qanyare.events"},
		Events:   Events{QueueSize: 256, DeliveryTimeout: 5 * time.Second},
		Log:      Log{Level: "info", Format: "json"},
		Metrics:  Metrics{Enabled: true},
	}
}

// Load reads .env, the YAML file named by CONFIG_PATH and the environment overrides.
// A missing default file falls back to Default; a missing explicit file is an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configPath := defaultConfigPath
	explicit := false
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
		explicit = true
	}

	cfg, err := LoadFile(configPath)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a YAML file on top of the defaults
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWT.Secret = v
	}
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		c.Telegram.Token = v
	}
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		c.RabbitMQ.URL = v
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = strings.ToLower(v)
	}
}

// Validate reports the first setting that cannot work
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == StoragePostgres {
		switch c.Database.Driver {
		case "postgres", "pgx":
		default:
			return fmt.Errorf("unknown database driver %q", c.Database.Driver)
		}
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt secret must not be empty")
	}
	if c.JWT.ExpiresIn <= 0 {
		return errors.New("jwt expires_in must be positive")
	}
	if c.Auth.LoginRatePerMinute < 0 {
		return errors.New("auth login_rate_per_minute must not be negative")
	}
	if c.Events.QueueSize <= 0 {
		return errors.New("events queue_size must be positive")
	}
	if c.Events.DeliveryTimeout <= 0 {
		return errors.New("events delivery_timeout must be positive")
	}
	return nil
}
