package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config.yaml"

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds every runtime parameter of the POS services.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`
	Storage  StorageConfig  `yaml:"storage"`
}

type DatabaseConfig struct {
	// URL, when set, wins over the individual fields.
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
	MaxConns int32  `yaml:"max_conns"`
}

type RabbitMQConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
	Exchange string `yaml:"exchange"`
	Queue    string `yaml:"queue"`
	// Enabled turns on event publishing from the API.
	Enabled bool `yaml:"enabled"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
}

func Default() Config {
	return Config{
		Database: DatabaseConfig{Host: "localhost", Port: 5432, SSLMode: "disable", MaxConns: 10},
		RabbitMQ: RabbitMQConfig{
			Host:     "localhost",
			Port:     5672,
			User:     "guest",
			Password: "guest",
			VHost:    "/",
			Exchange: "pos_events",
			Queue:    "pos_notifications",
		},
		HTTP:    HTTPConfig{Port: 8080},
		Log:     LogConfig{Level: "info"},
		Storage: StorageConfig{Driver: StoragePostgres},
	}
}

// Load reads path over the defaults, applies POS_* environment overrides and
// then overrides, and validates the result. A missing file is not an error.
func Load(path string, overrides ...func(*Config)) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", path)
	}
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("POS_DATABASE_URL"); ok && v != "" {
		c.Database.URL = v
	}
	if v, ok := lookup("POS_RABBITMQ_URL"); ok && v != "" {
		c.RabbitMQ.URL = v
	}
	if v, ok := lookup("POS_STORAGE"); ok && v != "" {
		c.Storage.Driver = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup("POS_HTTP_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "POS_HTTP_PORT %q", v)
		}
		c.HTTP.Port = port
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StoragePostgres:
		if c.Database.URL == "" {
			if c.Database.Host == "" || c.Database.User == "" || c.Database.Database == "" {
				return errors.New("database: host, user and database are required for postgres storage")
			}
			if err := checkPort("database.port", c.Database.Port); err != nil {
				return err
			}
		}
		if c.Database.MaxConns < 1 {
			return errors.Newf("database.max_conns must be positive, got %d", c.Database.MaxConns)
		}
	case StorageMemory:
	default:
		return errors.Newf("storage.driver must be %q or %q, got %q", StoragePostgres, StorageMemory, c.Storage.Driver)
	}
	if err := checkPort("http.port", c.HTTP.Port); err != nil {
		return err
	}
	if c.RabbitMQ.URL == "" {
		if err := checkPort("rabbitmq.port", c.RabbitMQ.Port); err != nil {
			return err
		}
	}
	return nil
}

func checkPort(name string, port int) error {
	if port < 1 || port > 65535 {
		return errors.Newf("%s must be in 1..65535, got %d", name, port)
	}
	return nil
}

// DatabaseURL returns the pgx connection string.
func (c *Config) DatabaseURL() string {
	d := c.Database
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Database,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// RabbitMQURL returns the AMQP connection string.
func (c *Config) RabbitMQURL() string {
	r := c.RabbitMQ
	if r.URL != "" {
		return r.URL
	}
	vhost := r.VHost
	if vhost == "/" {
		vhost = ""
	}
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(r.User, r.Password),
		Host:   fmt.Sprintf("%s:%d", r.Host, r.Port),
		Path:   "/" + vhost,
	}
	return u.String()
}

// HTTPAddr is the listen address of the API server.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}
