package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Amadeus      AmadeusConfig      `yaml:"amadeus"`
	Ticketmaster TicketmasterConfig `yaml:"ticketmaster"`
	PredictHQ    PredictHQConfig    `yaml:"predicthq"`
	Database     DatabaseConfig     `yaml:"database"`
	RabbitMQ     RabbitMQConfig     `yaml:"rabbitmq"`
	LogLevel     string             `yaml:"log_level"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type AmadeusConfig struct {
	BaseURL      string        `yaml:"base_url"`
	ClientID     string        `yaml:"client_id"`
	ClientSecret string        `yaml:"client_secret"`
	Currency     string        `yaml:"currency"`
	MaxOffers    int           `yaml:"max_offers"`
	Timeout      time.Duration `yaml:"timeout"`
}

type TicketmasterConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// PredictHQConfig drives the fallback events source. Country is a fixed
// filter: the fallback query is not scoped by the searched city.
type PredictHQConfig struct {
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token"`
	Country string        `yaml:"country"`
	Limit   int           `yaml:"limit"`
	Timeout time.Duration `yaml:"timeout"`
}

// DatabaseConfig is optional: an empty host disables the search audit log.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) Enabled() bool { return d.Host != "" }

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RabbitMQConfig is optional: an empty URL disables the search-event
// publisher.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func (r RabbitMQConfig) Enabled() bool { return r.URL != "" }

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15 * time.Second
	}
	if c.Amadeus.BaseURL == "" {
		c.Amadeus.BaseURL = "https://test.api.amadeus.com"
	}
	if c.Amadeus.MaxOffers == 0 {
		c.Amadeus.MaxOffers = 20
	}
	if c.Amadeus.Timeout == 0 {
		c.Amadeus.Timeout = 30 * time.Second
	}
	if c.Ticketmaster.BaseURL == "" {
		c.Ticketmaster.BaseURL = "https://app.ticketmaster.com"
	}
	if c.Ticketmaster.Timeout == 0 {
		c.Ticketmaster.Timeout = 15 * time.Second
	}
	if c.PredictHQ.BaseURL == "" {
		c.PredictHQ.BaseURL = "https://api.predicthq.com"
	}
	if c.PredictHQ.Country == "" {
		c.PredictHQ.Country = "IN"
	}
	if c.PredictHQ.Limit == 0 {
		c.PredictHQ.Limit = 10
	}
	if c.PredictHQ.Timeout == 0 {
		c.PredictHQ.Timeout = 15 * time.Second
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "trip_aggregator"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "searches"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "search_events"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	if c.Amadeus.ClientID == "" || c.Amadeus.ClientSecret == "" {
		return fmt.Errorf("amadeus client_id and client_secret are required")
	}
	if c.Ticketmaster.APIKey == "" {
		return fmt.Errorf("ticketmaster api_key is required")
	}
	if c.PredictHQ.Token == "" {
		return fmt.Errorf("predicthq token is required")
	}
	return nil
}
