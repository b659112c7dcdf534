package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
	Feed struct {
		MinScore       int           `yaml:"min_score"`
		MaxArticles    int           `yaml:"max_articles"`
		CacheTTL       time.Duration `yaml:"cache_ttl"`
		PublishScored  bool          `yaml:"publish_scored"`
		RateLimitRPS   float64       `yaml:"rate_limit_rps"`
		RateLimitBurst float64       `yaml:"rate_limit_burst"`
	} `yaml:"feed"`
	Kafka struct {
		Brokers       []string `yaml:"brokers"`
		ArticlesTopic string   `yaml:"articles_topic"`
		ScoredTopic   string   `yaml:"scored_topic"`
		LogsTopic     string   `yaml:"logs_topic"`
		RequiredAcks  int      `yaml:"required_acks"`
		Compression   string   `yaml:"compression"`
		Producer      struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
		Consumer struct {
			GroupID     string        `yaml:"group_id"`
			OffsetReset string        `yaml:"offset_reset"`
			Workers     int           `yaml:"workers"`
			BufferSize  int           `yaml:"buffer_size"`
			RetryMax    int           `yaml:"retry_max"`
			BackoffMin  time.Duration `yaml:"backoff_min"`
			BackoffMax  time.Duration `yaml:"backoff_max"`
			DLQTopic    string        `yaml:"dlq_topic"`
			MinBytes    int           `yaml:"min_bytes"`
			MaxBytes    int           `yaml:"max_bytes"`
		} `yaml:"consumer"`
	} `yaml:"kafka"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Profiles struct {
		ServiceURL string        `yaml:"service_url"`
		Timeout    time.Duration `yaml:"timeout"`
		CacheTTL   time.Duration `yaml:"cache_ttl"`
		Redis      struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"profiles"`
	Trending struct {
		WebSocketURL   string        `yaml:"websocket_url"`
		APIKey         string        `yaml:"api_key"`
		ReconnectDelay time.Duration `yaml:"reconnect_delay"`
		PingInterval   time.Duration `yaml:"ping_interval"`
		MaxAge         time.Duration `yaml:"max_age"`
	} `yaml:"trending"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides selected values from
// environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("ARTICLES_TOPIC"); v != "" {
		c.Kafka.ArticlesTopic = v
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := os.Getenv("CLICKHOUSE_PASSWORD"); v != "" {
		c.ClickHouse.Password = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Profiles.Redis.Host = v
	}
	if v := os.Getenv("PROFILE_SERVICE_URL"); v != "" {
		c.Profiles.ServiceURL = v
	}
	if v := os.Getenv("TRENDING_API_KEY"); v != "" {
		c.Trending.APIKey = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Feed.MaxArticles == 0 {
		c.Feed.MaxArticles = 200
	}
	if c.Feed.CacheTTL == 0 {
		c.Feed.CacheTTL = 30 * time.Second
	}
	if c.Kafka.Consumer.OffsetReset == "" {
		c.Kafka.Consumer.OffsetReset = "earliest"
	}
	if c.Kafka.Consumer.Workers == 0 {
		c.Kafka.Consumer.Workers = 4
	}
	if c.Kafka.Consumer.BufferSize == 0 {
		c.Kafka.Consumer.BufferSize = 256
	}
	if c.Profiles.Timeout == 0 {
		c.Profiles.Timeout = 5 * time.Second
	}
	if c.Profiles.CacheTTL == 0 {
		c.Profiles.CacheTTL = 5 * time.Minute
	}
	if c.Trending.ReconnectDelay == 0 {
		c.Trending.ReconnectDelay = 5 * time.Second
	}
	if c.Trending.PingInterval == 0 {
		c.Trending.PingInterval = 30 * time.Second
	}
	if c.Trending.MaxAge == 0 {
		c.Trending.MaxAge = 15 * time.Minute
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Feed.MinScore < 0 || c.Feed.MinScore > 100 {
		return fmt.Errorf("feed.min_score must be in [0,100], got %d", c.Feed.MinScore)
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required")
	}
	if c.Kafka.ArticlesTopic == "" {
		return fmt.Errorf("kafka.articles_topic is required")
	}
	if c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required")
	}
	if c.Profiles.ServiceURL == "" {
		return fmt.Errorf("profiles.service_url is required")
	}
	return nil
}
