package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleConfig = `
environment: test
server:
  port: 9090
feed:
  min_score: 30
kafka:
  brokers: ["localhost:9092"]
  articles_topic: news.articles.raw
  scored_topic: news.feed.scored
clickhouse:
  host: localhost
  port: 9000
  database: newsrank
profiles:
  service_url: http://localhost:8081
`

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeTemp(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", c.Server.Port)
	}
	if c.Kafka.ArticlesTopic != "news.articles.raw" {
		t.Errorf("articles_topic = %q", c.Kafka.ArticlesTopic)
	}
	if c.Profiles.CacheTTL != 5*time.Minute {
		t.Errorf("profiles.cache_ttl default = %v, want 5m", c.Profiles.CacheTTL)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	if _, err := Load(writeTemp(t, "environment: test\n")); err == nil {
		t.Fatal("expected validation error for missing required fields")
	}
}

func TestLoadWithEnvOverride(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "b1:9092,b2:9092")
	t.Setenv("PROFILE_SERVICE_URL", "http://profiles:9000")

	c, err := LoadWithEnv(writeTemp(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if len(c.Kafka.Brokers) != 2 || c.Kafka.Brokers[1] != "b2:9092" {
		t.Errorf("brokers = %v", c.Kafka.Brokers)
	}
	if c.Profiles.ServiceURL != "http://profiles:9000" {
		t.Errorf("service_url = %q", c.Profiles.ServiceURL)
	}
}
