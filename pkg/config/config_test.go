package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("SESSION_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, CatalogSourceFixtures, cfg.Catalog.Source)
	assert.Equal(t, "http://localhost:8108", cfg.Typesense.URL)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "provider.search.events", cfg.Kafka.AnalyticsTopic)
	assert.Equal(t, "@every 5m", cfg.Warming.Schedule)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("ALLOWED_ORIGINS", "https://winnipegconnect.ca")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, CatalogSourcePostgres, cfg.Catalog.Source)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.ServerAddr())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, []string{"https://winnipegconnect.ca"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("SERVER_PORT", "not-a-port")
	t.Setenv("SESSION_TTL", "forever")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
}

func TestLoad_UnknownCatalogSource(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "spreadsheet")

	_, err := Load()
	assert.ErrorContains(t, err, "spreadsheet")
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "wc", Password: "secret", Database: "winnipeg_connect", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=wc password=secret dbname=winnipeg_connect sslmode=disable", c.DatabaseDSN())
}
