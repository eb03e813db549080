package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_PORT", "REDIS_ADDR", "CARITAS_MODEL", "CARITAS_TEMPERATURE",
		"SESSION_TTL_MINUTES", "MAX_TOOL_CALLS", "SMTP_PORT",
		"KAFKA_REGISTRATION_TOPIC", "CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "CaritasAI API", cfg.ProjectName)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "gemini-2.0-flash", cfg.CaritasModel)
	assert.InDelta(t, 0.7, cfg.CaritasTemp, 0.001)
	assert.Equal(t, 30, cfg.SessionTTLMinutes)
	assert.Equal(t, 5, cfg.MaxToolCalls)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Equal(t, "registration-confirmations", cfg.KafkaRegistrationTopic)
	assert.NotEmpty(t, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CARITAS_TEMPERATURE", "0.2")
	t.Setenv("MAX_TOOL_CALLS", "8")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("CORS_ORIGINS", "https://caritas.example.org")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.InDelta(t, 0.2, cfg.CaritasTemp, 0.001)
	assert.Equal(t, 8, cfg.MaxToolCalls)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"https://caritas.example.org"}, cfg.CORSOrigins)
}

func TestLoad_IgnoresBadNumericValues(t *testing.T) {
	t.Setenv("MAX_TOOL_CALLS", "not-a-number")
	t.Setenv("SESSION_TTL_MINUTES", "-3")

	cfg := Load()

	assert.Equal(t, 5, cfg.MaxToolCalls)
	assert.Equal(t, 30, cfg.SessionTTLMinutes)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a , b ,"))
}
