package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "absen_db", cfg.DBName)
	assert.Equal(t, "Asia/Jakarta", cfg.Timezone)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_TIMEZONE", "Asia/Makassar")
	t.Setenv("JWT_SECRET", "rahasia")

	cfg := Load()
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "Asia/Makassar", cfg.Timezone)
	assert.Equal(t, "rahasia", cfg.JWTSecret)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p",
		DBName: "absen_db", DBSSLMode: "disable", Timezone: "Asia/Jakarta",
	}
	assert.Equal(t,
		"host=db user=u password=p dbname=absen_db port=5432 sslmode=disable TimeZone=Asia/Jakarta",
		cfg.DSN())
}

func TestLocationFallback(t *testing.T) {
	cfg := &Config{Timezone: "Not/AZone"}
	loc := cfg.Location()
	// fallback tetap UTC+7
	_, offset := time.Date(2025, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, 7*60*60, offset)
}
