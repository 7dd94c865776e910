package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const validConfig = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "equiptrack"
  password: "secret"
  database: "equiptrack"
  ssl_mode: "disable"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
admin:
  email: "admin@example.com"
  password_hash: "$2a$10$abcdefghijklmnopqrstuv"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, int64(1000), cfg.Penalty.DailyRateCents)
	assert.Equal(t, int64(500000), cfg.Penalty.MaxPenaltyCents)
	assert.Equal(t, int32(0), cfg.Penalty.GracePeriodDays)
	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "0 0 1 * * *", cfg.Scheduler.AutoCalculatePenalties)
	assert.Equal(t, "0 0 8 * * *", cfg.Scheduler.SendOverdueReminders)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("PENALTY_DAILY_RATE_CENTS", "250")

	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, int64(250), cfg.Penalty.DailyRateCents)
	assert.Contains(t, cfg.GetDatabaseConnectionString(), "db.internal")
}

func TestLoad_RejectsShortJWTSecret(t *testing.T) {
	cfg := writeConfig(t, `
server:
  port: 8080
database:
  host: "localhost"
  user: "u"
  database: "d"
jwt:
  secret: "short"
admin:
  email: "admin@example.com"
  password_hash: "hash"
`)
	_, err := Load(cfg)
	assert.ErrorContains(t, err, "JWT secret")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
