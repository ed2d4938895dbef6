package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "fitness_program", cfg.Database.Name)
	assert.Equal(t, 24*time.Hour, cfg.S3.PresignExpiry)
	assert.Empty(t, cfg.SendGrid.APIKey)
	assert.Equal(t, 5, cfg.Delivery.SendHourUTC)
	assert.Equal(t, 4, cfg.Delivery.Concurrency)
	assert.Equal(t, 14, cfg.Program.Workers)
	assert.Equal(t, "development", cfg.Log.Mode)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
database:
  name: leads
sendgrid:
  from_email: coach@example.com
delivery:
  send_hour_utc: 6
program:
  tables_file: /etc/fitness/tables.yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("SENDGRID_API_KEY", "SG.env")
	t.Setenv("DATABASE_NAME", "from_env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "from_env", cfg.Database.Name)
	assert.Equal(t, "SG.env", cfg.SendGrid.APIKey)
	assert.Equal(t, "coach@example.com", cfg.SendGrid.FromEmail)
	assert.Equal(t, 6, cfg.Delivery.SendHourUTC)
	assert.Equal(t, "/etc/fitness/tables.yaml", cfg.Program.TablesFile)
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [oops\n"), 0o600))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
