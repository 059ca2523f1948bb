package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestPurchaseConfig_ExpiryDisabledByDefault(t *testing.T) {
	var cfg PurchaseConfig
	require.NoError(t, cleanenv.ReadEnv(&cfg))

	assert.Zero(t, cfg.PendingTTL)
}

func TestLoadPath_Defaults(t *testing.T) {
	var cfg Config
	require.NoError(t, cleanenvport.LoadPath(writeConfig(t, "purchase: {}\n"), &cfg))

	assert.Zero(t, cfg.Purchase.PendingTTL)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.Interval)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadPath_ExplicitPendingTTL(t *testing.T) {
	var cfg Config
	require.NoError(t, cleanenvport.LoadPath(writeConfig(t, "purchase:\n  pending_ttl: 30m\n"), &cfg))

	assert.Equal(t, 30*time.Minute, cfg.Purchase.PendingTTL)
}
