package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, 10.0, cfg.Matching.DefaultRadiusKm)
	assert.Equal(t, 100, cfg.Matching.MaxResults)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 60*time.Second, cfg.Cache.SearchCacheTTL)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "blood-request-matchers", cfg.Worker.ConsumerGroup)
	assert.Equal(t, 20, cfg.Worker.BatchSize)
	assert.Equal(t, 100*time.Millisecond, cfg.Worker.EmptyQueueSleep)
	assert.Equal(t, time.Minute, cfg.Worker.ClaimIdle)
	assert.NotEmpty(t, cfg.Worker.ConsumerName)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Equal(t, "*", cfg.Server.CORSOrigins)
}

func TestLoadFile_FromFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nSTORE_DRIVER=memory\nMATCH_DEFAULT_RADIUS_KM=25\nDB_HOST=db.internal\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("DB_HOST", "db.override")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 25.0, cfg.Matching.DefaultRadiusKm)
	assert.Equal(t, "db.override", cfg.Database.Host)
	assert.Contains(t, cfg.GetDatabaseDSN(), "host=db.override")
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown store driver", "STORE_DRIVER", "mongo"},
		{"zero radius", "MATCH_DEFAULT_RADIUS_KM", "0"},
		{"negative max results", "MATCH_MAX_RESULTS", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
