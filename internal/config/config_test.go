package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "admin@us.com", cfg.AdminEmail)
	assert.Equal(t, DriverPostgres, cfg.BackendDriver)
	assert.Equal(t, "staynest", cfg.DBConfig.DBName)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STAYNEST_SERVICE_PORT", "9000")
	t.Setenv("STAYNEST_ADMIN_EMAIL", "ops@staynest.io")
	t.Setenv("STAYNEST_BACKEND_DRIVER", "memory")
	t.Setenv("STAYNEST_KAFKA_BROKERS", "a:9092,b:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Port)
	assert.Equal(t, "ops@staynest.io", cfg.AdminEmail)
	assert.Equal(t, DriverMemory, cfg.BackendDriver)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaConfig.Brokers)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STAYNEST_BACKEND_DRIVER", "firestore")
	_, err := Load()
	assert.Error(t, err)
}
